package eval

import (
	"testing"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/internal/logging"
)

func entryWithSize(n int64) *Entry {
	return &Entry{Path: "x", Name: "x", Virtual: true, vSize: n}
}

func TestAggregatorSum(t *testing.T) {
	ev := New(logging.New())
	cols := []ast.ColumnExpr{&ast.FuncCall{Func: ast.FuncSum, Arg: &ast.FieldRef{Field: ast.FieldSize}}}
	aggs := newAggregators(cols)

	for _, n := range []int64{10, 20, 30} {
		aggs[0].Accept(ev, entryWithSize(n))
	}
	if got := aggs[0].Result(); got != "60" {
		t.Errorf("Sum: got %q, want 60", got)
	}
}

func TestAggregatorAvgIntegerDivision(t *testing.T) {
	ev := New(logging.New())
	cols := []ast.ColumnExpr{&ast.FuncCall{Func: ast.FuncAvg, Arg: &ast.FieldRef{Field: ast.FieldSize}}}
	aggs := newAggregators(cols)
	for _, n := range []int64{10, 10, 11} {
		aggs[0].Accept(ev, entryWithSize(n))
	}
	if got := aggs[0].Result(); got != "10" {
		t.Errorf("Avg: got %q, want 10 (integer division of 31/3)", got)
	}
}

func TestAggregatorMinUnsetSentinel(t *testing.T) {
	ev := New(logging.New())
	cols := []ast.ColumnExpr{&ast.FuncCall{Func: ast.FuncMin, Arg: &ast.FieldRef{Field: ast.FieldSize}}}
	aggs := newAggregators(cols)
	if got := aggs[0].Result(); got != "-1" {
		t.Errorf("Min with no rows: got %q, want -1 sentinel", got)
	}
	aggs[0].Accept(ev, entryWithSize(5))
	aggs[0].Accept(ev, entryWithSize(2))
	if got := aggs[0].Result(); got != "2" {
		t.Errorf("Min: got %q, want 2", got)
	}
}

func TestAggregatorCountIgnoresField(t *testing.T) {
	ev := New(logging.New())
	cols := []ast.ColumnExpr{&ast.FuncCall{Func: ast.FuncCount}}
	aggs := newAggregators(cols)
	for i := 0; i < 3; i++ {
		aggs[0].Accept(ev, entryWithSize(0))
	}
	if got := aggs[0].Result(); got != "3" {
		t.Errorf("Count: got %q, want 3", got)
	}
}
