package eval

import (
	"testing"
	"time"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/internal/logging"
)

func TestEvalLeafNumericComparisons(t *testing.T) {
	ev := New(logging.New())
	e := entryWithSize(5000)

	tests := []struct {
		op   ast.Op
		val  string
		want bool
	}{
		{ast.OpGt, "1024", true},
		{ast.OpGt, "9999", false},
		{ast.OpLte, "5000", true},
		{ast.OpEq, "5000", true},
		{ast.OpNe, "5000", false},
	}
	for _, tt := range tests {
		leaf := &ast.Leaf{Field: ast.FieldSize, Op: tt.op, Val: tt.val}
		if got := evalExpr(ev, e, leaf); got != tt.want {
			t.Errorf("size %v %s: got %v, want %v", tt.op, tt.val, got, tt.want)
		}
	}
}

func TestEvalLeafNegateFlips(t *testing.T) {
	ev := New(logging.New())
	e := entryWithSize(5000)
	leaf := &ast.Leaf{Field: ast.FieldSize, Op: ast.OpEq, Val: "5000", Negate: true}
	if evalExpr(ev, e, leaf) {
		t.Error("negated true-predicate should evaluate false")
	}
}

func TestEvalLeafBoolEqAndNe(t *testing.T) {
	ev := New(logging.New())
	e := &Entry{Path: "readme.md", Name: "readme.md"}

	eq := &ast.Leaf{Field: ast.FieldIsDoc, Op: ast.OpEq, Val: "true"}
	if !evalExpr(ev, e, eq) {
		t.Error("is_doc = true should match readme.md")
	}
	ne := &ast.Leaf{Field: ast.FieldIsDoc, Op: ast.OpNe, Val: "true"}
	if evalExpr(ev, e, ne) {
		t.Error("is_doc != true should not match readme.md")
	}
}

func TestEvalLeafArchiveUnavailableBoolIsFalse(t *testing.T) {
	ev := New(logging.New())
	e := &Entry{Path: "inner", Name: "inner", Virtual: true}
	leaf := &ast.Leaf{Field: ast.FieldHasXattrs, Op: ast.OpEq, Val: "true"}
	if evalExpr(ev, e, leaf) {
		t.Error("has_xattrs on a virtual entry should evaluate false, not true")
	}
}

func TestEvalLeafDatetimeRangeOps(t *testing.T) {
	ev := New(logging.New())
	e := &Entry{Path: "x", Name: "x", Virtual: true, vModTime: time.Date(2020, 3, 15, 0, 0, 0, 0, time.Local)}

	from := time.Date(2020, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2020, 3, 31, 23, 59, 59, 0, time.Local)

	inRange := &ast.Leaf{Field: ast.FieldModified, Op: ast.OpEq, HasRange: true, DTFrom: from, DTTo: to}
	if !evalExpr(ev, e, inRange) {
		t.Error("modified within [dt_from, dt_to] should match Eq")
	}

	after := &ast.Leaf{Field: ast.FieldModified, Op: ast.OpGt, HasRange: true, DTFrom: from, DTTo: to}
	if evalExpr(ev, e, after) {
		t.Error("modified within range should not match Gt (after dt_to)")
	}
}

func TestEvalExprAndOrShortCircuit(t *testing.T) {
	ev := New(logging.New())
	e := entryWithSize(5000)

	falseLeft := &ast.Leaf{Field: ast.FieldSize, Op: ast.OpEq, Val: "1"}
	trueRight := &ast.Leaf{Field: ast.FieldSize, Op: ast.OpEq, Val: "5000"}

	and := &ast.Logical{Op: ast.LogicalAnd, Left: falseLeft, Right: trueRight}
	if evalExpr(ev, e, and) {
		t.Error("And with a false left operand should be false")
	}

	or := &ast.Logical{Op: ast.LogicalOr, Left: trueRight, Right: falseLeft}
	if !evalExpr(ev, e, or) {
		t.Error("Or with a true left operand should be true")
	}
}
