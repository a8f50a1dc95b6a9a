package parser

import (
	"testing"

	"github.com/freeeve/fselect/ast"
)

func TestParseDefaultRoot(t *testing.T) {
	q, err := Parse("name")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Roots) != 1 || q.Roots[0].Path != "." {
		t.Fatalf("expected default root \".\", got %+v", q.Roots)
	}
	if q.Format != ast.FormatLines {
		t.Fatalf("expected default format Lines, got %v", q.Format)
	}
}

func TestParseColumnList(t *testing.T) {
	q, err := Parse("name, size, lower(name)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(q.Fields))
	}
	fc, ok := q.Fields[2].(*ast.FuncCall)
	if !ok || fc.Func != ast.FuncLower {
		t.Fatalf("expected lower(name) func call, got %#v", q.Fields[2])
	}
	fr, ok := fc.Arg.(*ast.FieldRef)
	if !ok || fr.Field != ast.FieldName {
		t.Fatalf("expected inner field ref name, got %#v", fc.Arg)
	}
}

func TestParseFromRootOptions(t *testing.T) {
	q, err := Parse("name from /tmp mindepth 1 maxdepth 3 archives, /var depth 2 symlinks gitignore")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(q.Roots))
	}
	r0 := q.Roots[0]
	if r0.Path != "/tmp" || r0.MinDepth != 1 || r0.MaxDepth != 3 || !r0.Archives || r0.Symlinks || r0.Gitignore {
		t.Fatalf("unexpected root[0]: %+v", r0)
	}
	r1 := q.Roots[1]
	if r1.Path != "/var" || r1.MinDepth != 2 || r1.MaxDepth != 2 || !r1.Symlinks || !r1.Gitignore {
		t.Fatalf("unexpected root[1]: %+v", r1)
	}
}

func TestParseWhereAndOrPrecedence(t *testing.T) {
	// `and` binds tighter than `or`: a or b and c == a or (b and c)
	q, err := Parse("name where is_dir = true or is_file = true and size > 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	top, ok := q.Expr.(*ast.Logical)
	if !ok || top.Op != ast.LogicalOr {
		t.Fatalf("expected top-level Or, got %#v", q.Expr)
	}
	right, ok := top.Right.(*ast.Logical)
	if !ok || right.Op != ast.LogicalAnd {
		t.Fatalf("expected right-hand And, got %#v", top.Right)
	}
}

func TestParseParenOverridesPrecedence(t *testing.T) {
	q, err := Parse("name where (is_dir = true or is_file = true) and size > 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	top, ok := q.Expr.(*ast.Logical)
	if !ok || top.Op != ast.LogicalAnd {
		t.Fatalf("expected top-level And, got %#v", q.Expr)
	}
	left, ok := top.Left.(*ast.Logical)
	if !ok || left.Op != ast.LogicalOr {
		t.Fatalf("expected left-hand Or, got %#v", top.Left)
	}
}

func TestParseNotPrefixNegatesLeaf(t *testing.T) {
	q, err := Parse("name where not is_dir = true")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := q.Expr.(*ast.Leaf)
	if !ok {
		t.Fatalf("expected leaf, got %#v", q.Expr)
	}
	if !leaf.Negate {
		t.Fatalf("expected Negate=true")
	}
	if leaf.Field != ast.FieldIsDir || leaf.Op != ast.OpEq {
		t.Fatalf("unexpected leaf %+v", leaf)
	}
}

func TestParseNrxSetsNegate(t *testing.T) {
	q, err := Parse(`name where name !~= "^foo"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := q.Expr.(*ast.Leaf)
	if !ok || leaf.Op != ast.OpRx || !leaf.Negate {
		t.Fatalf("unexpected leaf %#v", q.Expr)
	}
}

func TestParseSizeSuffix(t *testing.T) {
	q, err := Parse("name where size > 10m")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := q.Expr.(*ast.Leaf)
	if !ok {
		t.Fatalf("expected leaf, got %#v", q.Expr)
	}
	if leaf.Val != "10485760" {
		t.Fatalf("expected 10m to coerce to 10485760, got %q", leaf.Val)
	}
}

func TestParseGlobEqRewritesToRegex(t *testing.T) {
	q, err := Parse("name where name = *.go")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := q.Expr.(*ast.Leaf)
	if !ok || leaf.Op != ast.OpRx || leaf.Regex == nil {
		t.Fatalf("expected glob rewritten to regex, got %#v", q.Expr)
	}
	if !leaf.Regex.MatchString("main.go") || leaf.Regex.MatchString("main.go.bak") {
		t.Fatalf("unexpected regex behavior for %q", leaf.Regex.String())
	}
}

func TestParseDatetimeRangeExpansion(t *testing.T) {
	q, err := Parse("name where modified > 2024")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, ok := q.Expr.(*ast.Leaf)
	if !ok || !leaf.HasRange {
		t.Fatalf("expected datetime range leaf, got %#v", q.Expr)
	}
	if leaf.DTFrom.Year() != 2024 || leaf.DTTo.Year() != 2024 {
		t.Fatalf("unexpected year range %v..%v", leaf.DTFrom, leaf.DTTo)
	}
}

func TestParseOrderByLimitInto(t *testing.T) {
	q, err := Parse("name order by size desc, name limit 10 into json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.OrderFields) != 2 || q.OrderAsc[0] != false || q.OrderAsc[1] != true {
		t.Fatalf("unexpected order: fields=%v asc=%v", q.OrderFields, q.OrderAsc)
	}
	if q.Limit != 10 {
		t.Fatalf("expected limit 10, got %d", q.Limit)
	}
	if q.Format != ast.FormatJSON {
		t.Fatalf("expected json format, got %v", q.Format)
	}
}

func TestParseCountStar(t *testing.T) {
	q, err := Parse("count(*)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fc, ok := q.Fields[0].(*ast.FuncCall)
	if !ok || fc.Func != ast.FuncCount || fc.Arg != nil {
		t.Fatalf("unexpected count(*) parse: %#v", q.Fields[0])
	}
}

func TestParseUnknownFieldReportsFirstError(t *testing.T) {
	_, err := Parse("name where bogus_field = 1")
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	_, err := Parse("name from")
	if err == nil {
		t.Fatalf("expected error")
	}
}
