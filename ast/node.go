// Package ast defines the typed query AST: Query, ColumnExpr, Expr and
// their supporting enumerations, per spec.md §3.
package ast

// ColumnExpr is a projection node: a literal, a bare field reference, or a
// function applied to a child ColumnExpr (spec.md §3).
type ColumnExpr interface {
	columnExprNode()
}

// Literal is a constant value appearing in a projection, e.g. the `1` in
// `1, name from .`.
type Literal struct {
	Value string
}

func (*Literal) columnExprNode() {}

// FieldRef is a bare column reference, e.g. `name` or `size`.
type FieldRef struct {
	Field Field
}

func (*FieldRef) columnExprNode() {}

// FuncCall applies a scalar or aggregate Function to a child ColumnExpr.
// Count(*) is represented with Arg == nil (spec.md §4.7: "field argument is
// ignored" for Count).
type FuncCall struct {
	Func Function
	Arg  ColumnExpr
}

func (*FuncCall) columnExprNode() {}

// ColumnLabel renders c's display name, used by the formatter for JSON keys
// and by diagnostics: a bare field's own name, a function wrapping its
// argument's label (`lower(name)`, `count(*)`), or a literal's own text.
func ColumnLabel(c ColumnExpr) string {
	switch n := c.(type) {
	case *Literal:
		return n.Value
	case *FieldRef:
		return FieldDisplayName(n.Field)
	case *FuncCall:
		if n.Arg == nil {
			return FunctionName(n.Func) + "(*)"
		}
		return FunctionName(n.Func) + "(" + ColumnLabel(n.Arg) + ")"
	default:
		return ""
	}
}

// InnerField walks through chained function calls to find the leaf Field
// an aggregate ultimately reduces over (spec.md §4.7). It returns
// (FieldUnknown, false) when no leaf field exists, e.g. `min(42)` or
// Count(*) — spec.md §9 documents this as "returns -1", which the
// aggregator implements by treating a missing inner field as empty input.
func InnerField(c ColumnExpr) (Field, bool) {
	for {
		switch n := c.(type) {
		case *FieldRef:
			return n.Field, true
		case *FuncCall:
			if n.Arg == nil {
				return FieldUnknown, false
			}
			c = n.Arg
		default:
			return FieldUnknown, false
		}
	}
}
