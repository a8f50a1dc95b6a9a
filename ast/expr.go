package ast

import (
	"regexp"
	"time"
)

// Expr is a boolean node: exactly one of a leaf predicate or a logical
// And/Or of two child Exprs (spec.md §3).
type Expr interface {
	exprNode()
}

// Leaf is a single (field, op, value) predicate. Regex and Range are
// populated by the parser when the operator/value call for them; both are
// nil/zero otherwise.
type Leaf struct {
	Field Field
	Op    Op
	Val   string

	Regex *regexp.Regexp // set when Op == OpRx, or Eq was rewritten from a glob

	HasRange bool // true when Field is a datetime field
	DTFrom   time.Time
	DTTo     time.Time

	// Negate inverts the predicate's boolean result. Set by the parser for
	// the `not` prefix (SPEC_FULL.md §C); applied uniformly as a final
	// flip rather than algebraically swapping Op, since OpRx has no clean
	// single-operator inverse.
	Negate bool
}

func (*Leaf) exprNode() {}

// Logical is an And/Or of two Expr subtrees.
type Logical struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

func (*Logical) exprNode() {}
