package ast

// Op is a leaf comparison operator from spec.md §3.
type Op int

const (
	OpEq Op = iota
	OpNe
	OpEeq
	OpEne
	OpGt
	OpGte
	OpLt
	OpLte
	OpRx // regex match (covers both ~= and `like`)
)

// LogicalOp joins two Expr subtrees.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)
