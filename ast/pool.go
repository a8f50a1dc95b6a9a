package ast

import "sync"

// A []ColumnExpr slice pool, adapted from the teacher's ast/pool.go (itself
// pooling []SelectExpr/[]Expr during SQL parsing). Nothing in this module
// draws from it: the parser builds its column lists with plain slices.
var columnExprSlicePool = sync.Pool{
	New: func() any {
		s := make([]ColumnExpr, 0, 8)
		return &s
	},
}

// GetColumnExprSlice returns a []ColumnExpr from the pool.
func GetColumnExprSlice() *[]ColumnExpr {
	return columnExprSlicePool.Get().(*[]ColumnExpr)
}

// ReleaseColumnExprSlice returns s to the pool.
func ReleaseColumnExprSlice(s *[]ColumnExpr) {
	*s = (*s)[:0]
	columnExprSlicePool.Put(s)
}
