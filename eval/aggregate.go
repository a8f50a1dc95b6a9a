package eval

import (
	"strconv"

	"github.com/freeeve/fselect/ast"
)

// aggregator reduces the field values collected across every accepted row
// (spec.md §4.7), one accumulator per projected aggregate column.
type aggregator struct {
	fn       ast.Function
	field    ast.Field
	hasField bool

	min    int64
	minSet bool
	max    int64
	sum    int64
	count  int64
}

// newAggregators builds one accumulator per aggregate ColumnExpr in cols,
// at that column's index. Aggregates with no leaf field (e.g. `count(*)`)
// still get an accumulator; non-aggregate columns get a nil slot, so column
// order is preserved on output.
func newAggregators(cols []ast.ColumnExpr) []*aggregator {
	aggs := make([]*aggregator, len(cols))
	for i, c := range cols {
		fc, isFunc := c.(*ast.FuncCall)
		if !isFunc || !fc.Func.IsAggregate() {
			continue
		}
		field, hasField := ast.InnerField(c)
		aggs[i] = &aggregator{fn: fc.Func, field: field, hasField: hasField}
	}
	return aggs
}

// Accept folds one accepted entry's value of agg.field into the
// accumulator, per the inner field spec.md §4.7 names. The value is fetched
// here through ev.fieldCell, the same getters predicate evaluation uses;
// entries with no value, or a non-integer one, only count toward the row
// count.
func (agg *aggregator) Accept(ev *Evaluator, e *Entry) {
	agg.count++
	if agg.fn == ast.FuncCount {
		return
	}
	if !agg.hasField {
		return
	}
	cell := ev.fieldCell(e, agg.field)
	if !cell.ok {
		return
	}
	n, numOK := aggregateInt(cell)
	if !numOK {
		return
	}
	switch agg.fn {
	case ast.FuncMin:
		// minSet tracks "unset" explicitly, so the first real value wins
		// regardless of sign; Result reports -1 when no value was seen.
		if !agg.minSet || n < agg.min {
			agg.min = n
			agg.minSet = true
		}
	case ast.FuncMax:
		if n > agg.max {
			agg.max = n
		}
	case ast.FuncSum, ast.FuncAvg:
		agg.sum += n
	}
}

// Result renders the reduced value, following spec.md §4.7's integer
// semantics (Avg truncates via integer division).
func (agg *aggregator) Result() string {
	switch agg.fn {
	case ast.FuncCount:
		return strconv.FormatInt(agg.count, 10)
	case ast.FuncMin:
		if !agg.minSet {
			return strconv.FormatInt(-1, 10)
		}
		return strconv.FormatInt(agg.min, 10)
	case ast.FuncMax:
		return strconv.FormatInt(agg.max, 10)
	case ast.FuncSum:
		return strconv.FormatInt(agg.sum, 10)
	case ast.FuncAvg:
		if agg.count == 0 {
			return strconv.FormatInt(0, 10)
		}
		return strconv.FormatInt(agg.sum/agg.count, 10)
	}
	return ""
}

func aggregateInt(c cell) (int64, bool) {
	switch c.kind {
	case ast.KindNumeric:
		return c.num, true
	case ast.KindString:
		n, err := strconv.ParseInt(c.str, 10, 64)
		return n, err == nil
	}
	return 0, false
}
