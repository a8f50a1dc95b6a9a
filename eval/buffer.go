package eval

import (
	"sort"
	"strconv"
)

// criterion is the sort key spec.md §4.6 attaches to a buffered row: the
// rendered value of each ordering column, paired with that column's
// ascending flag.
type criterion struct {
	values []string
	asc    []bool
}

// compareCriteria returns <0, 0, >0 as a sorts before b, lexicographically across
// ordering fields. Within a field, numeric-looking values compare
// numerically; everything else compares as strings. asc=false inverts that
// field's contribution.
func compareCriteria(a, b criterion) int {
	for i := range a.values {
		c := compareField(a.values[i], b.values[i])
		if !a.asc[i] {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareField(a, b string) int {
	af, aok := strconv.ParseFloat(a, 64)
	bf, bok := strconv.ParseFloat(b, 64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type bufferItem struct {
	criterion criterion
	row       []string
}

// buffer is the bounded top-N structure of spec.md §4.6. limit <= 0 means
// unbounded: every inserted row is retained until Drain.
type buffer struct {
	limit int
	items []bufferItem
}

func newBuffer(limit int) *buffer {
	return &buffer{limit: limit}
}

// Insert adds row under crit, evicting the current maximum (by
// compareCriteria) when the buffer is bounded and now over limit, so the
// buffer always holds the N smallest criteria seen so far.
func (b *buffer) Insert(row []string, crit criterion) {
	b.items = append(b.items, bufferItem{criterion: crit, row: row})
	if b.limit <= 0 || len(b.items) <= b.limit {
		return
	}
	maxIdx := 0
	for i := 1; i < len(b.items); i++ {
		if compareCriteria(b.items[i].criterion, b.items[maxIdx].criterion) > 0 {
			maxIdx = i
		}
	}
	b.items = append(b.items[:maxIdx], b.items[maxIdx+1:]...)
}

// Drain returns the buffered rows in ascending criterion order.
func (b *buffer) Drain() [][]string {
	sort.SliceStable(b.items, func(i, j int) bool {
		return compareCriteria(b.items[i].criterion, b.items[j].criterion) < 0
	})
	rows := make([][]string, len(b.items))
	for i, it := range b.items {
		rows[i] = it.row
	}
	return rows
}

func (b *buffer) Len() int { return len(b.items) }
