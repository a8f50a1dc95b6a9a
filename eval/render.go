package eval

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/catalog"
)

// cell is the intermediate value produced while resolving one ColumnExpr
// for one entry: a single Kind-tagged slot, carried through scalar function
// composition before being rendered to its final display text.
type cell struct {
	kind ast.Kind
	str  string
	num  int64
	b    bool
	t    time.Time
	ok   bool
}

// renderColumns resolves cols against e and returns their display text in
// order, per spec.md §4.7/§4.8. Unavailable cells render as empty strings
// (spec.md §6: "projections render as empty strings").
func (ev *Evaluator) renderColumns(e *Entry, cols []ast.ColumnExpr) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = renderCell(ev.evalColumn(e, c))
	}
	return out
}

func (ev *Evaluator) evalColumn(e *Entry, c ast.ColumnExpr) cell {
	switch n := c.(type) {
	case *ast.Literal:
		return cell{kind: ast.KindString, str: n.Value, ok: true}
	case *ast.FieldRef:
		return ev.fieldCell(e, n.Field)
	case *ast.FuncCall:
		return ev.funcCell(e, n)
	}
	return cell{}
}

func (ev *Evaluator) fieldCell(e *Entry, f ast.Field) cell {
	if f == ast.FieldFormattedSize {
		v, ok := ev.numericValue(e, f)
		if !ok {
			return cell{}
		}
		return cell{kind: ast.KindString, str: humanize.Bytes(uint64(v)), ok: true}
	}
	switch catalog.KindOf(f) {
	case ast.KindString:
		v, ok := ev.stringValue(e, f)
		return cell{kind: ast.KindString, str: v, ok: ok}
	case ast.KindNumeric:
		v, ok := ev.numericValue(e, f)
		return cell{kind: ast.KindNumeric, num: v, ok: ok}
	case ast.KindBool:
		v, ok := ev.boolValue(e, f)
		return cell{kind: ast.KindBool, b: v, ok: ok}
	case ast.KindDatetime:
		v, ok := ev.timeValue(e, f)
		return cell{kind: ast.KindDatetime, t: v, ok: ok}
	}
	return cell{}
}

// funcCell applies a scalar projection function (spec.md §4.7). Aggregate
// functions are reduced across the whole result set elsewhere (aggregate.go)
// and never reach per-row rendering.
func (ev *Evaluator) funcCell(e *Entry, n *ast.FuncCall) cell {
	if n.Func.IsAggregate() || n.Arg == nil {
		return cell{}
	}
	inner := ev.evalColumn(e, n.Arg)
	if !inner.ok {
		return cell{}
	}
	switch n.Func {
	case ast.FuncLower:
		return cell{kind: ast.KindString, str: strings.ToLower(renderCell(inner)), ok: true}
	case ast.FuncUpper:
		return cell{kind: ast.KindString, str: strings.ToUpper(renderCell(inner)), ok: true}
	case ast.FuncLength:
		return cell{kind: ast.KindNumeric, num: int64(utf8.RuneCountInString(renderCell(inner))), ok: true}
	case ast.FuncYear, ast.FuncMonth, ast.FuncDay:
		t, ok := cellAsTime(inner)
		if !ok {
			return cell{}
		}
		switch n.Func {
		case ast.FuncYear:
			return cell{kind: ast.KindNumeric, num: int64(t.Year()), ok: true}
		case ast.FuncMonth:
			return cell{kind: ast.KindNumeric, num: int64(t.Month()), ok: true}
		default:
			return cell{kind: ast.KindNumeric, num: int64(t.Day()), ok: true}
		}
	}
	return cell{}
}

// cellAsTime resolves a cell to a time.Time, parsing its rendered text when
// it is not already datetime-kind (spec.md §4.7: "applied to a value parsed
// as datetime").
func cellAsTime(c cell) (time.Time, bool) {
	if c.kind == ast.KindDatetime {
		return c.t, true
	}
	return parseAnyDatetime(renderCell(c))
}

func renderCell(c cell) string {
	if !c.ok {
		return ""
	}
	switch c.kind {
	case ast.KindString:
		return c.str
	case ast.KindNumeric:
		return strconv.FormatInt(c.num, 10)
	case ast.KindBool:
		return strconv.FormatBool(c.b)
	case ast.KindDatetime:
		return c.t.Format("2006-01-02 15:04:05")
	}
	return ""
}
