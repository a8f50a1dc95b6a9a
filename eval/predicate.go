package eval

import (
	"time"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/catalog"
)

// evalExpr evaluates expr against entry, implementing the short-circuit
// And/Or of spec.md §4.4. The lazy metadata slots (§4.4) live on Entry
// itself rather than being threaded as a separate return value: since one
// Entry is evaluated to completion before the next is considered, Entry is
// exactly the "mutable context object" spec.md §9 describes for
// garbage-collected languages.
func evalExpr(ev *Evaluator, e *Entry, expr ast.Expr) bool {
	switch n := expr.(type) {
	case *ast.Leaf:
		return evalLeaf(ev, e, n)
	case *ast.Logical:
		left := evalExpr(ev, e, n.Left)
		if n.Op == ast.LogicalAnd {
			if !left {
				return false
			}
			return evalExpr(ev, e, n.Right)
		}
		if left {
			return true
		}
		return evalExpr(ev, e, n.Right)
	}
	return false
}

func evalLeaf(ev *Evaluator, e *Entry, leaf *ast.Leaf) bool {
	var result bool
	switch catalog.KindOf(leaf.Field) {
	case ast.KindString:
		val, ok := ev.stringValue(e, leaf.Field)
		result = evalStringLeaf(leaf, val, ok)
	case ast.KindNumeric:
		val, ok := ev.numericValue(e, leaf.Field)
		result = evalNumericLeaf(leaf, val, ok)
	case ast.KindBool:
		val, ok := ev.boolValue(e, leaf.Field)
		result = evalBoolLeaf(leaf, val, ok)
	case ast.KindDatetime:
		val, ok := ev.timeValue(e, leaf.Field)
		result = evalDatetimeLeaf(leaf, val, ok)
	}
	if leaf.Negate {
		return !result
	}
	return result
}

func evalStringLeaf(leaf *ast.Leaf, val string, ok bool) bool {
	if !ok {
		return false
	}
	switch leaf.Op {
	case ast.OpEq:
		if leaf.Regex != nil {
			return leaf.Regex.MatchString(val)
		}
		return val == leaf.Val
	case ast.OpNe:
		if leaf.Regex != nil {
			return !leaf.Regex.MatchString(val)
		}
		return val != leaf.Val
	case ast.OpEeq:
		return val == leaf.Val
	case ast.OpEne:
		return val != leaf.Val
	case ast.OpRx:
		return leaf.Regex != nil && leaf.Regex.MatchString(val)
	case ast.OpGt:
		return val > leaf.Val
	case ast.OpGte:
		return val >= leaf.Val
	case ast.OpLt:
		return val < leaf.Val
	case ast.OpLte:
		return val <= leaf.Val
	}
	return false
}

func evalNumericLeaf(leaf *ast.Leaf, val int64, ok bool) bool {
	if !ok {
		return false
	}
	target, tok := parseIntValue(leaf.Val)
	if !tok {
		return false
	}
	switch leaf.Op {
	case ast.OpEq, ast.OpEeq:
		return val == target
	case ast.OpNe, ast.OpEne:
		return val != target
	case ast.OpGt:
		return val > target
	case ast.OpGte:
		return val >= target
	case ast.OpLt:
		return val < target
	case ast.OpLte:
		return val <= target
	}
	return false
}

func evalBoolLeaf(leaf *ast.Leaf, val bool, ok bool) bool {
	if !ok {
		return false
	}
	target := parseTruthy(leaf.Val)
	match := val == target
	switch leaf.Op {
	case ast.OpEq, ast.OpEeq:
		return match
	case ast.OpNe, ast.OpEne:
		return !match
	}
	return false
}

func evalDatetimeLeaf(leaf *ast.Leaf, val time.Time, ok bool) bool {
	if !ok || !leaf.HasRange {
		return false
	}
	switch leaf.Op {
	case ast.OpEeq:
		return val.Equal(leaf.DTFrom)
	case ast.OpEne:
		return !val.Equal(leaf.DTFrom)
	case ast.OpEq:
		return !val.Before(leaf.DTFrom) && !val.After(leaf.DTTo)
	case ast.OpNe:
		return val.Before(leaf.DTFrom) || val.After(leaf.DTTo)
	case ast.OpGt:
		return val.After(leaf.DTTo)
	case ast.OpGte:
		return !val.Before(leaf.DTFrom)
	case ast.OpLt:
		return val.Before(leaf.DTFrom)
	case ast.OpLte:
		return !val.After(leaf.DTTo)
	}
	return false
}
