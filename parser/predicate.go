package parser

import (
	"strings"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/catalog"
	"github.com/freeeve/fselect/token"
)

// parseOrExpr implements `expr := and_expr ("or" and_expr)*`.
func (p *Parser) parseOrExpr() ast.Expr {
	left := p.parseAndExpr()
	for p.curKeyword("or") {
		p.advance()
		right := p.parseAndExpr()
		left = &ast.Logical{Op: ast.LogicalOr, Left: left, Right: right}
	}
	return left
}

// parseAndExpr implements `and_expr := factor ("and" factor)*`.
func (p *Parser) parseAndExpr() ast.Expr {
	left := p.parseFactor()
	for p.curKeyword("and") {
		p.advance()
		right := p.parseFactor()
		left = &ast.Logical{Op: ast.LogicalAnd, Left: left, Right: right}
	}
	return left
}

// parseFactor implements `factor := "(" expr ")" | ["not"] predicate`.
func (p *Parser) parseFactor() ast.Expr {
	if p.curIs(token.LPAREN) {
		p.advance()
		e := p.parseOrExpr()
		p.expect(token.RPAREN)
		return e
	}
	negate := false
	if p.curKeyword("not") {
		negate = true
		p.advance()
	}
	leaf := p.parsePredicate()
	leaf.Negate = leaf.Negate != negate
	return leaf
}

var opTokens = map[token.Token]ast.Op{
	token.EQ:   ast.OpEq,
	token.EQEQ: ast.OpEq,
	token.NE:   ast.OpNe,
	token.EEQ:  ast.OpEeq,
	token.ENE:  ast.OpEne,
	token.GT:   ast.OpGt,
	token.GTE:  ast.OpGte,
	token.LT:   ast.OpLt,
	token.LTE:  ast.OpLte,
	token.RX:   ast.OpRx,
}

// wordOps are the spelled-out comparison operators, e.g. `size gt 1k`.
var wordOps = map[string]ast.Op{
	"eq": ast.OpEq, "ne": ast.OpNe,
	"gt": ast.OpGt, "gte": ast.OpGte,
	"lt": ast.OpLt, "lte": ast.OpLte,
}

// parsePredicate implements `predicate := FIELD op value`.
func (p *Parser) parsePredicate() *ast.Leaf {
	if p.cur.Type != token.IDENT {
		p.errorf("expected field name, got %q", p.cur.Value)
		return &ast.Leaf{}
	}
	field, ok := ast.LookupField(strings.ToLower(p.cur.Value))
	if !ok {
		p.errorf("unknown field %q", p.cur.Value)
		return &ast.Leaf{}
	}
	p.advance()

	leaf := &ast.Leaf{Field: field}

	switch {
	case p.curKeyword("like"):
		leaf.Op = ast.OpRx
		p.advance()
	case p.cur.Type == token.NRX:
		leaf.Op = ast.OpRx
		leaf.Negate = true
		p.advance()
	case p.cur.Type.IsOperator():
		op, ok := opTokens[p.cur.Type]
		if !ok {
			p.errorf("unsupported operator %q", p.cur.Value)
			return leaf
		}
		leaf.Op = op
		p.advance()
	default:
		op, ok := wordOps[strings.ToLower(p.cur.Value)]
		if p.cur.Type != token.IDENT || !ok {
			p.errorf("expected comparison operator, got %q", p.cur.Value)
			return leaf
		}
		leaf.Op = op
		p.advance()
	}

	if p.cur.Type != token.IDENT && p.cur.Type != token.STRING &&
		p.cur.Type != token.INT && p.cur.Type != token.FLOAT {
		p.errorf("expected value, got %q", p.cur.Value)
		return leaf
	}
	raw := p.cur.Value
	valPos := p.cur.Pos
	p.advance()

	p.coerceLeaf(leaf, raw, valPos)
	return leaf
}

// coerceLeaf applies field-Kind-driven literal coercion to a freshly parsed
// leaf (spec.md §4.4/§9): numeric fields accept size-suffixed literals,
// datetime fields expand to an inclusive [from, to] range, and an Eq against a glob
// pattern on a string field is rewritten into a regex match.
func (p *Parser) coerceLeaf(leaf *ast.Leaf, raw string, pos token.Pos) {
	switch catalog.KindOf(leaf.Field) {
	case ast.KindNumeric:
		if n, ok := parseSize(raw); ok {
			leaf.Val = itoa(n)
		} else {
			p.errorfAt(pos, "bad number %q", raw)
			leaf.Val = raw
		}
	case ast.KindDatetime:
		from, to, ok := parseDatetimeRange(raw)
		if !ok {
			p.errorfAt(pos, "bad date %q", raw)
			leaf.Val = raw
			return
		}
		leaf.HasRange = true
		leaf.DTFrom = from
		leaf.DTTo = to
	case ast.KindBool:
		leaf.Val = raw
	default: // KindString
		leaf.Val = raw
		if leaf.Op == ast.OpEq && isGlobPattern(raw) {
			re, err := globToRegex(raw)
			if err != nil {
				p.errorfAt(pos, "bad pattern %q: %v", raw, err)
				return
			}
			leaf.Op = ast.OpRx
			leaf.Regex = re
			return
		}
		if leaf.Op == ast.OpRx && leaf.Regex == nil {
			re, err := compileRegex(raw)
			if err != nil {
				p.errorfAt(pos, "bad regex %q: %v", raw, err)
				return
			}
			leaf.Regex = re
		}
	}
}

func (p *Parser) errorfAt(pos token.Pos, format string, args ...any) {
	if len(p.errors) > 0 {
		return
	}
	saved := p.cur.Pos
	p.cur.Pos = pos
	p.errorf(format, args...)
	p.cur.Pos = saved
}
