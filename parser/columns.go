package parser

import (
	"strings"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/token"
)

// columnListEnd are the IDENT spellings that terminate a column_list or a
// function argument list in contexts where no comma follows.
var columnListEnd = []string{"from", "where", "order", "limit", "into"}

func (p *Parser) atColumnListEnd() bool {
	if p.curIs(token.EOF) || p.curIs(token.RPAREN) {
		return true
	}
	_, ok := p.curKeywordAny(columnListEnd...)
	return ok
}

// parseColumnList implements `column_list := column_expr ("," column_expr)*`.
func (p *Parser) parseColumnList() []ast.ColumnExpr {
	cols := []ast.ColumnExpr{p.parseColumnExpr()}
	for p.curIs(token.COMMA) {
		p.advance()
		cols = append(cols, p.parseColumnExpr())
	}
	return cols
}

// parseColumnExpr implements:
//
//	column_expr := value | FIELD | FUNC "(" column_expr ")"
func (p *Parser) parseColumnExpr() ast.ColumnExpr {
	switch p.cur.Type {
	case token.STRING, token.INT, token.FLOAT:
		v := p.cur.Value
		p.advance()
		return &ast.Literal{Value: v}
	case token.IDENT:
		lower := strings.ToLower(p.cur.Value)
		if fn, ok := ast.LookupFunction(lower); ok {
			return p.parseFuncCall(fn)
		}
		if f, ok := ast.LookupField(lower); ok {
			v := p.cur.Value
			_ = v
			p.advance()
			return &ast.FieldRef{Field: f}
		}
		v := p.cur.Value
		p.advance()
		return &ast.Literal{Value: v}
	default:
		p.errorf("expected column expression, got %q", p.cur.Value)
		p.advance()
		return &ast.Literal{}
	}
}

func (p *Parser) parseFuncCall(fn ast.Function) ast.ColumnExpr {
	p.advance() // consume function name
	if !p.expect(token.LPAREN) {
		return &ast.FuncCall{Func: fn}
	}
	var arg ast.ColumnExpr
	if p.curIs(token.IDENT) && p.cur.Value == "*" {
		p.advance()
	} else if !p.curIs(token.RPAREN) {
		arg = p.parseColumnExpr()
	}
	p.expect(token.RPAREN)
	return &ast.FuncCall{Func: fn, Arg: arg}
}
