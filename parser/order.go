package parser

import (
	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/token"
)

// parseOrderList implements:
//
//	order_list := order_item ("," order_item)*
//	order_item := column_expr [ "asc" | "desc" ]
//
// Ascending is the default direction when neither keyword is given.
func (p *Parser) parseOrderList() ([]ast.ColumnExpr, []bool) {
	var fields []ast.ColumnExpr
	var asc []bool

	for {
		fields = append(fields, p.parseColumnExpr())
		switch {
		case p.curKeyword("asc"):
			p.advance()
			asc = append(asc, true)
		case p.curKeyword("desc"):
			p.advance()
			asc = append(asc, false)
		default:
			asc = append(asc, true)
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return fields, asc
}
