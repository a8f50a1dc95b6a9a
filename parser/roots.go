package parser

import (
	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/token"
)

// rootListEnd are the IDENT spellings that terminate a root_list.
var rootListEnd = []string{"where", "order", "limit", "into"}

func (p *Parser) atRootListEnd() bool {
	if p.curIs(token.EOF) {
		return true
	}
	_, ok := p.curKeywordAny(rootListEnd...)
	return ok
}

// parseRootList implements `root_list := root ("," root)*`.
func (p *Parser) parseRootList() []ast.Root {
	roots := []ast.Root{p.parseRoot()}
	for p.curIs(token.COMMA) {
		p.advance()
		roots = append(roots, p.parseRoot())
	}
	return roots
}

// parseRoot implements:
//
//	root := path_value root_opt*
//	root_opt := "mindepth" NUMBER | "maxdepth" NUMBER | "depth" NUMBER
//	          | "archives" | "symlinks" | "gitignore"
func (p *Parser) parseRoot() ast.Root {
	if p.cur.Type != token.IDENT && p.cur.Type != token.STRING {
		p.errorf("expected root path, got %q", p.cur.Value)
		return ast.Root{}
	}
	r := ast.Root{Path: p.cur.Value}
	p.advance()

	for {
		switch {
		case p.curKeyword("mindepth"):
			p.advance()
			n, ok := p.parseIntLiteral()
			if !ok {
				p.errorf("bad number %q after mindepth", p.cur.Value)
				return r
			}
			r.MinDepth = int(n)
		case p.curKeyword("maxdepth"):
			p.advance()
			n, ok := p.parseIntLiteral()
			if !ok {
				p.errorf("bad number %q after maxdepth", p.cur.Value)
				return r
			}
			r.MaxDepth = int(n)
		case p.curKeyword("depth"):
			p.advance()
			n, ok := p.parseIntLiteral()
			if !ok {
				p.errorf("bad number %q after depth", p.cur.Value)
				return r
			}
			r.MinDepth = int(n)
			r.MaxDepth = int(n)
		case p.curKeyword("archives"):
			p.advance()
			r.Archives = true
		case p.curKeyword("symlinks"):
			p.advance()
			r.Symlinks = true
		case p.curKeyword("gitignore"):
			p.advance()
			r.Gitignore = true
		case p.curIs(token.COMMA):
			return r
		default:
			if p.atRootListEnd() {
				return r
			}
			p.errorf("unexpected token %q in root options", p.cur.Value)
			return r
		}
	}
}
