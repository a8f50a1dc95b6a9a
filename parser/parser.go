// Package parser implements the recursive-descent parser for fselect query
// strings, producing an immutable ast.Query (spec.md §4.2).
package parser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/freeeve/fselect/ast"
	"github.com/freeeve/fselect/lexer"
	"github.com/freeeve/fselect/token"
)

// Parser is a recursive-descent parser over a single query string.
type Parser struct {
	lexer  *lexer.Lexer
	errors []ParseError
	cur    token.Item
}

// ParseError reports the first problem the parser found, with position,
// matching the taxonomy of spec.md §4.2/§7: UnexpectedToken, ExpectedX,
// BadNumber, BadDate, BadRegex, UnknownField all surface through this one
// type with a descriptive Message.
type ParseError struct {
	Pos     token.Pos
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// New creates a Parser over input and primes the first token.
func New(input string) *Parser {
	p := &Parser{lexer: lexer.New(input)}
	p.advance()
	return p
}

var pool = sync.Pool{New: func() any { return &Parser{} }}

// Get returns a pooled Parser reset to parse input. Pair with Put.
func Get(input string) *Parser {
	p := pool.Get().(*Parser)
	p.lexer = lexer.Get(input)
	p.errors = p.errors[:0]
	p.cur = token.Item{}
	p.advance()
	return p
}

// Put returns p (and its lexer) to the pool.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	pool.Put(p)
}

// Parse parses the whole query string into an ast.Query. On error it
// reports the first problem found and stops, per spec.md §4.2.
func Parse(input string) (*ast.Query, error) {
	p := Get(input)
	defer Put(p)
	return p.parseQuery()
}

func (p *Parser) advance() { p.cur = p.lexer.Next() }

func (p *Parser) curIs(t token.Token) bool { return p.cur.Type == t }

// curKeyword reports whether the current token is an IDENT spelling one of
// the reserved words, case-insensitively, without consuming it. The lexer
// never classifies keywords itself (spec.md §4.1: "identifiers (keywords
// and field names, case-insensitive)" share one token class) — keyword
// recognition is entirely the parser's responsibility, at the specific
// grammar positions where a keyword is expected.
func (p *Parser) curKeyword(word string) bool {
	return p.cur.Type == token.IDENT && strings.EqualFold(p.cur.Value, word)
}

func (p *Parser) curKeywordAny(words ...string) (string, bool) {
	if p.cur.Type != token.IDENT {
		return "", false
	}
	for _, w := range words {
		if strings.EqualFold(p.cur.Value, w) {
			return w, true
		}
	}
	return "", false
}

func (p *Parser) expect(t token.Token) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf("expected %v, got %v %q", t, p.cur.Type, p.cur.Value)
	return false
}

func (p *Parser) expectKeyword(word string) bool {
	if p.curKeyword(word) {
		p.advance()
		return true
	}
	p.errorf("expected %q, got %q", word, p.cur.Value)
	return false
}

func (p *Parser) errorf(format string, args ...any) {
	if len(p.errors) > 0 {
		return // report only the first, per spec.md §4.2
	}
	p.errors = append(p.errors, ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) firstError() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors[0]
}

// parseQuery implements the top-level grammar:
//
//	query := column_list [ "from" root_list ] [ "where" expr ]
//	         [ "order by" order_list ] [ "limit" NUMBER ] [ "into" format ]
func (p *Parser) parseQuery() (*ast.Query, error) {
	q := &ast.Query{Format: ast.FormatLines}

	q.Fields = p.parseColumnList()
	if err := p.firstError(); err != nil {
		return nil, err
	}

	if p.curKeyword("from") {
		p.advance()
		q.Roots = p.parseRootList()
	}
	if len(q.Roots) == 0 {
		// SPEC_FULL.md §C: default root is "." when `from` is absent.
		q.Roots = []ast.Root{{Path: "."}}
	}

	if p.curKeyword("where") {
		p.advance()
		q.Expr = p.parseOrExpr()
	}

	if p.curKeyword("order") {
		p.advance()
		if !p.expectKeyword("by") {
			return nil, p.firstError()
		}
		q.OrderFields, q.OrderAsc = p.parseOrderList()
	}

	if p.curKeyword("limit") {
		p.advance()
		n, ok := p.parseIntLiteral()
		if !ok {
			p.errorf("bad number %q in limit", p.cur.Value)
			return nil, p.firstError()
		}
		q.Limit = int(n)
	}

	if p.curKeyword("into") {
		p.advance()
		if p.cur.Type != token.IDENT {
			p.errorf("expected output format, got %q", p.cur.Value)
			return nil, p.firstError()
		}
		f, ok := ast.LookupFormat(strings.ToLower(p.cur.Value))
		if !ok {
			p.errorf("unknown output format %q", p.cur.Value)
			return nil, p.firstError()
		}
		q.Format = f
		p.advance()
	}

	if err := p.firstError(); err != nil {
		return nil, err
	}
	if !p.curIs(token.EOF) {
		p.errorf("unexpected token %q after query", p.cur.Value)
		return nil, p.firstError()
	}
	return q, nil
}

func (p *Parser) parseIntLiteral() (int64, bool) {
	if p.cur.Type != token.INT {
		return 0, false
	}
	n, ok := parseSize(p.cur.Value)
	if ok {
		p.advance()
	}
	return n, ok
}
