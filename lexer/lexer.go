// Package lexer tokenizes fselect query strings.
package lexer

import (
	"sync"

	"github.com/freeeve/fselect/token"
)

// Lexer scans a query string into a stream of token.Item values. It is
// whitespace-agnostic; unknown characters are returned as ILLEGAL and left
// for the parser to diagnose.
type Lexer struct {
	input   string
	start   int
	pos     int
	line    int
	linePos int
	item    token.Item
	peeked  bool
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

var pool = sync.Pool{New: func() any { return &Lexer{} }}

// Get returns a pooled Lexer reset to scan input. Pair with Put.
func Get(input string) *Lexer {
	l := pool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns l to the pool.
func Put(l *Lexer) { pool.Put(l) }

// Reset reinitializes l to scan a new input string.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.start = 0
	l.pos = 0
	l.line = 1
	l.linePos = 0
	l.item = token.Item{}
	l.peeked = false
}

// Next consumes and returns the next token.
func (l *Lexer) Next() token.Item {
	if l.peeked {
		l.peeked = false
		return l.item
	}
	l.item = l.scan()
	return l.item
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Item {
	if !l.peeked {
		l.item = l.scan()
		l.peeked = true
	}
	return l.item
}

func (l *Lexer) scan() token.Item {
	l.skipWhitespace()
	l.start = l.pos

	if l.pos >= len(l.input) {
		return l.makeItem(token.EOF, "")
	}

	ch := l.input[l.pos]

	switch ch {
	case '(':
		l.pos++
		return l.makeItem(token.LPAREN, "(")
	case ')':
		l.pos++
		return l.makeItem(token.RPAREN, ")")
	case ',':
		l.pos++
		return l.makeItem(token.COMMA, ",")
	case '\'':
		return l.scanString('\'')
	case '"':
		return l.scanString('"')
	case '=':
		return l.scanEquals()
	case '<':
		return l.scanLessThan()
	case '>':
		return l.scanGreaterThan()
	case '!':
		return l.scanBang()
	case '~':
		return l.scanTilde()
	}

	if isIdentStart(ch) {
		return l.scanIdentifier()
	}
	if isDigit(ch) {
		return l.scanNumber()
	}

	l.pos++
	return l.makeItem(token.ILLEGAL, string(ch))
}

func (l *Lexer) makeItem(typ token.Token, val string) token.Item {
	return token.Item{
		Type:  typ,
		Value: val,
		Pos: token.Pos{
			Offset: l.start,
			Line:   l.line,
			Column: l.start - l.linePos + 1,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
			l.linePos = l.pos
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() token.Item {
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	return l.makeItem(token.IDENT, l.input[l.start:l.pos])
}

// scanNumber scans INT/FLOAT literals, including size-suffixed forms like
// 10k/2M/1g which the parser (not the lexer) interprets against the byte
// table in spec.md §4.2 — the lexer only needs to keep the trailing letter
// attached to the literal's text so the parser can see it. Dash-joined
// digit runs such as 2020-03 or 2020-03-15 are kept as one literal so the
// parser can read them as dates.
func (l *Lexer) scanNumber() token.Item {
	tok := token.INT
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		tok = token.FLOAT
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	isDate := false
	for tok == token.INT && l.pos+1 < len(l.input) && l.input[l.pos] == '-' && isDigit(l.input[l.pos+1]) {
		isDate = true
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	if !isDate && l.pos < len(l.input) && isSizeSuffix(l.input[l.pos]) {
		l.pos++
	}
	return l.makeItem(tok, l.input[l.start:l.pos])
}

// scanString scans a single- or double-quoted literal with backslash
// escapes, per spec.md §4.1.
func (l *Lexer) scanString(quote byte) token.Item {
	l.pos++
	var buf []byte
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			l.pos++
			return l.makeItem(token.STRING, string(buf))
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			next := l.input[l.pos+1]
			switch next {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			case '\\', '\'', '"':
				buf = append(buf, next)
			default:
				buf = append(buf, '\\', next)
			}
			l.pos += 2
			continue
		}
		if ch == '\n' {
			l.line++
			l.linePos = l.pos + 1
		}
		buf = append(buf, ch)
		l.pos++
	}
	return l.makeItem(token.ILLEGAL, l.input[l.start:l.pos])
}

func (l *Lexer) scanEquals() token.Item {
	l.pos++
	if l.pos < len(l.input) && l.input[l.pos] == '=' {
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '=' {
			l.pos++
			return l.makeItem(token.EEQ, "===")
		}
		return l.makeItem(token.EQEQ, "==")
	}
	return l.makeItem(token.EQ, "=")
}

func (l *Lexer) scanLessThan() token.Item {
	l.pos++
	if l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '=':
			l.pos++
			return l.makeItem(token.LTE, "<=")
		case '>':
			l.pos++
			return l.makeItem(token.NE, "<>")
		}
	}
	return l.makeItem(token.LT, "<")
}

func (l *Lexer) scanGreaterThan() token.Item {
	l.pos++
	if l.pos < len(l.input) && l.input[l.pos] == '=' {
		l.pos++
		return l.makeItem(token.GTE, ">=")
	}
	return l.makeItem(token.GT, ">")
}

func (l *Lexer) scanBang() token.Item {
	l.pos++
	if l.pos < len(l.input) && l.input[l.pos] == '=' {
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '=' {
			l.pos++
			return l.makeItem(token.ENE, "!==")
		}
		return l.makeItem(token.NE, "!=")
	}
	if l.pos < len(l.input) && l.input[l.pos] == '~' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
		l.pos += 2
		return l.makeItem(token.NRX, "!~=")
	}
	return l.makeItem(token.ILLEGAL, "!")
}

func (l *Lexer) scanTilde() token.Item {
	l.pos++
	if l.pos < len(l.input) && l.input[l.pos] == '=' {
		l.pos++
		return l.makeItem(token.RX, "~=")
	}
	return l.makeItem(token.ILLEGAL, "~")
}

// isIdentStart accepts the characters that can begin a bare value in this
// grammar: letters, underscore, and the path/glob characters a field name,
// root path, or unquoted pattern value may start with.
func isIdentStart(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return true
	}
	switch ch {
	case '_', '.', '/', '*', '?', '-':
		return true
	}
	return false
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isSizeSuffix(ch byte) bool {
	switch ch {
	case 'k', 'K', 'm', 'M', 'g', 'G', 't', 'T':
		return true
	default:
		return false
	}
}
