package lexer

import (
	"testing"

	"github.com/freeeve/fselect/token"
)

func tokensOf(t *testing.T, input string) []token.Item {
	t.Helper()
	l := New(input)
	var items []token.Item
	for {
		it := l.Next()
		items = append(items, it)
		if it.Type == token.EOF {
			return items
		}
	}
}

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"name, size from .", []token.Token{token.IDENT, token.COMMA, token.IDENT, token.IDENT, token.IDENT, token.EOF}},
		{"size gt 1k", []token.Token{token.IDENT, token.IDENT, token.INT, token.EOF}},
		{"size > 1024", []token.Token{token.IDENT, token.GT, token.INT, token.EOF}},
		{"a = 'x' and b != \"y\"", []token.Token{token.IDENT, token.EQ, token.STRING, token.IDENT, token.IDENT, token.NE, token.STRING, token.EOF}},
		{"a ~= '.*' or b !~= 'x'", []token.Token{token.IDENT, token.RX, token.STRING, token.IDENT, token.IDENT, token.NRX, token.STRING, token.EOF}},
		{"a === 1 and b !== 2", []token.Token{token.IDENT, token.EEQ, token.INT, token.IDENT, token.IDENT, token.ENE, token.INT, token.EOF}},
		{"(a or b)", []token.Token{token.LPAREN, token.IDENT, token.IDENT, token.IDENT, token.RPAREN, token.EOF}},
	}

	for _, tt := range tests {
		items := tokensOf(t, tt.input)
		if len(items) != len(tt.expected) {
			t.Fatalf("%q: got %d tokens, want %d (%v)", tt.input, len(items), len(tt.expected), items)
		}
		for i, it := range items {
			if it.Type != tt.expected[i] {
				t.Errorf("%q: token %d = %v, want %v", tt.input, i, it.Type, tt.expected[i])
			}
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	items := tokensOf(t, `'a\nb\'c'`)
	if items[0].Type != token.STRING {
		t.Fatalf("want STRING, got %v", items[0].Type)
	}
	if items[0].Value != "a\nb'c" {
		t.Fatalf("got %q", items[0].Value)
	}
}

func TestLexerSizeSuffix(t *testing.T) {
	items := tokensOf(t, "10k 2M 1g")
	want := []string{"10k", "2M", "1g"}
	for i, w := range want {
		if items[i].Value != w {
			t.Errorf("token %d = %q, want %q", i, items[i].Value, w)
		}
		if items[i].Type != token.INT {
			t.Errorf("token %d type = %v, want INT", i, items[i].Type)
		}
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := New("a b")
	p1 := l.Peek()
	p2 := l.Peek()
	if p1 != p2 {
		t.Fatalf("peek not idempotent: %v vs %v", p1, p2)
	}
	n := l.Next()
	if n != p1 {
		t.Fatalf("next after peek = %v, want %v", n, p1)
	}
	n2 := l.Next()
	if n2.Value != "b" {
		t.Fatalf("next = %q, want b", n2.Value)
	}
}

func TestLexerIllegalChar(t *testing.T) {
	items := tokensOf(t, "a @ b")
	if items[1].Type != token.ILLEGAL {
		t.Fatalf("want ILLEGAL for '@', got %v", items[1].Type)
	}
}

func TestLexerPool(t *testing.T) {
	l := Get("a = 1")
	defer Put(l)
	if it := l.Next(); it.Value != "a" {
		t.Fatalf("got %q", it.Value)
	}
}
