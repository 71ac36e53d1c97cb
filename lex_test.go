package whizz

import (
	"strings"
	"testing"
)

func val(v float64) Token { return Token{Kind: TokenValue, Value: v} }
func sym(s string) Token { return Token{Kind: TokenSymbol, Symbol: s} }
func op(k TokenKind) Token { return Token{Kind: k} }

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		toks []Token
	}{
		// whitespace
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{val(0)}},
		{"42", []Token{val(42)}},
		{"3.14", []Token{val(3.14)}},
		{".5", []Token{val(0.5)}},
		{"1.", []Token{val(1)}},
		{"1e3", []Token{val(1000)}},
		{"2.5e-2", []Token{val(0.025)}},
		{"1E+2", []Token{val(100)}},
		// exponent without digits is not part of the literal
		{"1.2e", []Token{val(1.2), sym("e")}},
		{"1e+", []Token{val(1), sym("e"), op(TokenPlus)}},
		// hex floats
		{"0x3p+2", []Token{val(12)}},
		{"0x10", []Token{val(16)}},
		{"0x.8p1", []Token{val(1)}},
		{"0xAp-1", []Token{val(5)}},
		{"0x", []Token{val(0), sym("x")}},
		// operators
		{"+-*/^()=", []Token{
			op(TokenPlus), op(TokenMinus), op(TokenMultiply), op(TokenDivide),
			op(TokenPower), op(TokenOpenParen), op(TokenCloseParen), op(TokenEqual),
		}},
		{"1 + 2", []Token{val(1), op(TokenPlus), val(2)}},
		// symbols
		{"x", []Token{sym("x")}},
		{"_foo", []Token{sym("_foo")}},
		{"a_1b", []Token{sym("a_1b")}},
		{"x y", []Token{sym("x"), sym("y")}},
		{strings.Repeat("a", 31), []Token{sym(strings.Repeat("a", 31))}},
		// increment/decrement shorthand: only between a number and another
		// operator
		{"5++*2", []Token{val(6), op(TokenMultiply), val(2)}},
		{"7--/2", []Token{val(6), op(TokenDivide), val(2)}},
		{"2++^3", []Token{val(3), op(TokenPower), val(3)}},
		{"5++3", []Token{val(5), op(TokenPlus), op(TokenPlus), val(3)}},
		{"5++", []Token{val(5), op(TokenPlus), op(TokenPlus)}},
		{"x++*2", []Token{sym("x"), op(TokenPlus), op(TokenPlus), op(TokenMultiply), val(2)}},
		{"1--2", []Token{val(1), op(TokenMinus), op(TokenMinus), val(2)}},
	}

	for _, c := range cases {
		ts, err := Tokenize(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if ts.Len() != len(c.toks) {
			t.Errorf("scanning %q: want %d tokens, got %d", c.src, len(c.toks), ts.Len())
		}
		for i, want := range c.toks {
			if got := ts.Next(); got != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got)
			}
		}
		if got := ts.Next(); got.Kind != TokenEnd {
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
		pos int
	}{
		{"@", "Position 1: unexpected character @", 1},
		{"1 + $", "Position 5: unexpected character $", 5},
		{"#1", "Position 1: unexpected character #", 1},
		{strings.Repeat("a", 32), "Position 1: symbol too long", 1},
		{"1 + " + strings.Repeat("b", 40), "Position 5: symbol too long", 5},
	}

	for _, c := range cases {
		ts, err := Tokenize(c.src)
		if err == nil {
			t.Errorf("scanning %q: expected error, got %d tokens", c.src, ts.Len())
			continue
		}
		if err.Error() != c.msg {
			t.Errorf("scanning %q: want error %q, got %q", c.src, c.msg, err.Error())
		}
		ie, ok := err.(InputError)
		if !ok {
			t.Errorf("scanning %q: error %T does not implement InputError", c.src, err)
			continue
		}
		if ie.Pos() != c.pos {
			t.Errorf("scanning %q: want position %d, got %d", c.src, c.pos, ie.Pos())
		}
	}
}

func TestTokenStreamEnd(t *testing.T) {
	ts, err := Tokenize("1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		ts.Next()
	}
	// Exhausted streams answer every query with the End sentinel.
	for i := 0; i < 4; i++ {
		if got := ts.Next(); got.Kind != TokenEnd {
			t.Errorf("consume %d past end: want (end), got %v", i, got)
		}
		if got := ts.PeekKind(); got != TokenEnd {
			t.Errorf("peek %d past end: want (end), got %v", i, got)
		}
	}
	if ts.Len() != 0 {
		t.Errorf("exhausted stream has Len %d", ts.Len())
	}
}
