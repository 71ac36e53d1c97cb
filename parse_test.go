package whizz_test

import (
	"testing"

	"github.com/expressionwhizz/whizz"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"value", "42", "42"},
		{"symbol", "x", "x"},
		{"add", "1+2", "(1 + 2)"},
		{"precedence", "1+2*3", "(1 + (2 * 3))"},
		{"precedence-rev", "1*2+3", "((1 * 2) + 3)"},
		{"sub-left-assoc", "10-2-3", "((10 - 2) - 3)"},
		{"div-left-assoc", "10/2/5", "((10 / 2) / 5)"},
		{"pow-right-assoc", "2^3^2", "(2 ^ (3 ^ 2))"},
		{"pow-over-mul", "2*3^2", "(2 * (3 ^ 2))"},
		{"neg", "-x", "(-x)"},
		{"neg-nested", "--x", "(-(-x))"},
		{"neg-binds-tightest", "-2^2", "((-2) ^ 2)"},
		{"neg-rhs", "2^-3", "(2 ^ (-3))"},
		{"parens", "(1+2)*3", "((1 + 2) * 3)"},
		{"assign", "x = 25", "(x = 25)"},
		{"assign-chain", "a = b = y", "(a = (b = y))"},
		{"assign-in-parens", "x = 3 * (y = 2)", "(x = (3 * (y = 2)))"},
		{"assign-non-symbol", "3 = 4", "(3 = 4)"},
		{"increment-shorthand", "5++*2", "(6 * 2)"},
		{"float-fmt", "0.5 + .25", "(0.5 + 0.25)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := whizz.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("parsing %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n"} {
		e, err := whizz.ParseString(src)
		if err != nil {
			t.Errorf("parsing %q: unexpected error %v", src, err)
		}
		if e != nil {
			t.Errorf("parsing %q: want nil expression, got %q", src, e)
		}
	}
	if e, err := whizz.Parse(nil); e != nil || err != nil {
		t.Errorf("parsing nil stream: got %v, %v", e, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"trailing-paren", "3 + 2)", "Syntax error on token CLOSE_PAREN"},
		{"trailing-value", "1 2", "Syntax error on token VALUE"},
		{"double-op", "2 + + 3", "Unexpected token PLUS"},
		{"leading-op", "*1", "Unexpected token MULTIPLY"},
		{"dangling-op", "1 +", "Unexpected token (end)"},
		{"empty-parens", "()", "Unexpected token CLOSE_PAREN"},
		{"unmatched-open", "(1+2", "Expected ')'"},
		{"unmatched-nested", "2*((3+4)", "Expected ')'"},
		{"dangling-equal", "x =", "Unexpected token (end)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := whizz.ParseString(c.src)
			if err == nil {
				t.Fatalf("parsing %q: expected error, got %q", c.src, e)
			}
			if err.Error() != c.msg {
				t.Errorf("parsing %q: want error %q, got %q", c.src, c.msg, err.Error())
			}
		})
	}
}

func TestCountDepth(t *testing.T) {
	cases := []struct {
		src   string
		count int
		depth int
	}{
		{"1", 1, 1},
		{"x", 1, 1},
		{"-x", 2, 2},
		{"1+2", 3, 2},
		{"1+2*3", 5, 3},
		{"(1+2)*3", 5, 3},
		{"x = y = 3", 5, 3},
		{"2^3^2", 5, 3},
	}

	for _, c := range cases {
		e, err := whizz.ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if got := e.Count(); got != c.count {
			t.Errorf("count of %q: want %d, got %d", c.src, c.count, got)
		}
		if got := e.Depth(); got != c.depth {
			t.Errorf("depth of %q: want %d, got %d", c.src, c.depth, got)
		}
	}
}
