package crunch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// astcmp lets go-cmp look inside the unexported term variants.
var astcmp = cmp.Options{
	cmp.AllowUnexported(literal{}, operator{}, binary{}, group{}, Expr{}),
}

func lexAll(src string, opts ...ParseOption) ([]term, error) {
	g := defaultGrammar()
	for _, opt := range opts {
		g = opt.parseOption(g)
	}
	l := &lexer{src: strings.NewReader(src), rune: 1, g: g}
	return l.tokenize(0)
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []term
	}{
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		{"int", "12", []term{&literal{text: "12", col: 1}}},
		{"real", "3.14", []term{&literal{text: "3.14", col: 1}}},
		{"trailing-dot", "2.", []term{&literal{text: "2.0", col: 1}}},
		{"hex", "#ff", []term{&literal{text: "255", col: 1}}},
		{"hex-upper", "#DEAD", []term{&literal{text: "57005", col: 1}}},
		{"hex-zero", "#0", []term{&literal{text: "0", col: 1}}},
		{"ops", "+-*/%^~", []term{
			&operator{kind: opAdd, col: 1},
			&operator{kind: opSub, col: 2},
			&operator{kind: opMul, col: 3},
			&operator{kind: opDiv, col: 4},
			&operator{kind: opMod, col: 5},
			&operator{kind: opPow, col: 6},
			&operator{kind: opRoot, col: 7},
		}},
		{"flat", "1+2", []term{
			&literal{text: "1", col: 1},
			&operator{kind: opAdd, col: 2},
			&literal{text: "2", col: 3},
		}},
		{"group", "(1)", []term{
			&group{body: []term{&literal{text: "1", col: 2}}, col: 1},
		}},
		{"nested", "((2))", []term{
			&group{body: []term{
				&group{body: []term{&literal{text: "2", col: 3}}, col: 2},
			}, col: 1},
		}},
		{"group-cols", "1 (2+3)", []term{
			&literal{text: "1", col: 1},
			&group{body: []term{
				&literal{text: "2", col: 4},
				&operator{kind: opAdd, col: 5},
				&literal{text: "3", col: 6},
			}, col: 3},
		}},
		{"adjacent", "1 2", []term{
			&literal{text: "1", col: 1},
			&literal{text: "2", col: 3},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lexAll(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: unexpected error %v", c.src, err)
			}
			if diff := cmp.Diff(c.want, got, astcmp); diff != "" {
				t.Errorf("tokenizing %q gave wrong terms (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want InputError
	}{
		{"unterminated", "(1+2", &BracketError{Col: 1, Left: "("}},
		{"unterminated-nested", "1*((2)", &BracketError{Col: 3, Left: "("}},
		{"unmatched", ")", &BracketError{Col: 1, Right: ")"}},
		{"unmatched-late", "1+2)", &BracketError{Col: 4, Right: ")"}},
		{"unexpected", "1+&", &TokenError{Col: 3, Rune: '&'}},
		{"letter", "2x", &TokenError{Col: 2, Rune: 'x'}},
		{"second-dot", "1.2.3", &TokenError{Col: 4, Rune: '.'}},
		{"hex-empty", "#", &NumberError{Col: 1, Text: "#"}},
		{"hex-cut", "#+1", &NumberError{Col: 1, Text: "#"}},
		{"hex-overflow", "#" + strings.Repeat("f", 17), &NumberError{Col: 1, Text: "#" + strings.Repeat("f", 17)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lexAll(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q gave no error (terms %v)", c.src, got)
			}
			if diff := cmp.Diff(c.want, err, astcmp); diff != "" {
				t.Errorf("tokenizing %q gave wrong error (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeDepthLimit(t *testing.T) {
	src := strings.Repeat("(", maxDepth+1) + "1" + strings.Repeat(")", maxDepth+1)
	_, err := lexAll(src)
	de, ok := err.(*DepthError)
	if !ok {
		t.Fatalf("tokenizing %d nested groups gave %v, not *DepthError", maxDepth+1, err)
	}
	if de.Limit != maxDepth {
		t.Errorf("wrong limit in %v: want %d", de, maxDepth)
	}
	src = strings.Repeat("(", maxDepth) + "1" + strings.Repeat(")", maxDepth)
	if _, err := lexAll(src); err != nil {
		t.Errorf("tokenizing %d nested groups should be allowed, got %v", maxDepth, err)
	}
}

func TestTokenizeGrammarOptions(t *testing.T) {
	t.Run("no-hex", func(t *testing.T) {
		_, err := lexAll("#ff", DisableHex())
		if _, ok := err.(*TokenError); !ok {
			t.Errorf("#ff without hex literals gave %v, not *TokenError", err)
		}
	})
	t.Run("no-decimals", func(t *testing.T) {
		_, err := lexAll("3.14", DisableDecimals())
		te, ok := err.(*TokenError)
		if !ok {
			t.Fatalf("3.14 without decimals gave %v, not *TokenError", err)
		}
		if te.Rune != '.' {
			t.Errorf("wrong rune in %v: want '.'", te)
		}
	})
	t.Run("restricted-ops", func(t *testing.T) {
		if _, err := lexAll("2+3", WithOperators("+-")); err != nil {
			t.Errorf("2+3 with +- grammar gave error %v", err)
		}
		_, err := lexAll("2*3", WithOperators("+-"))
		if _, ok := err.(*TokenError); !ok {
			t.Errorf("2*3 with +- grammar gave %v, not *TokenError", err)
		}
	})
}

func TestWithOperatorsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithOperators(\"!\") did not panic")
		}
	}()
	WithOperators("!")
}
