package crunch

import (
	"io"
	"strings"
)

// Expr is a parsed expression. Parse applies no precedence; the first
// evaluation resolves each group in place as it descends.
type Expr struct {
	root *group
}

// Parse tokenizes an expression without resolving or evaluating it. The
// given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	g := defaultGrammar()
	for _, opt := range opts {
		g = opt.parseOption(g)
	}
	l := &lexer{src: src, rune: 1, g: g}
	body, err := l.tokenize(0)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	return &Expr{root: &group{body: body, col: 1}}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// String creates a string representation of the expression, with every
// resolved operation parenthesized. Operators not yet bound by evaluation
// appear between question marks.
func (e *Expr) String() string {
	var b strings.Builder
	e.root.fmtTo(&b)
	return b.String()
}
