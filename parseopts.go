package crunch

import (
	"strconv"
	"strings"
)

// Operators contains the runes which the full grammar recognizes as
// operators.
const Operators = "+-*/%^~"

var defaultOps = map[rune]opKind{
	'+': opAdd,
	'-': opSub,
	'*': opMul,
	'/': opDiv,
	'%': opMod,
	'^': opPow,
	'~': opRoot,
}

// grammar holds the token forms one call to Parse recognizes.
type grammar struct {
	// ops maps operator runes to their kinds.
	ops map[rune]opKind
	// decimals indicates whether literals may contain a decimal point.
	decimals bool
	// hex indicates whether #-prefixed hexadecimal literals are recognized.
	hex bool
}

func defaultGrammar() grammar {
	return grammar{ops: defaultOps, decimals: true, hex: true}
}

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(grammar) grammar
}

type (
	opsopt string
	hexopt struct{}
	decopt struct{}
)

// WithOperators restricts the operators the tokenizer recognizes to the
// runes in set. Panics if set contains a rune that is not in Operators.
func WithOperators(set string) ParseOption {
	for _, r := range set {
		if !strings.ContainsRune(Operators, r) {
			panic("crunch: cannot parse operator " + strconv.QuoteRune(r))
		}
	}
	return opsopt(set)
}

func (o opsopt) parseOption(g grammar) grammar {
	// Always make a copy; the default table is shared.
	ops := make(map[rune]opKind, len(o))
	for _, r := range string(o) {
		ops[r] = defaultOps[r]
	}
	g.ops = ops
	return g
}

// DisableHex removes #-prefixed hexadecimal literals from the grammar.
func DisableHex() ParseOption { return hexopt{} }

func (hexopt) parseOption(g grammar) grammar {
	g.hex = false
	return g
}

// DisableDecimals removes the decimal point from the grammar, leaving
// integer-only literals.
func DisableDecimals() ParseOption { return decopt{} }

func (decopt) parseOption(g grammar) grammar {
	g.decimals = false
	return g
}
