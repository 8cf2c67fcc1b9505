package crunch

import "strings"

// term is one node of an expression. A freshly tokenized sequence mixes
// literals, operator placeholders, and nested groups; resolution replaces
// each placeholder with a binary node. The evaluator only ever accepts
// literals, binaries, and groups.
type term interface {
	// pos returns the rune column at which the term started.
	pos() int
	fmtTo(b *strings.Builder)
}

type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opPow
	opRoot
)

func (k opKind) String() string {
	switch k {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opMod:
		return "%"
	case opPow:
		return "^"
	case opRoot:
		return "~"
	default:
		return "?"
	}
}

// literal is a numeric literal, held as text until evaluation parses it.
// Hexadecimal literals are converted to decimal text by the tokenizer.
type literal struct {
	text string
	col  int
}

// operator is an unresolved operator placeholder. It carries no operands;
// resolution is the act of replacing it with a binary node. One of these
// surviving past resolution is a bug.
type operator struct {
	kind opKind
	col  int
}

// binary is a resolved operator node. Only the resolver constructs these,
// and it always sets both operands.
type binary struct {
	kind  opKind
	left  term
	right term
	col   int
}

// group is one parenthesis level. The root of every parse is a group, and
// a group owns its children exclusively.
type group struct {
	body []term
	col  int
}

func (t *literal) pos() int  { return t.col }
func (t *operator) pos() int { return t.col }
func (t *binary) pos() int   { return t.col }
func (g *group) pos() int    { return g.col }

func (t *literal) fmtTo(b *strings.Builder) {
	b.WriteString(t.text)
}

func (t *operator) fmtTo(b *strings.Builder) {
	// Unresolved placeholders use invalid characters.
	b.WriteByte('?')
	b.WriteString(t.kind.String())
	b.WriteByte('?')
}

func (t *binary) fmtTo(b *strings.Builder) {
	b.WriteByte('(')
	t.left.fmtTo(b)
	b.WriteByte(' ')
	b.WriteString(t.kind.String())
	b.WriteByte(' ')
	t.right.fmtTo(b)
	b.WriteByte(')')
}

func (g *group) fmtTo(b *strings.Builder) {
	b.WriteByte('(')
	for i, t := range g.body {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmtTo(b)
	}
	b.WriteByte(')')
}
