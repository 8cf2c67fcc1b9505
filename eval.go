package crunch

import (
	"fmt"
	"math"
	"strconv"
)

// Eval resolves and evaluates the expression, returning its value as a
// float64. Resolution happens lazily: each group collapses the first time
// the evaluator descends into it. Division by zero follows floating-point
// semantics rather than producing an error.
func (e *Expr) Eval() (float64, error) {
	return evalTerm(e.root)
}

func evalTerm(t term) (float64, error) {
	switch t := t.(type) {
	case *literal:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, &LiteralError{Col: t.col, Text: t.text}
		}
		return v, nil
	case *binary:
		l, err := evalTerm(t.left)
		if err != nil {
			return 0, err
		}
		r, err := evalTerm(t.right)
		if err != nil {
			return 0, err
		}
		switch t.kind {
		case opAdd:
			return l + r, nil
		case opSub:
			return l - r, nil
		case opMul:
			return l * r, nil
		case opDiv:
			return l / r, nil
		case opMod:
			return math.Mod(l, r), nil
		case opPow:
			return math.Pow(l, r), nil
		case opRoot:
			// a ~ b is the a-th root of b.
			return math.Pow(r, 1/l), nil
		default:
			panic("crunch: invalid operator kind " + t.kind.String())
		}
	case *group:
		if err := t.resolve(); err != nil {
			return 0, err
		}
		return evalTerm(t.body[0])
	case *operator:
		return 0, &InternalError{Col: t.col, Op: t.kind.String()}
	default:
		panic(fmt.Sprintf("crunch: unknown term %T", t))
	}
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	e, err := ParseString(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
