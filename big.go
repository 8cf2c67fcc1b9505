package crunch

import (
	"fmt"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Context carries settings for arbitrary-precision evaluation. A Context
// is not safe to use concurrently.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type precopt uint

func (o precopt) ctxOption(ctx *Context) { ctx.prec = uint(o) }

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption { return precopt(prec) }

// NewContext creates a new evaluation context. If no precision is given,
// the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{prec: 64}
	for _, opt := range opts {
		opt.ctxOption(ctx)
	}
	return ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint { return ctx.prec }

// EvalBig resolves and evaluates the expression at the context's
// precision. Unlike Eval, operations whose float64 results would follow
// IEEE special-value semantics, such as 0/0, report a DomainError.
func (e *Expr) EvalBig(ctx *Context) (*big.Float, error) {
	return ctx.eval(e.root)
}

func (ctx *Context) eval(t term) (*big.Float, error) {
	switch t := t.(type) {
	case *literal:
		r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(t.text, 10)
		if err != nil {
			return nil, &LiteralError{Col: t.col, Text: t.text}
		}
		return r, nil
	case *binary:
		l, err := ctx.eval(t.left)
		if err != nil {
			return nil, err
		}
		r, err := ctx.eval(t.right)
		if err != nil {
			return nil, err
		}
		return ctx.apply(t, l, r)
	case *group:
		if err := t.resolve(); err != nil {
			return nil, err
		}
		return ctx.eval(t.body[0])
	case *operator:
		return nil, &InternalError{Col: t.col, Op: t.kind.String()}
	default:
		panic(fmt.Sprintf("crunch: unknown term %T", t))
	}
}

func (ctx *Context) apply(t *binary, l, r *big.Float) (*big.Float, error) {
	switch t.kind {
	case opAdd:
		return l.Add(l, r), nil
	case opSub:
		return l.Sub(l, r), nil
	case opMul:
		return l.Mul(l, r), nil
	case opDiv:
		// Guard against invalid divisions, 0/0 or inf/inf.
		if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return nil, &DomainError{Col: t.col, Op: t.kind.String()}
		}
		return l.Quo(l, r), nil
	case opMod:
		if r.Sign() == 0 || l.IsInf() {
			return nil, &DomainError{Col: t.col, Op: t.kind.String()}
		}
		if r.IsInf() {
			return l, nil
		}
		// l - trunc(l/r)*r, the truncated remainder.
		q := new(big.Float).SetPrec(ctx.prec).Quo(l, r)
		i, _ := q.Int(nil)
		q.SetInt(i).SetPrec(ctx.prec)
		return l.Sub(l, q.Mul(q, r)), nil
	case opPow:
		// Guard against invalid exponentiations, i.e. negative base.
		if l.Signbit() && l.Sign() != 0 {
			return nil, &DomainError{Col: t.col, Op: t.kind.String()}
		}
		bigfloat.Pow(l, l, r)
		return l, nil
	case opRoot:
		// a ~ b is the a-th root of b, so the exponent is 1/a.
		if l.Sign() <= 0 || (r.Signbit() && r.Sign() != 0) {
			return nil, &DomainError{Col: t.col, Op: t.kind.String()}
		}
		inv := new(big.Float).SetPrec(ctx.prec).Quo(big.NewFloat(1), l)
		bigfloat.Pow(r, r, inv)
		return r, nil
	default:
		panic("crunch: invalid operator kind " + t.kind.String())
	}
}
