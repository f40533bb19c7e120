package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/nexsys2-lang/nexsys2/symtab"
)

// Eval evaluates the tree under ctx, resolving KindVariable names against
// assign first and ctx's constants second. Division and exponentiation
// follow native IEEE-754 float64 semantics: division by zero yields ±Inf,
// 0^0 yields 1, and a negative base with a non-integer exponent yields NaN.
func (e *Expr) Eval(ctx *symtab.Context, assign map[string]float64) (float64, error) {
	switch e.Kind {
	case KindLiteral:
		return e.Value, nil

	case KindVariable:
		if v, ok := assign[e.Name]; ok {
			return v, nil
		}
		if v, ok := ctx.Const(e.Name); ok {
			return v, nil
		}
		return 0, fmt.Errorf("expr.Eval(%s): %w", e.Name, ErrUnknownSymbol)

	case KindNeg:
		v, err := e.Child.Eval(ctx, assign)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case KindBinary:
		l, err := e.Left.Eval(ctx, assign)
		if err != nil {
			return 0, err
		}
		r, err := e.Right.Eval(ctx, assign)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			return l / r, nil
		case '^':
			return math.Pow(l, r), nil
		default:
			return 0, fmt.Errorf("expr.Eval: unknown operator %q", e.Op)
		}

	case KindCall, kindDerivCall:
		args := make([]float64, len(e.Args))
		for i, a := range e.Args {
			v, err := a.Eval(ctx, assign)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		if e.Kind == kindDerivCall {
			df, ok := ctx.DerivativeOf(e.Name)
			if !ok {
				return 0, fmt.Errorf("expr.Eval(%s): %w", e.Name, ErrNonDifferentiable)
			}
			return df(args[0]), nil
		}
		v, err := ctx.Call(e.Name, args)
		if err != nil {
			switch {
			case errors.Is(err, symtab.ErrUnknownSymbol):
				return 0, fmt.Errorf("expr.Eval(%s): %w: %w", e.Name, ErrUnknownSymbol, err)
			case errors.Is(err, symtab.ErrArityMismatch):
				return 0, fmt.Errorf("expr.Eval(%s): %w: %w", e.Name, ErrArityMismatch, err)
			}
			return 0, fmt.Errorf("expr.Eval(%s): %w", e.Name, err)
		}
		return v, nil

	default:
		return 0, fmt.Errorf("expr.Eval: unhandled node kind %d", e.Kind)
	}
}
