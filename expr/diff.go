package expr

import (
	"fmt"

	"github.com/nexsys2-lang/nexsys2/symtab"
)

// Diff returns d(e)/d(variable) as a new expression tree, analytically
// differentiated against ctx (needed to resolve builtin derivative rules
// and to recognize the piecewise "if" builtin). It fails with
// ErrNonDifferentiable if the tree calls a builtin with no registered
// derivative rule.
func (e *Expr) Diff(variable string, ctx *symtab.Context) (*Expr, error) {
	switch e.Kind {
	case KindLiteral:
		return Literal(0), nil

	case KindVariable:
		if e.Name == variable {
			return Literal(1), nil
		}
		return Literal(0), nil

	case KindNeg:
		dc, err := e.Child.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		return Neg(dc), nil

	case KindBinary:
		return diffBinary(e, variable, ctx)

	case KindCall:
		return diffCall(e, variable, ctx)

	default:
		return nil, fmt.Errorf("expr.Diff: cannot differentiate node kind %d", e.Kind)
	}
}

func diffBinary(e *Expr, variable string, ctx *symtab.Context) (*Expr, error) {
	switch e.Op {
	case '+', '-':
		dl, err := e.Left.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		dr, err := e.Right.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		return Binary(e.Op, dl, dr), nil

	case '*':
		dl, err := e.Left.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		dr, err := e.Right.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		return Binary('+', Binary('*', dl, e.Right), Binary('*', e.Left, dr)), nil

	case '/':
		dl, err := e.Left.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		dr, err := e.Right.Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		num := Binary('-', Binary('*', dl, e.Right), Binary('*', e.Left, dr))
		den := Binary('^', e.Right, Literal(2))
		return Binary('/', num, den), nil

	case '^':
		return diffPow(e, variable, ctx)

	default:
		return nil, fmt.Errorf("expr.Diff: unknown operator %q", e.Op)
	}
}

// diffPow differentiates a^b. When b is a literal it uses the ordinary
// power rule, which stays valid for a negative base since it never takes
// a logarithm. Otherwise it falls back to logarithmic differentiation,
// which assumes a > 0.
func diffPow(e *Expr, variable string, ctx *symtab.Context) (*Expr, error) {
	da, err := e.Left.Diff(variable, ctx)
	if err != nil {
		return nil, err
	}

	if e.Right.Kind == KindLiteral {
		n := e.Right.Value
		if n == 0 {
			return Literal(0), nil
		}
		// n * a^(n-1) * da
		return Binary('*', Binary('*', Literal(n), Binary('^', e.Left, Literal(n-1))), da), nil
	}

	db, err := e.Right.Diff(variable, ctx)
	if err != nil {
		return nil, err
	}
	// a^b * (db*ln(a) + b*da/a)
	lnA := Call("ln", e.Left)
	term1 := Binary('*', db, lnA)
	term2 := Binary('*', e.Right, Binary('/', da, e.Left))
	return Binary('*', e, Binary('+', term1, term2)), nil
}

func diffCall(e *Expr, variable string, ctx *symtab.Context) (*Expr, error) {
	if e.Name == "if" {
		if len(e.Args) != 5 {
			return nil, fmt.Errorf("expr.Diff(if): %w", ErrArityMismatch)
		}
		dTrue, err := e.Args[3].Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		dFalse, err := e.Args[4].Diff(variable, ctx)
		if err != nil {
			return nil, err
		}
		return Call("if", e.Args[0], e.Args[1], e.Args[2], dTrue, dFalse), nil
	}

	if !ctx.IsUnary(e.Name) {
		return nil, fmt.Errorf("expr.Diff(%s): %w", e.Name, ErrNonDifferentiable)
	}
	if _, ok := ctx.DerivativeOf(e.Name); !ok {
		return nil, fmt.Errorf("expr.Diff(%s): %w", e.Name, ErrNonDifferentiable)
	}
	if len(e.Args) != 1 {
		return nil, fmt.Errorf("expr.Diff(%s): %w", e.Name, ErrArityMismatch)
	}

	dg, err := e.Args[0].Diff(variable, ctx)
	if err != nil {
		return nil, err
	}
	deriv := &Expr{Kind: kindDerivCall, Name: e.Name, Args: []*Expr{e.Args[0]}}

	return Binary('*', deriv, dg), nil
}
