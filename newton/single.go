package newton

import (
	"fmt"
	"math"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/symtab"
)

// SingleVarSolver finds a root of a one-unknown equation.Equation by
// bounded Newton-Raphson iteration (spec.md §4.4).
type SingleVarSolver struct {
	cfg config
}

// NewSingleVarSolver builds a SingleVarSolver with the given options.
func NewSingleVarSolver(opts ...Option) *SingleVarSolver {
	return &SingleVarSolver{cfg: resolve(opts)}
}

// Solve finds x in [lo,hi] such that eq.Expr evaluates to (near) zero when
// v is bound to x, starting from guess.
// Stage 1 (Clamp): guess is clamped into [lo,hi].
// Stage 2 (Differentiate): the derivative expression is built once, up front.
// Stage 3 (Iterate): evaluate f and f', step, clamp, and test convergence
// up to the configured iteration limit.
func (s *SingleVarSolver) Solve(eq *equation.Equation, ctx *symtab.Context, v string, guess, lo, hi float64) (float64, error) {
	deriv, err := eq.Expr.Diff(v, ctx)
	if err != nil {
		return 0, fmt.Errorf("newton.SingleVarSolver.Solve: %w", err)
	}

	x := clamp(guess, lo, hi)

	for i := 0; i < s.cfg.limit; i++ {
		assign := map[string]float64{v: x}

		fx, err := eq.Expr.Eval(ctx, assign)
		if err != nil {
			return 0, fmt.Errorf("newton.SingleVarSolver.Solve: %w", err)
		}
		dfx, err := deriv.Eval(ctx, assign)
		if err != nil {
			return 0, fmt.Errorf("newton.SingleVarSolver.Solve: %w", err)
		}
		if math.Abs(dfx) < epsDeriv {
			return 0, fmt.Errorf("newton.SingleVarSolver.Solve(%s): %w", v, ErrDerivativeVanished)
		}

		step := fx / dfx
		xNew := clamp(x-step, lo, hi)

		if math.Abs(xNew-x) < s.cfg.margin || math.Abs(fx) < s.cfg.margin {
			return xNew, nil
		}
		x = xNew
	}

	return 0, fmt.Errorf("newton.SingleVarSolver.Solve(%s): %w", v, ErrNoConvergence)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
