package newton

import (
	"fmt"
	"math"

	"github.com/nexsys2-lang/nexsys2/expr"
	"github.com/nexsys2-lang/nexsys2/matrix"
	"github.com/nexsys2-lang/nexsys2/system"
)

// MultiVarSolver finds a root of a fully constrained system.System by
// Newton-Raphson iteration over its Jacobian (spec.md §4.6).
type MultiVarSolver struct {
	cfg config
}

// NewMultiVarSolver builds a MultiVarSolver with the given options.
func NewMultiVarSolver(opts ...Option) *MultiVarSolver {
	return &MultiVarSolver{cfg: resolve(opts)}
}

// Solve iterates x from each variable's declared guess (clamped into its
// declared bounds) until the residual or step falls under the configured
// margin, or fails NoConvergence/SingularJacobian. fixed carries values
// for variables the equations mention but that are not in sys.Variables
// (i.e. already resolved by an earlier pass of the outer solver pipeline,
// per spec.md §4.7); it is merged into every evaluation alongside the
// current iterate, and differentiated against as a constant.
// Stage 1 (Initialize): x from sys.Spec[var].Guess, clamped into bounds.
// Stage 2 (Differentiate): one derivative expression per (equation, variable)
// pair, built once up front.
// Stage 3 (Iterate): residual, Jacobian, solve J*delta=r via TryInvert,
// step, clamp, converge.
func (s *MultiVarSolver) Solve(sys *system.System, fixed map[string]float64) (map[string]float64, error) {
	n := len(sys.Variables)
	if n != len(sys.Equations) {
		return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", ErrSingularJacobian)
	}

	x := make([]float64, n)
	for i, v := range sys.Variables {
		d := sys.Spec[v]
		x[i] = clamp(d.Guess, d.Min, d.Max)
	}

	derivs := make([][]*expr.Expr, n)
	for i, eq := range sys.Equations {
		row := make([]*expr.Expr, n)
		for j, v := range sys.Variables {
			d, err := eq.Expr.Diff(v, sys.Ctx)
			if err != nil {
				return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", err)
			}
			row[j] = d
		}
		derivs[i] = row
	}

	for iter := 0; iter < s.cfg.limit; iter++ {
		assign := assignOf(sys.Variables, x, fixed)

		r, err := matrix.New(n, 1)
		if err != nil {
			return nil, err
		}
		maxResidual := 0.0
		for i, eq := range sys.Equations {
			v, err := eq.Expr.Eval(sys.Ctx, assign)
			if err != nil {
				return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", err)
			}
			if err := r.Set(i, 0, v); err != nil {
				return nil, err
			}
			if math.Abs(v) > maxResidual {
				maxResidual = math.Abs(v)
			}
		}
		if maxResidual < s.cfg.margin {
			return assignOf(sys.Variables, x, nil), nil
		}

		j, err := matrix.New(n, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				v, err := derivs[i][k].Eval(sys.Ctx, assign)
				if err != nil {
					return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", err)
				}
				if err := j.Set(i, k, v); err != nil {
					return nil, err
				}
			}
		}

		if err := j.TryInvert(); err != nil {
			return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", ErrSingularJacobian)
		}
		delta, err := matrix.Multiply(j, r)
		if err != nil {
			return nil, err
		}

		maxDelta := 0.0
		for i, v := range sys.Variables {
			d, err := delta.At(i, 0)
			if err != nil {
				return nil, err
			}
			decl := sys.Spec[v]
			x[i] = clamp(x[i]-d, decl.Min, decl.Max)
			if math.Abs(d) > maxDelta {
				maxDelta = math.Abs(d)
			}
		}
		if maxDelta < s.cfg.margin {
			return assignOf(sys.Variables, x, nil), nil
		}
	}

	return nil, fmt.Errorf("newton.MultiVarSolver.Solve: %w", ErrNoConvergence)
}

// assignOf builds an evaluation assignment from the current iterate
// (names[i] -> x[i]), with fixed's entries merged in underneath for any
// variable an equation mentions that isn't part of the iterate itself.
func assignOf(names []string, x []float64, fixed map[string]float64) map[string]float64 {
	m := make(map[string]float64, len(names)+len(fixed))
	for k, v := range fixed {
		m[k] = v
	}
	for i, name := range names {
		m[name] = x[i]
	}

	return m
}
