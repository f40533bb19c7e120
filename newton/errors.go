// Package newton implements the SingleVarSolver (spec.md §4.4) and
// MultiVarSolver (spec.md §4.6): bounded Newton-Raphson root-finding over
// one equation.Equation in one unknown, and over a built system.System in
// n unknowns via the Jacobian.
package newton

import "errors"

// ErrDerivativeVanished is returned by SingleVarSolver when the derivative
// magnitude at the current iterate falls below epsDeriv.
var ErrDerivativeVanished = errors.New("newton: derivative vanished")

// ErrSingularJacobian is returned by MultiVarSolver when the Jacobian
// cannot be inverted at the current iterate.
var ErrSingularJacobian = errors.New("newton: singular jacobian")

// ErrNoConvergence is returned by either solver when the iteration limit
// is exhausted without satisfying the convergence test.
var ErrNoConvergence = errors.New("newton: no convergence")

// epsDeriv is the minimum derivative magnitude SingleVarSolver tolerates
// before declaring ErrDerivativeVanished. Matches spec's ε_deriv = 1e-14.
const epsDeriv = 1e-14
