// Package system implements the SystemBuilder constraint engine and the
// built System it produces (spec.md §4.5): growing a pool of equations
// into a set that mentions exactly as many free variables as it has
// equations, ready for MultiVarSolver.
package system

import "errors"

// ErrEmptyMentions is returned when a seed equation mentions no free
// variables at all; it cannot start a subsystem.
var ErrEmptyMentions = errors.New("system: seed equation has no free variables")

// ErrNotFullyConstrained is returned by Build when equations and unknowns
// are not yet in 1:1 correspondence.
var ErrNotFullyConstrained = errors.New("system: not fully constrained")
