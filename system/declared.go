package system

import "math"

// DeclaredVariable carries the optional per-variable metadata the
// preprocessor pipeline extracts from `keep ... on [a,b]` and
// `guess ... for ...` declarations (spec.md §4.8): an initial guess and
// bounds for MultiVarSolver's state vector.
type DeclaredVariable struct {
	Guess float64
	Min   float64
	Max   float64
}

// DefaultDeclared returns the declaration assumed for a variable with no
// explicit `keep`/`guess` statement: guess 1.0, unbounded.
func DefaultDeclared() DeclaredVariable {
	return DeclaredVariable{Guess: 1.0, Min: math.Inf(-1), Max: math.Inf(1)}
}
