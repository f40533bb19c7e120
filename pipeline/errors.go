// Package pipeline implements the SolverPipeline outer loop (spec.md
// §4.7): alternating "solve a single-unknown equation" with "identify and
// solve a minimal constrained subsystem" until the equation pool is empty
// or no further progress can be made.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// UnderConstrainedError is returned when the outer loop can make no
// further progress while equations remain in the pool.
type UnderConstrainedError struct {
	Stuck []StuckEquation
}

// StuckEquation names an equation that never got discharged, along with
// the free variables it still has no value for.
type StuckEquation struct {
	Source     string
	Unresolved []string
}

func (e *UnderConstrainedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pipeline: underconstrained input, %d equation(s) stuck:", len(e.Stuck))
	for _, s := range e.Stuck {
		fmt.Fprintf(&b, "\n  %q (unresolved: %s)", s.Source, strings.Join(s.Unresolved, ", "))
	}

	return b.String()
}

// ErrUnderConstrained is the sentinel every *UnderConstrainedError wraps.
var ErrUnderConstrained = errors.New("pipeline: underconstrained input")

func (e *UnderConstrainedError) Unwrap() error { return ErrUnderConstrained }
