package nexsys2

import (
	"fmt"
	"strings"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/newton"
	"github.com/nexsys2-lang/nexsys2/pipeline"
	"github.com/nexsys2-lang/nexsys2/preprocess"
	"github.com/nexsys2-lang/nexsys2/symtab"
	"github.com/nexsys2-lang/nexsys2/system"
)

// Solve applies the standard preprocessor schedule to text, parses the
// resulting equations, and discharges them via the solver pipeline.
func Solve(text string) (map[string]float64, error) {
	return SolveWith(text, preprocess.Standard())
}

// SolveWith is Solve with a caller-supplied preprocessor schedule, for
// tests or DSL extensions that need a non-default pass order.
func SolveWith(text string, pp []preprocess.Preprocessor) (map[string]float64, error) {
	return SolveFull(text, pp, nil)
}

// SolveFull is the full entry point behind Solve and SolveWith: it also
// accepts a seedDeclared map (e.g. loaded from a side-file by a CLI) that
// is merged under whatever the DSL text itself declares, and any
// pipeline.Option (e.g. WithTrace). DSL declarations win on conflict,
// since they are more specific to the system being solved.
func SolveFull(text string, pp []preprocess.Preprocessor, seedDeclared map[string]system.DeclaredVariable, opts ...pipeline.Option) (map[string]float64, error) {
	processed, consts, declared, err := preprocess.Run(text, pp)
	if err != nil {
		return nil, fmt.Errorf("nexsys2.SolveFull: %w", err)
	}

	merged := make(map[string]system.DeclaredVariable, len(seedDeclared)+len(declared))
	for name, d := range seedDeclared {
		merged[name] = d
	}
	for name, d := range declared {
		merged[name] = d
	}

	ctx := symtab.New(true)
	for name, v := range consts {
		ctx.AddConst(name, v)
	}

	pool, err := parseEquationLines(processed, ctx)
	if err != nil {
		return nil, fmt.Errorf("nexsys2.SolveFull: %w", err)
	}

	result, err := pipeline.Run(pool, ctx, merged, opts...)
	if err != nil {
		return nil, fmt.Errorf("nexsys2.SolveFull: %w", err)
	}

	return result, nil
}

// parseEquationLines splits processed text on newlines and parses every
// line containing '=' as a candidate equation (spec.md §6).
func parseEquationLines(text string, ctx *symtab.Context) ([]*equation.Equation, error) {
	var pool []*equation.Equation
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "=") {
			continue
		}
		eq, err := equation.Parse(line, ctx)
		if err != nil {
			return nil, err
		}
		pool = append(pool, eq)
	}

	return pool, nil
}

// SolveEquation is the programmatic single-equation entry point: it
// parses one line of text as an equation in exactly one free variable and
// runs SingleVarSolver directly, without preprocessing or decomposition.
// It returns (nil, nil) rather than an error when the equation text has
// more than one free variable, mirroring the source's Option<f64> return.
func SolveEquation(text string, ctx *symtab.Context, guess, min, max, margin float64, limit int) (*float64, error) {
	eq, err := equation.Parse(text, ctx)
	if err != nil {
		return nil, fmt.Errorf("nexsys2.SolveEquation: %w", err)
	}
	if len(eq.Mentions) != 1 {
		return nil, nil
	}
	var v string
	for name := range eq.Mentions {
		v = name
	}

	s := newton.NewSingleVarSolver(newton.WithMargin(margin), newton.WithIterationLimit(limit))
	root, err := s.Solve(eq, ctx, v, guess, min, max)
	if err != nil {
		return nil, fmt.Errorf("nexsys2.SolveEquation: %w", err)
	}

	return &root, nil
}

