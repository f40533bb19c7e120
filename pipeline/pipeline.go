package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/newton"
	"github.com/nexsys2-lang/nexsys2/symtab"
	"github.com/nexsys2-lang/nexsys2/system"
)

// recoverable reports whether err is one of the numerical-failure
// sentinels that a speculative single- or multi-variable solve attempt
// can fail with. Per spec.md §6's propagation policy these never abort
// the whole solve: the pipeline treats the attempt as unsolved and tries
// something else. Parse, arity, and differentiation errors are not in
// this set and propagate immediately.
func recoverable(err error) bool {
	return errors.Is(err, newton.ErrDerivativeVanished) ||
		errors.Is(err, newton.ErrSingularJacobian) ||
		errors.Is(err, newton.ErrNoConvergence)
}

// Run executes the outer loop until pool is empty or no further progress
// is possible, merging solved values into a returned assignment.
// Stage 1 (Single-unknown pass): scan the whole pool for an equation with
// exactly one unresolved variable; solve it and remove it on success.
// Stage 2 (Subsystem pass): failing that, try every remaining equation as
// a seed, in pool order, greedily growing a constrained subsystem from it
// over the rest of the pool until it is fully constrained or stuck; solve
// the first one that reaches fully constrained.
// Stage 3: if neither pass makes progress, fail with UnderConstrainedError.
func Run(pool []*equation.Equation, ctx *symtab.Context, declared map[string]system.DeclaredVariable, opts ...Option) (map[string]float64, error) {
	cfg := resolve(opts)
	single := newton.NewSingleVarSolver()
	multi := newton.NewMultiVarSolver()

	remaining := append([]*equation.Equation(nil), pool...)
	assign := make(map[string]float64)

	for len(remaining) > 0 {
		if next, err := trySingleUnknown(remaining, ctx, assign, declared, single, cfg); err != nil {
			return nil, err
		} else if next != nil {
			remaining = next
			continue
		}

		next, err := trySubsystem(remaining, ctx, assign, declared, multi, cfg)
		if err != nil {
			return nil, err
		}
		if next != nil {
			remaining = next
			continue
		}

		break
	}

	if len(remaining) > 0 {
		stuck := make([]StuckEquation, len(remaining))
		for i, eq := range remaining {
			stuck[i] = StuckEquation{Source: eq.Source, Unresolved: eq.Unresolved(assign)}
		}
		return nil, &UnderConstrainedError{Stuck: stuck}
	}

	return assign, nil
}

// trySingleUnknown scans pool in order for an equation with exactly one
// unresolved variable. It returns a new pool with that equation removed
// and assign updated on success, or (nil, nil) if none could be solved.
func trySingleUnknown(pool []*equation.Equation, ctx *symtab.Context, assign map[string]float64, declared map[string]system.DeclaredVariable, s *newton.SingleVarSolver, cfg config) ([]*equation.Equation, error) {
	for i, eq := range pool {
		unresolved := eq.Unresolved(assign)
		if len(unresolved) != 1 {
			continue
		}
		v := unresolved[0]

		// ±1e9 stands in for an undeclared variable's unbounded domain:
		// SingleVarSolver's clamp needs finite bounds to clamp to, and a
		// root of a realistic equation that lies beyond this is not one
		// we expect to hit in practice.
		guess, lo, hi := 1.0, -1e9, 1e9
		if d, ok := declared[v]; ok {
			guess = d.Guess
			if !math.IsInf(d.Min, -1) {
				lo = d.Min
			}
			if !math.IsInf(d.Max, 1) {
				hi = d.Max
			}
		}

		root, err := s.Solve(eq, ctx, v, guess, lo, hi)
		if err != nil {
			if recoverable(err) {
				cfg.trace(fmt.Sprintf("single-var attempt on %q failed, trying next candidate: %v", eq.Source, err))
				continue
			}
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}

		assign[v] = root
		cfg.trace(fmt.Sprintf("solved %q -> %s=%g", eq.Source, v, root))

		out := make([]*equation.Equation, 0, len(pool)-1)
		out = append(out, pool[:i]...)
		out = append(out, pool[i+1:]...)
		return out, nil
	}

	return nil, nil
}

// trySubsystem tries every remaining equation as a seed, in pool order,
// growing a constrained subsystem over the rest of the pool. It returns a
// new pool with the first successfully solved subsystem's equations
// removed and assign updated, or (nil, nil) if no seed worked.
func trySubsystem(pool []*equation.Equation, ctx *symtab.Context, assign map[string]float64, declared map[string]system.DeclaredVariable, m *newton.MultiVarSolver, cfg config) ([]*equation.Equation, error) {
	for i, seed := range pool {
		rest := make([]*equation.Equation, 0, len(pool)-1)
		rest = append(rest, pool[:i]...)
		rest = append(rest, pool[i+1:]...)

		b, used, err := growSubsystem(seed, rest, ctx, assign)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}
		if !b.IsFullyConstrained() {
			cfg.trace(fmt.Sprintf("seed %q did not reach a fully constrained subsystem", seed.Source))
			continue
		}

		sys, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}
		applyDeclared(sys, declared)

		result, err := m.Solve(sys, assign)
		if err != nil {
			if recoverable(err) {
				cfg.trace(fmt.Sprintf("subsystem seeded by %q failed numerically, trying next seed: %v", seed.Source, err))
				continue
			}
			return nil, fmt.Errorf("pipeline.Run: %w", err)
		}

		for k, v := range result {
			assign[k] = v
		}
		cfg.trace(fmt.Sprintf("solved subsystem of %d equation(s) seeded by %q", len(used), seed.Source))

		return remove(pool, used), nil
	}

	return nil, nil
}

// growSubsystem grows a Builder seeded at seed by repeatedly scanning rest
// for equations it can accept, to a fixed point (spec.md §4.5's greedy
// grower "iterated to fixed point over the remaining pool"). assign is
// the solver's current global assignment: variables already resolved
// there never count as unknowns, so a subsystem is judged constrained
// against what's still actually unknown (spec.md §4.7, GLOSSARY).
func growSubsystem(seed *equation.Equation, rest []*equation.Equation, ctx *symtab.Context, assign map[string]float64) (*system.Builder, []*equation.Equation, error) {
	b, err := system.NewBuilder(seed, ctx, assign)
	if err != nil {
		return nil, nil, err
	}

	used := []*equation.Equation{seed}
	candidates := append([]*equation.Equation(nil), rest...)

	for !b.IsFullyConstrained() {
		progressed := false
		var next []*equation.Equation
		for _, eq := range candidates {
			if b.IsFullyConstrained() {
				next = append(next, eq)
				continue
			}
			status, err := b.TryConstrainWith(eq)
			if err != nil {
				return nil, nil, err
			}
			if status == system.WillConstrain {
				used = append(used, eq)
				progressed = true
				continue
			}
			next = append(next, eq)
		}
		candidates = next
		if !progressed {
			break
		}
	}

	return b, used, nil
}

// applyDeclared overlays each of sys.Variables' keep/guess declaration
// onto sys.Spec. sys.Variables is already restricted to names unresolved
// in the caller's global assignment (system.NewBuilder), so there is no
// need to re-check assign here.
func applyDeclared(sys *system.System, declared map[string]system.DeclaredVariable) {
	for _, v := range sys.Variables {
		if d, ok := declared[v]; ok {
			sys.SpecifyVariable(v, d)
		}
	}
}

func remove(pool []*equation.Equation, used []*equation.Equation) []*equation.Equation {
	usedSet := make(map[*equation.Equation]struct{}, len(used))
	for _, e := range used {
		usedSet[e] = struct{}{}
	}
	out := make([]*equation.Equation, 0, len(pool)-len(used))
	for _, e := range pool {
		if _, ok := usedSet[e]; !ok {
			out = append(out, e)
		}
	}

	return out
}
