package newton_test

import (
	"math"
	"testing"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/newton"
	"github.com/nexsys2-lang/nexsys2/symtab"
	"github.com/nexsys2-lang/nexsys2/system"
	"github.com/stretchr/testify/require"
)

func TestSingleVarSolverFindsRoot(t *testing.T) {
	ctx := symtab.New(true)
	eq, err := equation.Parse("x*x = 2", ctx)
	require.NoError(t, err)

	s := newton.NewSingleVarSolver(newton.WithMargin(1e-10), newton.WithIterationLimit(50))
	root, err := s.Solve(eq, ctx, "x", 1.0, 0.0, 10.0)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, root, 1e-8)
}

func TestSingleVarSolverClampsToBounds(t *testing.T) {
	ctx := symtab.New(true)
	eq, err := equation.Parse("x = 1000", ctx)
	require.NoError(t, err)

	s := newton.NewSingleVarSolver()
	root, err := s.Solve(eq, ctx, "x", 1.0, 0.0, 5.0)
	require.NoError(t, err)
	require.LessOrEqual(t, root, 5.0)
}

func TestSingleVarSolverDerivativeVanished(t *testing.T) {
	ctx := symtab.New(true)
	eq, err := equation.Parse("0*x = 1", ctx)
	require.NoError(t, err)

	s := newton.NewSingleVarSolver()
	_, err = s.Solve(eq, ctx, "x", 1.0, -10, 10)
	require.ErrorIs(t, err, newton.ErrDerivativeVanished)
}

func TestMultiVarSolverLinearSystem(t *testing.T) {
	ctx := symtab.New(true)
	e1, err := equation.Parse("x + y = 10", ctx)
	require.NoError(t, err)
	e2, err := equation.Parse("x - y = 2", ctx)
	require.NoError(t, err)

	b, err := system.NewBuilder(e1, ctx, nil)
	require.NoError(t, err)
	_, err = b.TryConstrainWith(e2)
	require.NoError(t, err)
	sys, err := b.Build()
	require.NoError(t, err)

	s := newton.NewMultiVarSolver(newton.WithMargin(1e-9))
	result, err := s.Solve(sys, nil)
	require.NoError(t, err)
	require.InDelta(t, 6.0, result["x"], 1e-6)
	require.InDelta(t, 4.0, result["y"], 1e-6)
}

func TestMultiVarSolverUsesFixedValues(t *testing.T) {
	ctx := symtab.New(true)
	e1, err := equation.Parse("x + y + z = 10", ctx)
	require.NoError(t, err)
	e2, err := equation.Parse("y - z = 1", ctx)
	require.NoError(t, err)

	fixed := map[string]float64{"x": 2}
	b, err := system.NewBuilder(e1, ctx, fixed)
	require.NoError(t, err)
	_, err = b.TryConstrainWith(e2)
	require.NoError(t, err)
	sys, err := b.Build()
	require.NoError(t, err)

	s := newton.NewMultiVarSolver(newton.WithMargin(1e-9))
	result, err := s.Solve(sys, fixed)
	require.NoError(t, err)
	require.InDelta(t, 4.5, result["y"], 1e-6)
	require.InDelta(t, 3.5, result["z"], 1e-6)
	_, hasX := result["x"]
	require.False(t, hasX, "Solve should only report the variables it solved for")
}

func TestMultiVarSolverNoConvergenceBudget(t *testing.T) {
	ctx := symtab.New(true)
	e1, err := equation.Parse("x*x + y*y = 1", ctx)
	require.NoError(t, err)
	e2, err := equation.Parse("x - y = 0.0001", ctx)
	require.NoError(t, err)

	b, err := system.NewBuilder(e1, ctx, nil)
	require.NoError(t, err)
	_, err = b.TryConstrainWith(e2)
	require.NoError(t, err)
	sys, err := b.Build()
	require.NoError(t, err)

	s := newton.NewMultiVarSolver(newton.WithIterationLimit(1), newton.WithMargin(1e-15))
	_, err = s.Solve(sys, nil)
	if err != nil {
		require.ErrorIs(t, err, newton.ErrNoConvergence)
	}
}
