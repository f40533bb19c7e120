package system_test

import (
	"testing"

	"github.com/nexsys2-lang/nexsys2/equation"
	"github.com/nexsys2-lang/nexsys2/symtab"
	"github.com/nexsys2-lang/nexsys2/system"
	"github.com/stretchr/testify/require"
)

func parseEq(t *testing.T, ctx *symtab.Context, line string) *equation.Equation {
	t.Helper()
	eq, err := equation.Parse(line, ctx)
	require.NoError(t, err)
	return eq
}

func TestBuilderGrowsToFullyConstrained(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x + y = 10")
	b, err := system.NewBuilder(seed, ctx, nil)
	require.NoError(t, err)
	require.False(t, b.IsFullyConstrained())

	status, err := b.TryConstrainWith(parseEq(t, ctx, "x - y = 2"))
	require.NoError(t, err)
	require.Equal(t, system.WillConstrain, status)
	require.True(t, b.IsFullyConstrained())

	sys, err := b.Build()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"x", "y"}, sys.Variables)
	require.Len(t, sys.Equations, 2)
}

func TestBuilderExcludesGloballyResolvedVariables(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x + y + z = 10")
	assign := map[string]float64{"x": 2}

	b, err := system.NewBuilder(seed, ctx, assign)
	require.NoError(t, err)
	require.False(t, b.IsFullyConstrained()) // 1 equation, 2 unknowns: y, z

	status, err := b.TryConstrainWith(parseEq(t, ctx, "y - z = 1"))
	require.NoError(t, err)
	require.Equal(t, system.WillConstrain, status)
	require.True(t, b.IsFullyConstrained())

	sys, err := b.Build()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"y", "z"}, sys.Variables)
}

func TestBuilderRejectsDisjointEquation(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x + 1 = 2")
	b, err := system.NewBuilder(seed, ctx, nil)
	require.NoError(t, err)

	status, err := b.TryConstrainWith(parseEq(t, ctx, "z + 1 = 5"))
	require.NoError(t, err)
	require.Equal(t, system.WillNotConstrain, status)
	require.True(t, b.IsFullyConstrained()) // unchanged: still just the seed, 1 equation and 1 unknown
}

func TestBuilderOverconstrains(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x = 1")
	b, err := system.NewBuilder(seed, ctx, nil)
	require.NoError(t, err)
	require.True(t, b.IsFullyConstrained())

	status, err := b.TryConstrainWith(parseEq(t, ctx, "x = 2"))
	require.NoError(t, err)
	require.Equal(t, system.WillOverconstrain, status)
}

func TestBuildFailsWhenNotFullyConstrained(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x + y = 10")
	b, err := system.NewBuilder(seed, ctx, nil)
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, system.ErrNotFullyConstrained)
}

func TestNewBuilderRejectsEmptyMentions(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "1 = 1")
	_, err := system.NewBuilder(seed, ctx, nil)
	require.ErrorIs(t, err, system.ErrEmptyMentions)
}

func TestNewBuilderRejectsSeedFullyResolvedByAssign(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x = 1")
	_, err := system.NewBuilder(seed, ctx, map[string]float64{"x": 1})
	require.ErrorIs(t, err, system.ErrEmptyMentions)
}

func TestSpecifyVariableIgnoresUnknownName(t *testing.T) {
	ctx := symtab.New(true)
	seed := parseEq(t, ctx, "x = 1")
	b, err := system.NewBuilder(seed, ctx, nil)
	require.NoError(t, err)
	sys, err := b.Build()
	require.NoError(t, err)

	sys.SpecifyVariable("bogus", system.DeclaredVariable{Guess: 5})
	_, ok := sys.Spec["bogus"]
	require.False(t, ok)

	sys.SpecifyVariable("x", system.DeclaredVariable{Guess: 3, Min: 0, Max: 10})
	require.Equal(t, 3.0, sys.Spec["x"].Guess)
}
