package symtab_test

import (
	"math"
	"testing"

	"github.com/nexsys2-lang/nexsys2/symtab"
	"github.com/stretchr/testify/require"
)

func TestDefaultsSeedConstants(t *testing.T) {
	c := symtab.New(true)
	v, ok := c.Const("pi")
	require.True(t, ok)
	require.InDelta(t, math.Pi, v, 1e-12)

	v, ok = c.Const("E") // case-insensitive
	require.True(t, ok)
	require.InDelta(t, math.E, v, 1e-12)
}

func TestNoDefaults(t *testing.T) {
	c := symtab.New(false)
	require.False(t, c.Has("pi"))
	require.False(t, c.Has("sin"))
}

func TestAddConstOverridesCase(t *testing.T) {
	c := symtab.New(false)
	c.AddConst("G", 9.81)
	v, ok := c.Const("g")
	require.True(t, ok)
	require.Equal(t, 9.81, v)
}

func TestCallUnary(t *testing.T) {
	c := symtab.New(true)
	v, err := c.Call("sin", []float64{0})
	require.NoError(t, err)
	require.InDelta(t, 0.0, v, 1e-12)

	_, err = c.Call("sin", []float64{0, 1})
	require.ErrorIs(t, err, symtab.ErrArityMismatch)
}

func TestCallUnknown(t *testing.T) {
	c := symtab.New(false)
	_, err := c.Call("bogus", nil)
	require.ErrorIs(t, err, symtab.ErrUnknownSymbol)
}

func TestIfBuiltin(t *testing.T) {
	c := symtab.New(true)
	// if(1, 4, 0, 10, 20) -> 1 < 0 ? false -> 20
	v, err := c.Call("if", []float64{1, 4, 0, 10, 20})
	require.NoError(t, err)
	require.Equal(t, 20.0, v)

	// if(-1, 4, 0, 10, 20) -> -1 < 0 ? true -> 10
	v, err = c.Call("if", []float64{-1, 4, 0, 10, 20})
	require.NoError(t, err)
	require.Equal(t, 10.0, v)
}

func TestDerivativeOf(t *testing.T) {
	c := symtab.New(true)
	df, ok := c.DerivativeOf("sin")
	require.True(t, ok)
	require.InDelta(t, 1.0, df(0), 1e-12)

	_, ok = c.DerivativeOf("if")
	require.False(t, ok)
}
