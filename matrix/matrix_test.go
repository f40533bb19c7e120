package matrix_test

import (
	"testing"

	"github.com/nexsys2-lang/nexsys2/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 2, 1.0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetGet(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}

func TestRowOps(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	require.NoError(t, m.RowSwap(0, 1))
	v, _ := m.At(0, 0)
	require.Equal(t, 3.0, v)

	require.NoError(t, m.RowScale(0, 2))
	v, _ = m.At(0, 0)
	require.Equal(t, 6.0, v)

	require.NoError(t, m.RowAdd(1, 0))
	v, _ = m.At(1, 0)
	require.Equal(t, 7.0, v) // 1 + 6

	require.NoError(t, m.ScaledRowAdd(1, 0, -1))
	v, _ = m.At(1, 0)
	require.Equal(t, 1.0, v) // 7 - 6

	m.Scale(2)
	v, _ = m.At(0, 1)
	require.Equal(t, 16.0, v) // 8 * 2
}

func TestTransposeInvolution(t *testing.T) {
	m, _ := matrix.New(2, 3)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(0, 2, 3)
	_ = m.Set(1, 0, 4)
	_ = m.Set(1, 1, 5)
	_ = m.Set(1, 2, 6)

	tt := m.Transpose().Transpose()
	require.Equal(t, m.Rows(), tt.Rows())
	require.Equal(t, m.Cols(), tt.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, _ := m.At(i, j)
			b, _ := tt.At(i, j)
			require.Equal(t, a, b)
		}
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)
	id, _ := matrix.Identity(2)

	res, err := matrix.Multiply(m, id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a, _ := m.At(i, j)
			b, _ := res.At(i, j)
			require.Equal(t, a, b)
		}
	}
}

func TestMultiplyDimensionMismatch(t *testing.T) {
	a, _ := matrix.New(2, 3)
	b, _ := matrix.New(2, 2)
	_, err := matrix.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAugmentColsAndMismatch(t *testing.T) {
	a, _ := matrix.New(2, 2)
	b, _ := matrix.New(2, 3)
	res, err := matrix.Augment(a, b)
	require.NoError(t, err)
	require.Equal(t, a.Cols()+b.Cols(), res.Cols())

	c, _ := matrix.New(3, 3)
	_, err = matrix.Augment(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSubset(t *testing.T) {
	m, _ := matrix.New(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = m.Set(i, j, float64(i*3+j))
		}
	}
	sub, err := m.Subset(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 2, sub.Cols())
	v, _ := sub.At(0, 0)
	require.Equal(t, 4.0, v)

	_, err = m.Subset(0, 0, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestTraceSquareAndNonSquare(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_ = m.Set(0, 0, 3)
	_ = m.Set(1, 1, 5)
	require.Equal(t, 8.0, m.Trace())

	nonSquare, _ := matrix.New(2, 3)
	require.Equal(t, 0.0, nonSquare.Trace())
}

func TestTryInvert(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_ = m.Set(0, 0, 4)
	_ = m.Set(0, 1, 7)
	_ = m.Set(1, 0, 2)
	_ = m.Set(1, 1, 6)
	orig := m.Clone()

	require.NoError(t, m.TryInvert())

	prod, err := matrix.Multiply(orig, m)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-9)
		}
	}
}

func TestTryInvertSingular(t *testing.T) {
	m, _ := matrix.New(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 2)
	_ = m.Set(1, 1, 4)

	err := m.TryInvert()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestTryInvertNonSquare(t *testing.T) {
	m, _ := matrix.New(2, 3)
	err := m.TryInvert()
	require.ErrorIs(t, err, matrix.ErrSingular)
}
