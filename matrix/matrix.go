package matrix

import "fmt"

// Matrix is a dense, row-major matrix of float64. The zero value is not
// usable; construct one with New or Identity. A Matrix owns its backing
// slice: there is no view/owner distinction in this package, so every
// operation that would alias storage (Clone excepted) allocates fresh.
type Matrix struct {
	rows, cols int
	data       []float64 // row-major, len == rows*cols
}

// errf wraps an underlying sentinel with the method and indices that
// triggered it, e.g. "matrix.Set(3,7): matrix: index out of range".
func errf(method string, i, j int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, i, j, err)
}

// New returns an r×c Matrix filled with zero.
// Stage 1 (Validate): r, c must both be positive.
// Stage 2 (Prepare): allocate a flat, zero-initialized backing slice.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// index computes the flat offset for (i,j), validating bounds first.
func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, ErrOutOfRange
	}
	if j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return i*m.cols + j, nil
}

// At returns the element at (i,j), or ErrOutOfRange if out of bounds.
func (m *Matrix) At(i, j int) (float64, error) {
	off, err := m.index(i, j)
	if err != nil {
		return 0, errf("At", i, j, err)
	}

	return m.data[off], nil
}

// Set assigns v at (i,j), or returns ErrOutOfRange if out of bounds.
func (m *Matrix) Set(i, j int, v float64) error {
	off, err := m.index(i, j)
	if err != nil {
		return errf("Set", i, j, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// RowSwap exchanges rows i and k in place.
func (m *Matrix) RowSwap(i, k int) error {
	if i < 0 || i >= m.rows || k < 0 || k >= m.rows {
		return errf("RowSwap", i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri, rk := m.row(i), m.row(k)
	for j := 0; j < m.cols; j++ {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// RowScale multiplies every entry of row i by s, in place.
func (m *Matrix) RowScale(i int, s float64) error {
	if i < 0 || i >= m.rows {
		return errf("RowScale", i, 0, ErrOutOfRange)
	}
	ri := m.row(i)
	for j := range ri {
		ri[j] *= s
	}

	return nil
}

// RowAdd adds row k onto row i in place: row i <- row i + row k.
func (m *Matrix) RowAdd(i, k int) error {
	return m.ScaledRowAdd(i, k, 1)
}

// ScaledRowAdd performs row i <- row i + s*row k, in place.
func (m *Matrix) ScaledRowAdd(i, k int, s float64) error {
	if i < 0 || i >= m.rows || k < 0 || k >= m.rows {
		return errf("ScaledRowAdd", i, k, ErrOutOfRange)
	}
	ri, rk := m.row(i), m.row(k)
	for j := 0; j < m.cols; j++ {
		ri[j] += s * rk[j]
	}

	return nil
}

// Scale multiplies every entry of the matrix by s, in place.
func (m *Matrix) Scale(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// Trace returns the sum of the diagonal for a square matrix, or 0 for a
// non-square matrix (it never panics).
func (m *Matrix) Trace() float64 {
	if m.rows != m.cols {
		return 0
	}
	var sum float64
	for i := 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+i]
	}

	return sum
}

// Transpose returns a new Matrix that is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t, _ := New(m.cols, m.rows) // m.rows, m.cols > 0 already validated at construction
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}

	return t
}

// row returns the backing slice for row i, assumed already validated.
func (m *Matrix) row(i int) []float64 {
	return m.data[i*m.cols : i*m.cols+m.cols]
}

// String renders m as "[a, b; c, d]", row-major, semicolon-separated rows.
func (m *Matrix) String() string {
	s := "["
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.cols+j])
			if j < m.cols-1 {
				s += ", "
			}
		}
		if i < m.rows-1 {
			s += "; "
		}
	}

	return s + "]"
}
