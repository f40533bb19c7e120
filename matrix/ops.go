package matrix

import "fmt"

// Multiply returns a new Matrix holding the product a*b.
// Stage 1 (Validate): a.Cols must equal b.Rows.
// Stage 2 (Execute): classic triple-loop dense product.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("matrix.Multiply: %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	res, _ := New(a.rows, b.cols) // a.rows, b.cols > 0: both came from valid matrices

	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				res.data[i*res.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}

	return res, nil
}

// Augment returns a new Matrix of shape (a.Rows, a.Cols+b.Cols) formed by
// appending the columns of b to the right of a.
func Augment(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows {
		return nil, fmt.Errorf("matrix.Augment: %d rows vs %d rows: %w", a.rows, b.rows, ErrDimensionMismatch)
	}
	res, _ := New(a.rows, a.cols+b.cols)

	for i := 0; i < a.rows; i++ {
		copy(res.row(i)[:a.cols], a.row(i))
		copy(res.row(i)[a.cols:], b.row(i))
	}

	return res, nil
}

// Subset returns the inclusive submatrix spanning rows [i1,i2] and columns
// [j1,j2] of m.
func Subset(m *Matrix, i1, j1, i2, j2 int) (*Matrix, error) {
	if i1 < 0 || i2 >= m.rows || i1 > i2 || j1 < 0 || j2 >= m.cols || j1 > j2 {
		return nil, fmt.Errorf("matrix.Subset(%d,%d,%d,%d): %w", i1, j1, i2, j2, ErrOutOfRange)
	}
	res, _ := New(i2-i1+1, j2-j1+1)

	for i := i1; i <= i2; i++ {
		copy(res.row(i-i1), m.row(i)[j1:j2+1])
	}

	return res, nil
}

// Subset is also exposed as a method for convenience.
func (m *Matrix) Subset(i1, j1, i2, j2 int) (*Matrix, error) {
	return Subset(m, i1, j1, i2, j2)
}

// Multiply is also exposed as a method for convenience: m.Multiply(b) == Multiply(m, b).
func (m *Matrix) Multiply(b *Matrix) (*Matrix, error) {
	return Multiply(m, b)
}

// Augment is also exposed as a method for convenience: m.Augment(b) == Augment(m, b).
func (m *Matrix) Augment(b *Matrix) (*Matrix, error) {
	return Augment(m, b)
}
