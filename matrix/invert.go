package matrix

import "math"

// pivotEpsilon is the smallest pivot magnitude TryInvert accepts before
// declaring the matrix singular. Matches spec's ε_pivot = 1e-12.
const pivotEpsilon = 1e-12

// TryInvert attempts to invert m in place via Gauss-Jordan elimination on
// the augmented matrix [m | I], with partial pivoting by largest |value|
// in the current column at or below the diagonal.
// Stage 1 (Validate): m must be square.
// Stage 2 (Augment): build [m | I].
// Stage 3 (Eliminate): for each pivot column, swap in the largest-magnitude
// candidate row, declare singular if it falls below pivotEpsilon, scale the
// pivot row to 1, and clear every other row's entry in that column.
// Stage 4 (Finalize): copy the right half of the reduced augmented matrix
// back into m.
func (m *Matrix) TryInvert() error {
	n := m.rows
	if n != m.cols {
		return ErrSingular
	}

	id, _ := Identity(n)
	aug, _ := Augment(m, id) // n x 2n

	for col := 0; col < n; col++ {
		// Partial pivoting: find the largest |value| at or below the diagonal in this column.
		pivotRow := col
		best := math.Abs(aug.data[col*aug.cols+col])
		for r := col + 1; r < n; r++ {
			v := math.Abs(aug.data[r*aug.cols+col])
			if v > best {
				best = v
				pivotRow = r
			}
		}
		if best < pivotEpsilon {
			return ErrSingular
		}
		if pivotRow != col {
			_ = aug.RowSwap(col, pivotRow)
		}

		pivot := aug.data[col*aug.cols+col]
		_ = aug.RowScale(col, 1/pivot)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug.data[r*aug.cols+col]
			if factor == 0 {
				continue
			}
			_ = aug.ScaledRowAdd(r, col, -factor)
		}
	}

	inv, _ := Subset(aug, 0, n, n-1, 2*n-1)
	copy(m.data, inv.data)

	return nil
}
