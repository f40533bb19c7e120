// Package matrix provides a dense, row-major matrix of float64 with the
// elementary row operations, products, and in-place Gauss-Jordan inversion
// that the Newton-Raphson solvers in this module build on.
package matrix

import "errors"

// Sentinel errors for matrix operations. Every exported method that can
// fail returns one of these, possibly wrapped with fmt.Errorf("%w", ...)
// for call-site context; callers should match with errors.Is.
var (
	// ErrInvalidDimensions is returned when a requested shape has a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned when a row or column index falls outside
	// the matrix's bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when two matrices have shapes
	// incompatible with the requested operation (Multiply, Augment).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by TryInvert when the matrix has no inverse
	// within the pivoting tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)
