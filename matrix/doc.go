// Package matrix provides the dense linear-algebra primitives the solver
// layers in this module are built on: elementary row operations, product,
// augmentation, submatrix extraction, transpose, trace, and in-place
// Gauss-Jordan inversion with partial pivoting.
//
// A Matrix owns its backing storage; there is no view/owner distinction,
// so every method that would otherwise alias storage returns a fresh
// allocation instead (Clone, Transpose, Multiply, Augment, Subset). Row
// operations (RowSwap, RowScale, RowAdd, ScaledRowAdd, Scale) mutate in
// place, mirroring how Newton-Raphson's Jacobian solve and TryInvert work
// directly on a scratch copy rather than threading return values through
// every step.
package matrix
