// SPDX-License-Identifier: MIT

// Package kernel is the boundary between the strided matrix types and the
// BLAS/LAPACK backend (gonum).
//
// Every function takes explicit shapes, leading dimensions, increments, and
// blas.Transpose flags, and works in place on caller-provided buffers stored
// in column-major order:
//
//	element (i, j) of an m×n operand with leading dimension ld is a[j*ld+i]
//
// gonum's BLAS and LAPACK are row-major. A column-major m×n buffer read as
// row-major is the n×m transpose, so the adapters here swap operands and
// dimensions instead of copying. Transposed or conjugated operands are passed
// as flags and are never materialized, except for the conjugated vector of a
// ConjTrans GEMV, which row-major BLAS cannot express and which is staged in
// a pooled scratch slice.
//
// Kind coverage:
//
//   - float64 calls gonum directly.
//   - float32 uses blas32 for BLAS; LAPACK routines promote to float64
//     scratch (gonum has no single precision LAPACK) and demote results.
//   - complex128 uses cblas128 for BLAS. LAPACK routines use the real
//     embedding A = X + iY -> [[X, -Y], [Y, X]], which maps inverses and
//     pseudo-inverses onto the same block structure and duplicates every
//     singular value. Determinant and Cholesky use small in-package complex
//     factorizations.
//
// Factorization failures are reported as ErrSingular, ErrIllConditioned,
// ErrNoConvergence, or ErrNotPositiveDefinite, all of kind
// strided.ErrNumerical.
package kernel
