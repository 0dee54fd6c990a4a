// SPDX-License-Identifier: MIT

// Package matrix provides dense, column-major matrices and strided vectors
// over float32, float64 and complex128.
//
// The matrix package provides:
//
//   - Mat[T] and Vec[T]: a (slice, layout) pair. Element (i, j) of a Mat lives
//     at data[stride*j+i]; element i of a Vec at data[i*stride].
//   - Zero-copy views: Row, Col, Diagonal, Submatrix, Vec.Slice, and the lazy
//     RowViews/ColViews collections. Writes through a view are visible in its
//     parent.
//   - Elementwise arithmetic in three spellings: XInto writes a caller-owned
//     destination, X allocates, m.XInPlace updates the receiver.
//   - Transpose and conjugate transpose, norms, inner products.
//   - Products and factorizations delegated to gonum BLAS/LAPACK through the
//     matrix/kernel package: Mul, MulVec, Inverse, Determinant, Rank,
//     SingularValues, PseudoInverse, ConditionNumber, Cholesky, EigenSym.
//   - Aligned text rendering through Format and String.
//
// Every error matches one of the four kinds ErrInvalidArgument, ErrRange,
// ErrInsufficientData and ErrNumerical under errors.Is, plus a more specific
// sentinel. Checks run before any destination write.
//
// Matrices carry no locks. Concurrent writes through views that share storage
// are the caller's responsibility. A destination that partially overlaps a
// source is staged through the scratch pool, so results never depend on
// aliasing.
package matrix
