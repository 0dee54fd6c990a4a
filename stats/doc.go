// SPDX-License-Identifier: MIT

// Package stats reduces sequences of equally shaped vectors or matrices to
// pointwise statistics, and flat real samples to higher moments.
//
// The stats package provides:
//
//   - Mean, WeightedMean: elementwise (weighted) averages.
//   - Variance, WeightedVariance, StdDev, WeightedStdDev: pointwise spread
//     with a configurable delta degrees of freedom (WithDDOF, default 1).
//     Weighted forms divide by Σw - ddof·Σw²/Σw.
//   - Covariance, WeightedCovariance, Correlation: n×n matrices over a
//     sequence of length-n vectors, computed with one symmetric (or
//     Hermitian) rank-k update and mirrored so the result is exactly
//     symmetric (Hermitian).
//   - Skewness, Kurtosis: population or bias-corrected moments of []float32
//     or []float64.
//
// Every function has an allocating form and an Into form writing a
// caller-owned destination; the Mat variants accept []*matrix.Mat. For
// complex128 inputs variances hold |x - μ|² in the real part.
//
// All checks run before any write to the destination. Errors match the
// kinds exported by package matrix (matrix.ErrInvalidArgument,
// matrix.ErrInsufficientData, ...) under errors.Is.
package stats
