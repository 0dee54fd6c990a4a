// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/linalg/strided"

var (
	// ErrSingular indicates an exactly singular matrix during LU factorization.
	ErrSingular = strided.NewError(strided.ErrNumerical, "kernel: matrix is singular")

	// ErrIllConditioned indicates a reciprocal condition number below machine
	// epsilon; the computed inverse would be meaningless.
	ErrIllConditioned = strided.NewError(strided.ErrNumerical, "kernel: matrix is ill-conditioned")

	// ErrNoConvergence indicates that an iterative factorization (SVD,
	// symmetric eigensolver) did not converge.
	ErrNoConvergence = strided.NewError(strided.ErrNumerical, "kernel: factorization did not converge")

	// ErrNotPositiveDefinite indicates a Cholesky factorization failure.
	ErrNotPositiveDefinite = strided.NewError(strided.ErrNumerical, "kernel: matrix is not positive definite")

	// ErrUnsupportedKind indicates a routine with no implementation for the
	// element kind.
	ErrUnsupportedKind = strided.NewError(strided.ErrInvalidArgument, "kernel: unsupported element kind")
)
