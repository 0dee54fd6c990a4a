// SPDX-License-Identifier: MIT

package kernel

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
)

// Gemm computes C = alpha·op(A)·op(B) + beta·C where op(A) is m×k, op(B) is
// k×n and C is m×n, all column-major.
//
// Row-major BLAS sees every buffer transposed, and Cᵀ = op(B)ᵀ·op(A)ᵀ, so the
// call is forwarded with the operands and the m/n extents swapped while the
// flags stay attached to their own operand.
func Gemm[T scalar.Scalar](tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	switch av := any(a).(type) {
	case []float32:
		blas32.Implementation().Sgemm(tB, tA, n, m, k,
			any(alpha).(float32), any(b).([]float32), ldb, av, lda,
			any(beta).(float32), any(c).([]float32), ldc)
	case []float64:
		blas64.Implementation().Dgemm(tB, tA, n, m, k,
			any(alpha).(float64), any(b).([]float64), ldb, av, lda,
			any(beta).(float64), any(c).([]float64), ldc)
	case []complex128:
		cblas128.Implementation().Zgemm(tB, tA, n, m, k,
			any(alpha).(complex128), any(b).([]complex128), ldb, av, lda,
			any(beta).(complex128), any(c).([]complex128), ldc)
	}
}

// Gemv computes y = alpha·op(A)·x + beta·y for a column-major m×n matrix A.
// incX and incY must be positive.
func Gemv[T scalar.Scalar](tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	// The row-major view of A is its n×m transpose: flip the flag.
	flip := blas.Trans
	if tA != blas.NoTrans {
		flip = blas.NoTrans
	}
	switch av := any(a).(type) {
	case []float32:
		blas32.Implementation().Sgemv(flip, n, m,
			any(alpha).(float32), av, lda, any(x).([]float32), incX,
			any(beta).(float32), any(y).([]float32), incY)
	case []float64:
		blas64.Implementation().Dgemv(flip, n, m,
			any(alpha).(float64), av, lda, any(x).([]float64), incX,
			any(beta).(float64), any(y).([]float64), incY)
	case []complex128:
		xv, yv := any(x).([]complex128), any(y).([]complex128)
		if tA != blas.ConjTrans {
			cblas128.Implementation().Zgemv(flip, n, m,
				any(alpha).(complex128), av, lda, xv, incX,
				any(beta).(complex128), yv, incY)
			return
		}
		zgemvConjNoTrans(n, m, any(alpha).(complex128), av, lda, xv, incX, any(beta).(complex128), yv, incY)
	}
}

// zgemvConjNoTrans computes y = alpha·conj(R)·x + beta·y for a row-major
// rows×cols matrix R using conj(y) = conj(alpha)·R·conj(x) + conj(beta)·conj(y).
func zgemvConjNoTrans(rows, cols int, alpha complex128, r []complex128, ldr int, x []complex128, incX int, beta complex128, y []complex128, incY int) {
	xc, release := scratch.Get[complex128](cols)
	defer release()

	var i int
	for i = range xc {
		xc[i] = cmplx.Conj(x[i*incX])
	}
	for i = 0; i < rows; i++ {
		y[i*incY] = cmplx.Conj(y[i*incY])
	}
	cblas128.Implementation().Zgemv(blas.NoTrans, rows, cols,
		cmplx.Conj(alpha), r, ldr, xc, 1, cmplx.Conj(beta), y, incY)
	for i = 0; i < rows; i++ {
		y[i*incY] = cmplx.Conj(y[i*incY])
	}
}

// RankK fills the lower triangle of the column-major n×n matrix C with
// alpha·A·Aᴴ + beta·C, where A is column-major n×k. For real kinds Aᴴ = Aᵀ
// (SYRK); for complex128 the update is Hermitian (HERK) and the diagonal of
// C is exactly real. The strict upper triangle is not referenced.
//
// The column-major lower triangle is the row-major upper triangle, and the
// row-major view of A is its k×n transpose, hence Upper with Trans.
func RankK[T scalar.Scalar](n, k int, alpha float64, a []T, lda int, beta float64, c []T, ldc int) {
	switch av := any(a).(type) {
	case []float32:
		blas32.Implementation().Ssyrk(blas.Upper, blas.Trans, n, k,
			float32(alpha), av, lda, float32(beta), any(c).([]float32), ldc)
	case []float64:
		blas64.Implementation().Dsyrk(blas.Upper, blas.Trans, n, k,
			alpha, av, lda, beta, any(c).([]float64), ldc)
	case []complex128:
		cblas128.Implementation().Zherk(blas.Upper, blas.ConjTrans, n, k,
			alpha, av, lda, beta, any(c).([]complex128), ldc)
	}
}

// MirrorLower copies the strict lower triangle of the column-major n×n
// matrix C onto its strict upper triangle, conjugating complex values, so
// that C becomes exactly symmetric or Hermitian.
func MirrorLower[T scalar.Scalar](n int, c []T, ldc int) {
	var i, j int
	if cv, ok := any(c).([]complex128); ok {
		for j = 0; j < n; j++ {
			for i = j + 1; i < n; i++ {
				cv[i*ldc+j] = cmplx.Conj(cv[j*ldc+i])
			}
		}
		return
	}
	for j = 0; j < n; j++ {
		for i = j + 1; i < n; i++ {
			c[i*ldc+j] = c[j*ldc+i]
		}
	}
}
