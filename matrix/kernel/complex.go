// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/cmplx"
)

// cabs1 is the LAPACK pivot magnitude |Re| + |Im|.
func cabs1(z complex128) float64 { return math.Abs(real(z)) + math.Abs(imag(z)) }

// detComplex factorizes the column-major n×n matrix in place (unblocked LU,
// partial pivoting) and returns the determinant. Pivot rows are swapped
// across the full width, so a holds P·A = L·U on return.
func detComplex(n int, a []complex128, lda int) complex128 {
	det := complex(1, 0)
	var i, j, k int
	for k = 0; k < n; k++ {
		p, best := k, cabs1(a[k*lda+k])
		for i = k + 1; i < n; i++ {
			if v := cabs1(a[k*lda+i]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[j*lda+k], a[j*lda+p] = a[j*lda+p], a[j*lda+k]
			}
			det = -det
		}

		piv := a[k*lda+k]
		det *= piv
		col := a[k*lda : k*lda+n]
		for i = k + 1; i < n; i++ {
			col[i] /= piv
		}
		for j = k + 1; j < n; j++ {
			f := a[j*lda+k]
			if f == 0 {
				continue
			}
			dst := a[j*lda : j*lda+n]
			for i = k + 1; i < n; i++ {
				dst[i] -= col[i] * f
			}
		}
	}
	return det
}

// cholComplex computes the lower Cholesky factor of a Hermitian positive
// definite column-major matrix in place (left-looking, unblocked).
func cholComplex(n int, a []complex128, lda int) error {
	var i, j, k int
	for j = 0; j < n; j++ {
		d := real(a[j*lda+j])
		for k = 0; k < j; k++ {
			l := a[k*lda+j]
			d -= real(l)*real(l) + imag(l)*imag(l)
		}
		if !(d > 0) {
			return ErrNotPositiveDefinite
		}
		ljj := math.Sqrt(d)
		a[j*lda+j] = complex(ljj, 0)
		for i = j + 1; i < n; i++ {
			s := a[j*lda+i]
			for k = 0; k < j; k++ {
				s -= a[k*lda+i] * cmplx.Conj(a[k*lda+j])
			}
			a[j*lda+i] = s / complex(ljj, 0)
		}
		for i = 0; i < j; i++ {
			a[j*lda+i] = 0
		}
	}
	return nil
}
