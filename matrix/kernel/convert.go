// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/linalg/scratch"

// widen copies a column-major float32 matrix into pooled float64 storage
// with leading dimension m.
func widen(m, n int, a []float32, lda int) ([]float64, func()) {
	w, release := scratch.Get[float64](m * n)
	var i, j int
	for j = 0; j < n; j++ {
		col := a[j*lda : j*lda+m]
		for i = range col {
			w[j*m+i] = float64(col[i])
		}
	}
	return w, release
}

// narrow copies a column-major float64 matrix back into float32 storage.
func narrow(m, n int, src []float64, lds int, dst []float32, ldd int) {
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			dst[j*ldd+i] = float32(src[j*lds+i])
		}
	}
}

// embed writes the real representation [[X, -Y], [Y, X]] of the m×n matrix
// A = X + iY into pooled 2m×2n storage with leading dimension 2m.
func embed(m, n int, a []complex128, lda int) ([]float64, func()) {
	ld := 2 * m
	e, release := scratch.Get[float64](ld * 2 * n)
	var i, j int
	for j = 0; j < n; j++ {
		left := e[j*ld : (j+1)*ld]
		right := e[(j+n)*ld : (j+n+1)*ld]
		for i = 0; i < m; i++ {
			v := a[j*lda+i]
			left[i], left[i+m] = real(v), imag(v)
			right[i], right[i+m] = -imag(v), real(v)
		}
	}
	return e, release
}

// unembed reads the m×n matrix X + iY from the left block column of a
// 2m×2n real representation with leading dimension lde.
func unembed(m, n int, e []float64, lde int, dst []complex128, ldd int) {
	var i, j int
	for j = 0; j < n; j++ {
		col := e[j*lde : j*lde+2*m]
		for i = 0; i < m; i++ {
			dst[j*ldd+i] = complex(col[i], col[i+m])
		}
	}
}
