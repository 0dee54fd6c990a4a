// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
)

// Det returns the determinant of the column-major n×n matrix A through an LU
// factorization with partial pivoting. A is overwritten by its factors. An
// exactly singular A yields 0.
func Det[T scalar.Scalar](n int, a []T, lda int) T {
	switch av := any(a).(type) {
	case []float32:
		w, release := widen(n, n, av, lda)
		defer release()
		return any(float32(detF64(n, w, n))).(T)
	case []float64:
		return any(detF64(n, av, lda)).(T)
	case []complex128:
		return any(detComplex(n, av, lda)).(T)
	}
	var zero T
	return zero
}

// Inverse replaces the column-major n×n matrix A by its inverse.
// On failure A holds partial results.
func Inverse[T scalar.Scalar](n int, a []T, lda int) error {
	switch av := any(a).(type) {
	case []float32:
		w, release := widen(n, n, av, lda)
		defer release()
		if err := invF64(n, w, n); err != nil {
			return err
		}
		narrow(n, n, w, n, av, lda)
	case []float64:
		return invF64(n, av, lda)
	case []complex128:
		e, release := embed(n, n, av, lda)
		defer release()
		if err := invF64(2*n, e, 2*n); err != nil {
			return err
		}
		unembed(n, n, e, 2*n, av, lda)
	}
	return nil
}

// SingularValues stores the min(m, n) singular values of the column-major
// m×n matrix A into s in descending order. A is destroyed.
func SingularValues[T scalar.Scalar](m, n int, a []T, lda int, s []float64) error {
	switch av := any(a).(type) {
	case []float32:
		w, release := widen(m, n, av, lda)
		defer release()
		return svdValuesF64(m, n, w, m, s)
	case []float64:
		return svdValuesF64(m, n, av, lda, s)
	case []complex128:
		e, release := embed(m, n, av, lda)
		defer release()
		p := min(m, n)
		se, releaseS := scratch.Get[float64](2 * p)
		defer releaseS()
		if err := svdValuesF64(2*m, 2*n, e, 2*m, se); err != nil {
			return err
		}
		// Every singular value of A appears twice in the embedding.
		var i int
		for i = 0; i < p; i++ {
			s[i] = se[2*i]
		}
	}
	return nil
}

// PseudoInverse writes the Moore-Penrose pseudo-inverse of the column-major
// m×n matrix A into the column-major n×m matrix D. Singular values not above
// tol are treated as zero; a NaN tol selects eps·max(m, n)·σmax with the
// epsilon of T. A is destroyed. U, Σ, and Vᵀ live in pooled scratch.
func PseudoInverse[T scalar.Scalar](m, n int, a []T, lda int, tol float64, d []T, ldd int) error {
	rel := scalar.Epsilon[T]() * float64(max(m, n))
	switch av := any(a).(type) {
	case []float32:
		w, release := widen(m, n, av, lda)
		defer release()
		p, releaseP := scratch.Get[float64](n * m)
		defer releaseP()
		if err := pinvF64(m, n, w, m, tol, rel, p, n); err != nil {
			return err
		}
		narrow(n, m, p, n, any(d).([]float32), ldd)
	case []float64:
		return pinvF64(m, n, av, lda, tol, rel, any(d).([]float64), ldd)
	case []complex128:
		e, release := embed(m, n, av, lda)
		defer release()
		p, releaseP := scratch.Get[float64](4 * n * m)
		defer releaseP()
		if err := pinvF64(2*m, 2*n, e, 2*m, tol, rel, p, 2*n); err != nil {
			return err
		}
		unembed(n, m, p, 2*n, any(d).([]complex128), ldd)
	}
	return nil
}

// Cholesky replaces the lower triangle of the column-major n×n Hermitian
// positive definite matrix A by L with A = L·Lᴴ and zeroes the strict upper
// triangle. Only the lower triangle of A is read.
func Cholesky[T scalar.Scalar](n int, a []T, lda int) error {
	switch av := any(a).(type) {
	case []float32:
		w, release := widen(n, n, av, lda)
		defer release()
		if err := cholF64(n, w, n); err != nil {
			return err
		}
		narrow(n, n, w, n, av, lda)
	case []float64:
		return cholF64(n, av, lda)
	case []complex128:
		return cholComplex(n, av, lda)
	}
	return nil
}

// EigenSym computes the eigenvalues (ascending, into w) and orthonormal
// eigenvectors (replacing A, one per column) of the column-major n×n real
// symmetric matrix A. Only the lower triangle of A is read.
func EigenSym[T scalar.Scalar](n int, a []T, lda int, w []float64) error {
	switch av := any(a).(type) {
	case []float32:
		wa, release := widen(n, n, av, lda)
		defer release()
		if err := syevF64(n, wa, n, w); err != nil {
			return err
		}
		narrow(n, n, wa, n, av, lda)
		return nil
	case []float64:
		return syevF64(n, av, lda, w)
	}
	return ErrUnsupportedKind
}

func detF64(n int, a []float64, lda int) float64 {
	ipiv, release := scratch.Get[int](n)
	defer release()

	// The row-major view is Aᵀ, and det(Aᵀ) = det(A).
	lapack64.Getrf(blas64.General{Rows: n, Cols: n, Data: a, Stride: lda}, ipiv)
	det := 1.0
	var i int
	for i = 0; i < n; i++ {
		det *= a[i*lda+i]
		if ipiv[i] != i {
			det = -det
		}
	}
	return det
}

func invF64(n int, a []float64, lda int) error {
	g := blas64.General{Rows: n, Cols: n, Data: a, Stride: lda}
	anorm := lapack64.Lange(lapack.MaxRowSum, g, nil)

	ipiv, releasePiv := scratch.Get[int](n)
	defer releasePiv()
	// Inverting Aᵀ in place leaves (A⁻¹)ᵀ in row-major order, which is A⁻¹
	// in column-major order.
	if !lapack64.Getrf(g, ipiv) {
		return ErrSingular
	}

	work, iwork, releaseWork := getWork(4*n, n)
	rcond := lapack64.Gecon(lapack.MaxRowSum, g, anorm, work, iwork)
	releaseWork()
	if rcond < scalar.Epsilon64 {
		return ErrIllConditioned
	}

	var query [1]float64
	lapack64.Getri(g, ipiv, query[:], -1)
	lwork := max(n, int(query[0]))
	work, releaseGetri := scratch.Get[float64](lwork)
	defer releaseGetri()
	if !lapack64.Getri(g, ipiv, work, lwork) {
		return ErrSingular
	}
	return nil
}

func getWork(nf, ni int) ([]float64, []int, func()) {
	f, rf := scratch.Get[float64](nf)
	i, ri := scratch.Get[int](ni)
	return f, i, func() {
		ri()
		rf()
	}
}

func svdValuesF64(m, n int, a []float64, lda int, s []float64) error {
	g := blas64.General{Rows: n, Cols: m, Data: a, Stride: lda}
	var none blas64.General
	var query [1]float64
	lapack64.Gesvd(lapack.SVDNone, lapack.SVDNone, g, none, none, s, query[:], -1)
	lwork := int(query[0])
	work, release := scratch.Get[float64](lwork)
	defer release()
	if !lapack64.Gesvd(lapack.SVDNone, lapack.SVDNone, g, none, none, s, work, lwork) {
		return ErrNoConvergence
	}
	return nil
}

// pinvF64 works on R = Aᵀ, the row-major view of A. With R = U·Σ·Vᵀ,
// pinv(A) = U·Σ⁺·Vᵀ, whose row-major view is (Σ⁺·Vᵀ)ᵀ·Uᵀ: one GEMM with
// both operands transposed writes it straight into D.
func pinvF64(m, n int, a []float64, lda int, tol, rel float64, d []float64, ldd int) error {
	p := min(m, n)
	s, releaseS := scratch.Get[float64](p)
	defer releaseS()
	u, vt, releaseUV := scratch.Get2[float64](n*p, p*m)
	defer releaseUV()

	g := blas64.General{Rows: n, Cols: m, Data: a, Stride: lda}
	gu := blas64.General{Rows: n, Cols: p, Data: u, Stride: p}
	gvt := blas64.General{Rows: p, Cols: m, Data: vt, Stride: m}

	var query [1]float64
	lapack64.Gesvd(lapack.SVDStore, lapack.SVDStore, g, gu, gvt, s, query[:], -1)
	lwork := int(query[0])
	work, releaseWork := scratch.Get[float64](lwork)
	defer releaseWork()
	if !lapack64.Gesvd(lapack.SVDStore, lapack.SVDStore, g, gu, gvt, s, work, lwork) {
		return ErrNoConvergence
	}

	if math.IsNaN(tol) {
		tol = rel * s[0]
	}
	var i, j int
	for i = 0; i < p; i++ {
		f := 0.0
		if s[i] > tol {
			f = 1 / s[i]
		}
		row := vt[i*m : (i+1)*m]
		for j = range row {
			row[j] *= f
		}
	}

	blas64.Implementation().Dgemm(blas.Trans, blas.Trans, m, n, p, 1, vt, m, u, p, 0, d, ldd)
	return nil
}

func cholF64(n int, a []float64, lda int) error {
	// Column-major lower is row-major upper: A = Uᵀ·U there, and Uᵀ read
	// column-major is L.
	if _, ok := lapack64.Potrf(blas64.Symmetric{Uplo: blas.Upper, N: n, Data: a, Stride: lda}); !ok {
		return ErrNotPositiveDefinite
	}
	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			a[j*lda+i] = 0
		}
	}
	return nil
}

func syevF64(n int, a []float64, lda int, w []float64) error {
	sym := blas64.Symmetric{Uplo: blas.Upper, N: n, Data: a, Stride: lda}
	var query [1]float64
	lapack64.Syev(lapack.EVCompute, sym, w, query[:], -1)
	lwork := max(3*n-1, int(query[0]))
	work, release := scratch.Get[float64](lwork)
	defer release()
	if !lapack64.Syev(lapack.EVCompute, sym, w, work, lwork) {
		return ErrNoConvergence
	}
	// Eigenvectors are row-major columns, i.e. column-major rows: transpose.
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < j; i++ {
			a[j*lda+i], a[i*lda+j] = a[i*lda+j], a[j*lda+i]
		}
	}
	return nil
}
