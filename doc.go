// SPDX-License-Identifier: MIT

// Package linalg is a generic dense linear-algebra and statistics toolkit
// over float32, float64 and complex128.
//
// What is inside?
//
//	strided        column-major storage layouts, bounds checks, overlap detection
//	scalar         the element-kind constraint and kind-aware helpers
//	scratch        size-classed pool for temporary buffers
//	elementwise    strided span kernels for arithmetic, reductions and transpose
//	matrix         Mat and Vec with aliasing views, norms, products, factorizations
//	matrix/kernel  BLAS/LAPACK boundary (gonum) with explicit shapes and strides
//	stats          mean, variance, covariance, correlation, skewness, kurtosis
//	interop        copies to and from gonum mat and gorgonia tensor
//	cmd/linstat    command-line descriptive statistics over CSV tables
//
// Storage is column-major: element (i, j) of a matrix with leading dimension
// ld lives at data[j*ld+i]. Rows, columns, diagonals and submatrices are
// views sharing the parent's storage; writes through a view are visible in
// the parent. Matrices perform no locking, so concurrent writes through
// aliasing views are the caller's responsibility.
//
// Every operation validates its arguments before writing anything. Errors
// carry one of four kinds (invalid argument, range, insufficient data,
// numerical failure) that callers match with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.MatFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := matrix.Inverse(a)
//	p, _ := matrix.Mul(a, inv)
//	fmt.Println(p) // identity up to rounding
//
//	go get github.com/katalvlaran/linalg
package linalg
