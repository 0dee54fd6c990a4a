// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Vector norms (L1, L2, ∞, p) and matrix norms (Frobenius, L1 = max column
//     sum, ∞ = max row sum, L2 = largest singular value).
//   - Inner products and sums.
//
// Determinism & Performance:
//   - All traversals are column-major. The ∞-norm accumulates per-row sums
//     into a pooled []float64 instead of walking rows across the stride.
//   - L2Norm of a matrix copies x into pooled scratch before the SVD, so x
//     is never modified.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/matrix/kernel"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
)

// L1Norm returns Σ|v[i]|.
func (v *Vec[T]) L1Norm() (float64, error) {
	if err := validateVec(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	return elementwise.SumAbs(v.buf), nil
}

// L2Norm returns the Euclidean norm √Σ|v[i]|².
func (v *Vec[T]) L2Norm() (float64, error) {
	if err := validateVec(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	return math.Sqrt(elementwise.SumSq(v.buf)), nil
}

// InfinityNorm returns max|v[i]|.
func (v *Vec[T]) InfinityNorm() (float64, error) {
	if err := validateVec(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	return elementwise.MaxAbs(v.buf), nil
}

// PNorm returns (Σ|v[i]|^p)^(1/p) for p >= 1. p = +Inf is the ∞-norm.
func (v *Vec[T]) PNorm(p float64) (float64, error) {
	if err := validateVec(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	switch {
	case math.IsNaN(p) || p < 1:
		return 0, fmt.Errorf("%s: p=%g: %w", opNorm, p, ErrBadNormOrder)
	case p == 1:
		return elementwise.SumAbs(v.buf), nil
	case p == 2:
		return math.Sqrt(elementwise.SumSq(v.buf)), nil
	case math.IsInf(p, 1):
		return elementwise.MaxAbs(v.buf), nil
	}
	var acc float64
	for _, x := range v.All() {
		acc += math.Pow(scalar.Abs(x), p)
	}
	return math.Pow(acc, 1/p), nil
}

// Sum returns Σ v[i].
func (v *Vec[T]) Sum() (T, error) {
	if err := validateVec(v); err != nil {
		var zero T
		return zero, matrixErrorf(opSum, err)
	}
	return elementwise.Sum(v.buf), nil
}

// Dot returns the bilinear product Σ x[i]·y[i]; no conjugation.
func Dot[T scalar.Scalar](x, y *Vec[T]) (T, error) {
	var zero T
	if err := validateVecPair(opDot, x, y); err != nil {
		return zero, err
	}
	return elementwise.Dot(x.buf, y.buf), nil
}

// Inner returns the inner product Σ conj(x[i])·y[i]. For real kinds it
// equals Dot.
func Inner[T scalar.Scalar](x, y *Vec[T]) (T, error) {
	var zero T
	if err := validateVecPair(opDot, x, y); err != nil {
		return zero, err
	}
	return elementwise.DotConj(x.buf, y.buf), nil
}

// FrobeniusNorm returns √Σ|m[i,j]|².
func (m *Mat[T]) FrobeniusNorm() (float64, error) {
	if err := validateMat(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	return math.Sqrt(elementwise.SumSq(m.buf)), nil
}

// L1Norm returns the maximum absolute column sum.
func (m *Mat[T]) L1Norm() (float64, error) {
	if err := validateMat(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	sums, release := scratch.Get[float64](m.buf.Secondary)
	defer release()
	elementwise.SecondaryAbsSums(m.buf, sums)
	return maxOf(sums), nil
}

// InfinityNorm returns the maximum absolute row sum.
func (m *Mat[T]) InfinityNorm() (float64, error) {
	if err := validateMat(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	sums, release := scratch.Get[float64](m.buf.Primary)
	defer release()
	elementwise.PrimaryAbsSums(m.buf, sums)
	return maxOf(sums), nil
}

// L2Norm returns the spectral norm, the largest singular value.
func (m *Mat[T]) L2Norm() (float64, error) {
	s, release, err := singularValues(opNorm, m)
	if err != nil {
		return 0, err
	}
	defer release()
	return s[0], nil
}

// Sum returns Σ m[i,j].
func (m *Mat[T]) Sum() (T, error) {
	if err := validateMat(m); err != nil {
		var zero T
		return zero, matrixErrorf(opSum, err)
	}
	return elementwise.Sum(m.buf), nil
}

// singularValues returns the descending singular values of m in pooled
// storage; the caller must invoke release.
func singularValues[T scalar.Scalar](op string, m *Mat[T]) ([]float64, func(), error) {
	if err := validateMat(m); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	r, c := m.buf.Primary, m.buf.Secondary
	a, releaseA := scratchCopy(m)
	defer releaseA()
	s, release := scratch.Get[float64](min(r, c))
	if err := kernel.SingularValues(r, c, a, r, s); err != nil {
		release()
		return nil, nil, factorizationErrorf(op, err)
	}
	return s, release, nil
}

// scratchCopy returns a pooled contiguous copy of m with leading dimension
// m.Rows().
func scratchCopy[T scalar.Scalar](m *Mat[T]) ([]T, func()) {
	r, c := m.buf.Primary, m.buf.Secondary
	data, release := scratch.Get[T](r * c)
	var j int
	for j = 0; j < c; j++ {
		copy(data[j*r:(j+1)*r], m.buf.Line(j))
	}
	return data, release
}

func maxOf(xs []float64) float64 {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best || math.IsNaN(x) {
			best = x
		}
	}
	return best
}
