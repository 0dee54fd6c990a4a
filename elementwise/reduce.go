// SPDX-License-Identifier: MIT

package elementwise

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Sum returns the sum of all elements.
func Sum[T scalar.Scalar](x strided.Buffer[T]) T {
	var acc T
	runReduce(x, func(n int, xs []T, ix int) {
		if ix == 1 {
			if xv, ok := any(xs).([]float64); ok {
				acc += any(vecmath.Sum(xv[:n])).(T)
				return
			}
		}
		var i int
		for i = 0; i < n; i++ {
			acc += xs[i*ix]
		}
	})
	return acc
}

// SumAbs returns Σ|x|.
func SumAbs[T scalar.Scalar](x strided.Buffer[T]) float64 {
	var acc float64
	runReduce(x, func(n int, xs []T, ix int) { acc += absSpan(n, xs, ix) })
	return acc
}

// SumSq returns Σ|x|².
func SumSq[T scalar.Scalar](x strided.Buffer[T]) float64 {
	var acc float64
	runReduce(x, func(n int, xs []T, ix int) {
		var i int
		switch xv := any(xs).(type) {
		case []float64:
			if ix == 1 {
				acc += vecmath.DotProduct(xv[:n], xv[:n])
				return
			}
			for i = 0; i < n; i++ {
				v := xv[i*ix]
				acc += v * v
			}
		case []float32:
			for i = 0; i < n; i++ {
				v := float64(xv[i*ix])
				acc += v * v
			}
		case []complex128:
			for i = 0; i < n; i++ {
				v := xv[i*ix]
				acc += real(v)*real(v) + imag(v)*imag(v)
			}
		}
	})
	return acc
}

// MaxAbs returns max|x|.
func MaxAbs[T scalar.Scalar](x strided.Buffer[T]) float64 {
	var best float64
	runReduce(x, func(n int, xs []T, ix int) {
		if ix == 1 {
			if xv, ok := any(xs).([]float64); ok {
				best = math.Max(best, vecmath.MaxAbs(xv[:n]))
				return
			}
		}
		var i int
		for i = 0; i < n; i++ {
			best = math.Max(best, scalar.Abs(xs[i*ix]))
		}
	})
	return best
}

// Dot returns Σ x·y without conjugation.
func Dot[T scalar.Scalar](x, y strided.Buffer[T]) T {
	var acc T
	runReduce2(x, y, func(n int, xs []T, ix int, ys []T, iy int) {
		if ix == 1 && iy == 1 {
			if xv, ok := any(xs).([]float64); ok {
				acc += any(vecmath.DotProduct(xv[:n], any(ys).([]float64)[:n])).(T)
				return
			}
		}
		var i int
		for i = 0; i < n; i++ {
			acc += xs[i*ix] * ys[i*iy]
		}
	})
	return acc
}

// DotConj returns Σ conj(x)·y, the inner product for complex kinds.
func DotConj[T scalar.Scalar](x, y strided.Buffer[T]) T {
	if !scalar.IsComplex[T]() {
		return Dot(x, y)
	}
	var acc complex128
	runReduce2(x, y, func(n int, xs []T, ix int, ys []T, iy int) {
		xv, yv := any(xs).([]complex128), any(ys).([]complex128)
		var i int
		for i = 0; i < n; i++ {
			acc += cmplx.Conj(xv[i*ix]) * yv[i*iy]
		}
	})
	return any(acc).(T)
}

// PrimaryAbsSums adds |x(p, s)| into sums[p] for every element. For a
// column-major matrix these are the row absolute sums. Traversal stays
// column-major.
func PrimaryAbsSums[T scalar.Scalar](x strided.Buffer[T], sums []float64) {
	if len(sums) != x.Primary {
		panic("elementwise: sums length mismatch")
	}
	var p, s int
	for s = 0; s < x.Secondary; s++ {
		line := x.Line(s)
		for p = range line {
			sums[p] += scalar.Abs(line[p])
		}
	}
}

// SecondaryAbsSums stores Σ_p |x(p, s)| into sums[s]: column absolute sums
// for a column-major matrix.
func SecondaryAbsSums[T scalar.Scalar](x strided.Buffer[T], sums []float64) {
	if len(sums) != x.Secondary {
		panic("elementwise: sums length mismatch")
	}
	var s int
	for s = 0; s < x.Secondary; s++ {
		sums[s] = absSpan(x.Primary, x.Line(s), 1)
	}
}

func absSpan[T scalar.Scalar](n int, xs []T, ix int) float64 {
	var (
		acc float64
		i   int
	)
	switch xv := any(xs).(type) {
	case []float64:
		for i = 0; i < n; i++ {
			acc += math.Abs(xv[i*ix])
		}
	case []float32:
		for i = 0; i < n; i++ {
			acc += math.Abs(float64(xv[i*ix]))
		}
	case []complex128:
		for i = 0; i < n; i++ {
			acc += cmplx.Abs(xv[i*ix])
		}
	}
	return acc
}
