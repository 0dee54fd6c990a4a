// SPDX-License-Identifier: MIT

package elementwise

import (
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Add computes dst = x + y.
func Add[T scalar.Scalar](x, y, dst strided.Buffer[T]) { runBinary(x, y, dst, addSpan[T]) }

// Sub computes dst = x - y.
func Sub[T scalar.Scalar](x, y, dst strided.Buffer[T]) { runBinary(x, y, dst, subSpan[T]) }

// MulElem computes the pointwise product dst = x ∘ y.
func MulElem[T scalar.Scalar](x, y, dst strided.Buffer[T]) { runBinary(x, y, dst, mulSpan[T]) }

// DivElem computes the pointwise quotient dst = x ⊘ y.
func DivElem[T scalar.Scalar](x, y, dst strided.Buffer[T]) { runBinary(x, y, dst, divSpan[T]) }

// Scale computes dst = alpha·x.
func Scale[T scalar.Scalar](x strided.Buffer[T], alpha T, dst strided.Buffer[T]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []T, id int) { scaleSpan(n, alpha, xs, ix, d, id) })
}

// DivScalar computes dst = x / alpha. Division is performed per element, not
// through a reciprocal, so results match x[i]/alpha exactly.
func DivScalar[T scalar.Scalar](x strided.Buffer[T], alpha T, dst strided.Buffer[T]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []T, id int) {
		var i int
		for i = 0; i < n; i++ {
			d[i*id] = xs[i*ix] / alpha
		}
	})
}

// Negate computes dst = -x.
func Negate[T scalar.Scalar](x, dst strided.Buffer[T]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []T, id int) {
		var i int
		for i = 0; i < n; i++ {
			d[i*id] = -xs[i*ix]
		}
	})
}

// Conj computes dst = conj(x). For real kinds it is a copy.
func Conj[T scalar.Scalar](x, dst strided.Buffer[T]) {
	runUnary(x, dst, conjSpan[T])
}

// Copy computes dst = x.
func Copy[T scalar.Scalar](x, dst strided.Buffer[T]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []T, id int) {
		if ix == 1 && id == 1 {
			copy(d[:n], xs[:n])
			return
		}
		var i int
		for i = 0; i < n; i++ {
			d[i*id] = xs[i*ix]
		}
	})
}

// Map computes dst[i] = f(x[i]). Source and destination kinds may differ.
func Map[T, U scalar.Scalar](x strided.Buffer[T], f func(T) U, dst strided.Buffer[U]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []U, id int) {
		var i int
		for i = 0; i < n; i++ {
			d[i*id] = f(xs[i*ix])
		}
	})
}

// AddScaled accumulates dst += alpha·x.
func AddScaled[T scalar.Scalar](x strided.Buffer[T], alpha T, dst strided.Buffer[T]) {
	runUnary(x, dst, func(n int, xs []T, ix int, d []T, id int) {
		var i int
		for i = 0; i < n; i++ {
			d[i*id] += alpha * xs[i*ix]
		}
	})
}

// SubScaled computes dst = alpha·(x - y).
func SubScaled[T scalar.Scalar](x, y strided.Buffer[T], alpha T, dst strided.Buffer[T]) {
	runBinary(x, y, dst, func(n int, xs []T, ix int, ys []T, iy int, d []T, id int) {
		var i int
		for i = 0; i < n; i++ {
			d[i*id] = alpha * (xs[i*ix] - ys[i*iy])
		}
	})
}

// AddSqDiff accumulates acc += w·|x - y|². For complex kinds the squared
// magnitude is stored in the real part.
func AddSqDiff[T scalar.Scalar](x, y strided.Buffer[T], w float64, acc strided.Buffer[T]) {
	runBinary(x, y, acc, func(n int, xs []T, ix int, ys []T, iy int, d []T, id int) {
		switch dv := any(d).(type) {
		case []complex128:
			xv, yv := any(xs).([]complex128), any(ys).([]complex128)
			var i int
			for i = 0; i < n; i++ {
				diff := xv[i*ix] - yv[i*iy]
				dv[i*id] += complex(w*(real(diff)*real(diff)+imag(diff)*imag(diff)), 0)
			}
		default:
			wt := scalar.FromFloat[T](w)
			var i int
			for i = 0; i < n; i++ {
				diff := xs[i*ix] - ys[i*iy]
				d[i*id] += wt * diff * diff
			}
		}
	})
}

func addSpan[T scalar.Scalar](n int, x []T, ix int, y []T, iy int, d []T, id int) {
	if ix == 1 && iy == 1 && id == 1 {
		if dv, ok := any(d).([]float64); ok {
			vecmath.AddBlock(dv[:n], any(x).([]float64)[:n], any(y).([]float64)[:n])
			return
		}
	}
	var i int
	for i = 0; i < n; i++ {
		d[i*id] = x[i*ix] + y[i*iy]
	}
}

func subSpan[T scalar.Scalar](n int, x []T, ix int, y []T, iy int, d []T, id int) {
	var i int
	for i = 0; i < n; i++ {
		d[i*id] = x[i*ix] - y[i*iy]
	}
}

func mulSpan[T scalar.Scalar](n int, x []T, ix int, y []T, iy int, d []T, id int) {
	if ix == 1 && iy == 1 && id == 1 {
		if dv, ok := any(d).([]float64); ok {
			vecmath.MulBlock(dv[:n], any(x).([]float64)[:n], any(y).([]float64)[:n])
			return
		}
	}
	var i int
	for i = 0; i < n; i++ {
		d[i*id] = x[i*ix] * y[i*iy]
	}
}

func divSpan[T scalar.Scalar](n int, x []T, ix int, y []T, iy int, d []T, id int) {
	var i int
	for i = 0; i < n; i++ {
		d[i*id] = x[i*ix] / y[i*iy]
	}
}

func scaleSpan[T scalar.Scalar](n int, alpha T, x []T, ix int, d []T, id int) {
	if ix == 1 && id == 1 {
		if dv, ok := any(d).([]float64); ok {
			vecmath.ScaleBlock(dv[:n], any(x).([]float64)[:n], any(alpha).(float64))
			return
		}
	}
	var i int
	for i = 0; i < n; i++ {
		d[i*id] = alpha * x[i*ix]
	}
}

func conjSpan[T scalar.Scalar](n int, x []T, ix int, d []T, id int) {
	var i int
	if dv, ok := any(d).([]complex128); ok {
		xv := any(x).([]complex128)
		for i = 0; i < n; i++ {
			dv[i*id] = cmplx.Conj(xv[i*ix])
		}
		return
	}
	for i = 0; i < n; i++ {
		d[i*id] = x[i*ix]
	}
}
