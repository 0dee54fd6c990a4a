// SPDX-License-Identifier: MIT

package elementwise

import "github.com/katalvlaran/linalg/strided"

type mode uint8

const (
	modeFlat mode = iota
	modeStrided
	modeColumns
)

// pick chooses the traversal mode shared by all layouts, which must have the
// same shape.
func pick(ls ...strided.Layout) mode {
	first := ls[0]
	flat, vec := true, first.Primary == 1
	for _, l := range ls {
		if !l.SameShape(first) {
			panic("elementwise: shape mismatch")
		}
		flat = flat && l.IsContiguous()
	}
	switch {
	case flat:
		return modeFlat
	case vec:
		return modeStrided
	default:
		return modeColumns
	}
}

// binarySpan processes n elements of two inputs into one output.
type binarySpan[T any] func(n int, x []T, incX int, y []T, incY int, d []T, incD int)

// unarySpan processes n elements of one input into one output.
type unarySpan[T, U any] func(n int, x []T, incX int, d []U, incD int)

func runBinary[T any](x, y, dst strided.Buffer[T], f binarySpan[T]) {
	switch pick(x.Layout, y.Layout, dst.Layout) {
	case modeFlat:
		f(dst.Len(), x.Flat(), 1, y.Flat(), 1, dst.Flat(), 1)
	case modeStrided:
		f(dst.Secondary, x.Data, x.Stride, y.Data, y.Stride, dst.Data, dst.Stride)
	default:
		var s int
		for s = 0; s < dst.Secondary; s++ {
			f(dst.Primary, x.Line(s), 1, y.Line(s), 1, dst.Line(s), 1)
		}
	}
}

func runUnary[T, U any](x strided.Buffer[T], dst strided.Buffer[U], f unarySpan[T, U]) {
	switch pick(x.Layout, dst.Layout) {
	case modeFlat:
		f(dst.Len(), x.Flat(), 1, dst.Flat(), 1)
	case modeStrided:
		f(dst.Secondary, x.Data, x.Stride, dst.Data, dst.Stride)
	default:
		var s int
		for s = 0; s < dst.Secondary; s++ {
			f(dst.Primary, x.Line(s), 1, dst.Line(s), 1)
		}
	}
}

// runReduce feeds every span of x to f. Reductions only read, so any
// traversal order is fine; the column-major one keeps reads sequential.
func runReduce[T any](x strided.Buffer[T], f func(n int, x []T, incX int)) {
	switch pick(x.Layout) {
	case modeFlat:
		f(x.Len(), x.Flat(), 1)
	case modeStrided:
		f(x.Secondary, x.Data, x.Stride)
	default:
		var s int
		for s = 0; s < x.Secondary; s++ {
			f(x.Primary, x.Line(s), 1)
		}
	}
}

func runReduce2[T any](x, y strided.Buffer[T], f func(n int, x []T, incX int, y []T, incY int)) {
	switch pick(x.Layout, y.Layout) {
	case modeFlat:
		f(x.Len(), x.Flat(), 1, y.Flat(), 1)
	case modeStrided:
		f(x.Secondary, x.Data, x.Stride, y.Data, y.Stride)
	default:
		var s int
		for s = 0; s < x.Secondary; s++ {
			f(x.Primary, x.Line(s), 1, y.Line(s), 1)
		}
	}
}
