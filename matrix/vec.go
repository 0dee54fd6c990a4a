// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Vec is a strided 1-D view: element i lives at data[i*stride].
//
// A Vec either owns freshly allocated storage (NewVec, VecFrom) or aliases
// part of a matrix or another vector (Row, Col, Diagonal, Slice). Writes
// through an aliasing Vec are visible in its parent. The zero value is the
// empty vector, rejected by every operation that reads elements.
//
// Vec performs no locking; concurrent writes through views that share
// storage are the caller's responsibility.
type Vec[T scalar.Scalar] struct {
	buf strided.Buffer[T] // Primary == 1, Secondary == length
}

// vecLayout is the strided layout of an n-element vector with step stride.
func vecLayout(n, stride int) strided.Layout {
	return strided.Layout{Primary: 1, Secondary: n, Stride: stride}
}

// NewVec allocates a zeroed contiguous vector of length n.
func NewVec[T scalar.Scalar](n int) (*Vec[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVec(%d): %w", n, ErrNegativeExtent)
	}
	if n == 0 {
		return nil, fmt.Errorf("NewVec(%d): %w", n, ErrEmpty)
	}
	return &Vec[T]{buf: strided.Make[T](1, n)}, nil
}

// NewVecFrom wraps data as an n-element vector with the given stride.
// len(data) must be exactly stride*(n-1)+1. No copy is made.
func NewVecFrom[T scalar.Scalar](n, stride int, data []T) (*Vec[T], error) {
	b, err := strided.Wrap(vecLayout(n, stride), data)
	if err != nil {
		return nil, fmt.Errorf("NewVecFrom(%d,%d): %w", n, stride, err)
	}
	return &Vec[T]{buf: b}, nil
}

// VecFrom copies vals into a new contiguous vector.
func VecFrom[T scalar.Scalar](vals []T) (*Vec[T], error) {
	v, err := NewVec[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(v.buf.Data, vals)
	return v, nil
}

// Len returns the number of elements (0 for the empty vector).
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.buf.Secondary
}

// Stride returns the storage step between consecutive elements.
func (v *Vec[T]) Stride() int { return v.buf.Stride }

// IsEmpty reports whether v is nil or has no elements.
func (v *Vec[T]) IsEmpty() bool { return v == nil || v.buf.IsEmpty() }

// IsContiguous reports whether the elements are adjacent in storage.
func (v *Vec[T]) IsContiguous() bool { return v.buf.IsContiguous() }

// RawData returns the backing slice, starting at element 0. Element i is at
// index i*Stride(). The slice aliases v.
func (v *Vec[T]) RawData() []T { return v.buf.Data }

// Strided returns the layout descriptor and storage of v.
func (v *Vec[T]) Strided() strided.Buffer[T] {
	if v == nil {
		return strided.Buffer[T]{}
	}
	return v.buf
}

// At returns element i.
func (v *Vec[T]) At(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, fmt.Errorf("Vec.At(%d): %w", i, ErrNilMatrix)
	}
	if err := v.buf.CheckIndex(0, i); err != nil {
		return zero, fmt.Errorf("Vec.At(%d): %w", i, err)
	}
	return v.buf.Data[i*v.buf.Stride], nil
}

// Set assigns element i.
func (v *Vec[T]) Set(i int, val T) error {
	if v == nil {
		return fmt.Errorf("Vec.Set(%d): %w", i, ErrNilMatrix)
	}
	if err := v.buf.CheckIndex(0, i); err != nil {
		return fmt.Errorf("Vec.Set(%d): %w", i, err)
	}
	v.buf.Data[i*v.buf.Stride] = val
	return nil
}

// Fill sets every element to val. Storage between strided elements is not touched.
func (v *Vec[T]) Fill(val T) {
	if v.IsEmpty() {
		return
	}
	v.buf.Fill(val)
}

// Clear sets every element to zero.
func (v *Vec[T]) Clear() {
	var zero T
	v.Fill(zero)
}

// Slice returns the count elements starting at start as a view sharing v's
// storage.
func (v *Vec[T]) Slice(start, count int) (*Vec[T], error) {
	if v.IsEmpty() {
		return nil, fmt.Errorf("Vec.Slice(%d,%d): %w", start, count, validateVec(v))
	}
	if err := v.buf.CheckWindow(0, start, 1, count); err != nil {
		return nil, fmt.Errorf("Vec.Slice(%d,%d): %w", start, count, err)
	}
	return &Vec[T]{buf: v.buf.Window(0, start, 1, count)}, nil
}

// Clone returns a contiguous copy of v.
func (v *Vec[T]) Clone() *Vec[T] {
	if v.IsEmpty() {
		return &Vec[T]{}
	}
	return &Vec[T]{buf: v.buf.Clone()}
}

// CopyFrom copies src into v. Lengths must match.
func (v *Vec[T]) CopyFrom(src *Vec[T]) error {
	if err := validateVecPair(opCopy, src, v); err != nil {
		return err
	}
	b, release := stage(src.buf, v.buf)
	defer release()
	v.buf.CopyFrom(b)
	return nil
}

// ToSlice returns the elements as a new contiguous slice.
func (v *Vec[T]) ToSlice() []T {
	n := v.Len()
	out := make([]T, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = v.buf.Data[i*v.buf.Stride]
	}
	return out
}

// All iterates over (index, value) pairs in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.Len()
		var i int
		for i = 0; i < n; i++ {
			if !yield(i, v.buf.Data[i*v.buf.Stride]) {
				return
			}
		}
	}
}
