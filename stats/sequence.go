// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Turn []*matrix.Vec or []*matrix.Mat into a validated list of strided
//     buffers sharing one shape, so every reduction has a single core.
//   - Validate weights and destinations before any write.

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
	"github.com/katalvlaran/linalg/strided"
)

// dimNames label the primary and secondary extents in mismatch errors.
type dimNames [2]string

var (
	vecDims = dimNames{"len", "len"}
	matDims = dimNames{"rows", "cols"}
)

// sequence is a non-empty list of equally shaped observations.
type sequence[T scalar.Scalar] struct {
	bufs  []strided.Buffer[T]
	shape strided.Layout
	dims  dimNames
}

func (s sequence[T]) count() int { return len(s.bufs) }

func vecSequence[T scalar.Scalar](op string, xs []*matrix.Vec[T]) (sequence[T], error) {
	if len(xs) == 0 {
		return sequence[T]{}, statsErrorf(op, ErrEmptySequence)
	}
	bufs := make([]strided.Buffer[T], len(xs))
	for i, x := range xs {
		if err := matrix.ValidateVec(x); err != nil {
			return sequence[T]{}, fmt.Errorf("%s: element %d: %w", op, i, err)
		}
		bufs[i] = x.Strided()
	}
	return newSequence(op, bufs, vecDims)
}

func matSequence[T scalar.Scalar](op string, ms []*matrix.Mat[T]) (sequence[T], error) {
	if len(ms) == 0 {
		return sequence[T]{}, statsErrorf(op, ErrEmptySequence)
	}
	bufs := make([]strided.Buffer[T], len(ms))
	for i, m := range ms {
		if err := matrix.ValidateMat(m); err != nil {
			return sequence[T]{}, fmt.Errorf("%s: element %d: %w", op, i, err)
		}
		bufs[i] = m.Strided()
	}
	return newSequence(op, bufs, matDims)
}

func newSequence[T scalar.Scalar](op string, bufs []strided.Buffer[T], dims dimNames) (sequence[T], error) {
	s := sequence[T]{bufs: bufs, shape: bufs[0].Layout, dims: dims}
	for i, b := range bufs[1:] {
		if err := s.checkShape(b.Layout); err != nil {
			return sequence[T]{}, fmt.Errorf("%s: element %d: %w", op, i+1, err)
		}
	}
	return s, nil
}

// checkShape compares l against the sequence shape, naming the first
// dimension that disagrees.
func (s sequence[T]) checkShape(l strided.Layout) error {
	if l.Primary != s.shape.Primary {
		return fmt.Errorf("%w: %s %d != %d", matrix.ErrDimensionMismatch, s.dims[0], l.Primary, s.shape.Primary)
	}
	if l.Secondary != s.shape.Secondary {
		return fmt.Errorf("%w: %s %d != %d", matrix.ErrDimensionMismatch, s.dims[1], l.Secondary, s.shape.Secondary)
	}
	return nil
}

// vecDst validates a caller-owned vector destination against s.
func vecDst[T scalar.Scalar](op string, s sequence[T], dst *matrix.Vec[T]) (strided.Buffer[T], error) {
	if err := matrix.ValidateVec(dst); err != nil {
		return strided.Buffer[T]{}, fmt.Errorf("%s: destination: %w", op, err)
	}
	b := dst.Strided()
	if err := s.checkShape(b.Layout); err != nil {
		return strided.Buffer[T]{}, fmt.Errorf("%s: destination: %w", op, err)
	}
	return b, nil
}

// matDst validates a caller-owned matrix destination against s.
func matDst[T scalar.Scalar](op string, s sequence[T], dst *matrix.Mat[T]) (strided.Buffer[T], error) {
	if err := matrix.ValidateMat(dst); err != nil {
		return strided.Buffer[T]{}, fmt.Errorf("%s: destination: %w", op, err)
	}
	b := dst.Strided()
	if err := s.checkShape(b.Layout); err != nil {
		return strided.Buffer[T]{}, fmt.Errorf("%s: destination: %w", op, err)
	}
	return b, nil
}

// newVecFor allocates a vector shaped like the sequence elements.
func newVecFor[T scalar.Scalar](s sequence[T]) *matrix.Vec[T] {
	v, _ := matrix.NewVec[T](s.shape.Secondary)
	return v
}

// newMatFor allocates a matrix shaped like the sequence elements.
func newMatFor[T scalar.Scalar](s sequence[T]) *matrix.Mat[T] {
	m, _ := matrix.NewMat[T](s.shape.Primary, s.shape.Secondary)
	return m
}

// scratchLike returns a zeroed pooled contiguous buffer with l's extents.
func scratchLike[T scalar.Scalar](l strided.Layout) (strided.Buffer[T], func()) {
	data, release := scratch.Get[T](l.Len())
	return strided.Buffer[T]{
		Layout: strided.Layout{Primary: l.Primary, Secondary: l.Secondary, Stride: l.Primary},
		Data:   data,
	}, release
}

// weightSums validates w against n observations and returns Σw and Σw².
func weightSums(w []float64, n int) (sum, sumSq float64, err error) {
	if len(w) != n {
		return 0, 0, fmt.Errorf("%w: %d weights for %d observations", ErrWeightCount, len(w), n)
	}
	for i, v := range w {
		if v < 0 || math.IsNaN(v) {
			return 0, 0, fmt.Errorf("%w: w[%d]=%g", ErrNegativeWeight, i, v)
		}
		sum += v
		sumSq += v * v
	}
	if !(sum > 0) {
		return 0, 0, ErrZeroWeightSum
	}
	return sum, sumSq, nil
}
