// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Elementwise means of vector and matrix sequences, plain and weighted.
//
// Determinism & Performance:
//   - Observations are accumulated in order into a pooled contiguous buffer
//     and divided once by the count (or Σw) while copying into the
//     destination. The destination may alias an observation.

package stats

import (
	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// meanCore writes Σx / n into dst.
func meanCore[T scalar.Scalar](s sequence[T], dst strided.Buffer[T]) {
	acc, release := scratchLike[T](s.shape)
	defer release()
	for _, b := range s.bufs {
		elementwise.Add(b, acc, acc)
	}
	elementwise.DivScalar(acc, scalar.FromFloat[T](float64(s.count())), dst)
}

// weightedMeanCore writes Σwx / Σw into dst; w is already validated.
func weightedMeanCore[T scalar.Scalar](s sequence[T], w []float64, sum float64, dst strided.Buffer[T]) {
	acc, release := scratchLike[T](s.shape)
	defer release()
	for i, b := range s.bufs {
		elementwise.AddScaled(b, scalar.FromFloat[T](w[i]), acc)
	}
	elementwise.DivScalar(acc, scalar.FromFloat[T](sum), dst)
}

// Mean returns the elementwise mean of equally long vectors.
//
// Errors:
//   - ErrEmptySequence for len(xs) == 0.
//   - matrix.ErrNilMatrix / matrix.ErrEmpty for an unusable element.
//   - matrix.ErrDimensionMismatch when an element's length differs from xs[0].
func Mean[T scalar.Scalar](xs []*matrix.Vec[T]) (*matrix.Vec[T], error) {
	s, err := vecSequence(opMean, xs)
	if err != nil {
		return nil, err
	}
	dst := newVecFor(s)
	meanCore(s, dst.Strided())
	return dst, nil
}

// MeanInto writes the elementwise mean of xs into dst.
func MeanInto[T scalar.Scalar](xs []*matrix.Vec[T], dst *matrix.Vec[T]) error {
	s, err := vecSequence(opMean, xs)
	if err != nil {
		return err
	}
	b, err := vecDst(opMean, s, dst)
	if err != nil {
		return err
	}
	meanCore(s, b)
	return nil
}

// MeanMat returns the elementwise mean of equally shaped matrices.
func MeanMat[T scalar.Scalar](ms []*matrix.Mat[T]) (*matrix.Mat[T], error) {
	s, err := matSequence(opMean, ms)
	if err != nil {
		return nil, err
	}
	dst := newMatFor(s)
	meanCore(s, dst.Strided())
	return dst, nil
}

// MeanMatInto writes the elementwise mean of ms into dst.
func MeanMatInto[T scalar.Scalar](ms []*matrix.Mat[T], dst *matrix.Mat[T]) error {
	s, err := matSequence(opMean, ms)
	if err != nil {
		return err
	}
	b, err := matDst(opMean, s, dst)
	if err != nil {
		return err
	}
	meanCore(s, b)
	return nil
}

// WeightedMean returns Σ wᵢxᵢ / Σ wᵢ.
//
// Errors (in addition to those of Mean):
//   - ErrWeightCount when len(w) != len(xs).
//   - ErrNegativeWeight for a negative or NaN weight.
//   - ErrZeroWeightSum when Σ w is zero.
func WeightedMean[T scalar.Scalar](xs []*matrix.Vec[T], w []float64) (*matrix.Vec[T], error) {
	s, err := vecSequence(opWeightedMean, xs)
	if err != nil {
		return nil, err
	}
	sum, _, err := weightSums(w, s.count())
	if err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}
	dst := newVecFor(s)
	weightedMeanCore(s, w, sum, dst.Strided())
	return dst, nil
}

// WeightedMeanInto writes Σ wᵢxᵢ / Σ wᵢ into dst.
func WeightedMeanInto[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, dst *matrix.Vec[T]) error {
	s, err := vecSequence(opWeightedMean, xs)
	if err != nil {
		return err
	}
	b, err := vecDst(opWeightedMean, s, dst)
	if err != nil {
		return err
	}
	sum, _, err := weightSums(w, s.count())
	if err != nil {
		return statsErrorf(opWeightedMean, err)
	}
	weightedMeanCore(s, w, sum, b)
	return nil
}

// WeightedMeanMat is WeightedMean over matrices.
func WeightedMeanMat[T scalar.Scalar](ms []*matrix.Mat[T], w []float64) (*matrix.Mat[T], error) {
	s, err := matSequence(opWeightedMean, ms)
	if err != nil {
		return nil, err
	}
	sum, _, err := weightSums(w, s.count())
	if err != nil {
		return nil, statsErrorf(opWeightedMean, err)
	}
	dst := newMatFor(s)
	weightedMeanCore(s, w, sum, dst.Strided())
	return dst, nil
}

// WeightedMeanMatInto is WeightedMeanInto over matrices.
func WeightedMeanMatInto[T scalar.Scalar](ms []*matrix.Mat[T], w []float64, dst *matrix.Mat[T]) error {
	s, err := matSequence(opWeightedMean, ms)
	if err != nil {
		return err
	}
	b, err := matDst(opWeightedMean, s, dst)
	if err != nil {
		return err
	}
	sum, _, err := weightSums(w, s.count())
	if err != nil {
		return statsErrorf(opWeightedMean, err)
	}
	weightedMeanCore(s, w, sum, b)
	return nil
}
