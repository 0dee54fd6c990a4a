// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Pointwise variance and standard deviation, plain and weighted, over
//     vector and matrix sequences.
//
// Numerics:
//   - Two passes: the mean first, then Σ wᵢ|xᵢ - μ|² (wᵢ = 1 unweighted).
//   - Denominators: n - ddof, or Σw - ddof·Σw²/Σw when weighted. The
//     weighted form reduces to n - ddof for unit weights.

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// spread holds the validated parameters of one variance-family reduction.
type spread struct {
	w     []float64 // nil when unweighted
	sum   float64   // Σw, or n
	denom float64
}

// plainSpread validates ddof for an unweighted reduction over n observations.
func plainSpread(n int, opts []Option) (spread, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return spread{}, err
	}
	denom := float64(n - o.ddof)
	if denom <= 0 {
		return spread{}, fmt.Errorf("%w: n=%d ddof=%d", ErrInsufficientDOF, n, o.ddof)
	}
	return spread{sum: float64(n), denom: denom}, nil
}

// weightedSpread validates ddof and w, and computes the Kish denominator.
func weightedSpread(w []float64, n int, opts []Option) (spread, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return spread{}, err
	}
	sum, sumSq, err := weightSums(w, n)
	if err != nil {
		return spread{}, err
	}
	denom := sum - float64(o.ddof)*sumSq/sum
	if !(denom > 0) {
		return spread{}, fmt.Errorf("%w: Σw=%g Σw²=%g ddof=%d", ErrInsufficientDOF, sum, sumSq, o.ddof)
	}
	return spread{w: w, sum: sum, denom: denom}, nil
}

func (p spread) weight(i int) float64 {
	if p.w == nil {
		return 1
	}
	return p.w[i]
}

// varianceCore writes Σ wᵢ|xᵢ - μ|² / denom into dst.
func varianceCore[T scalar.Scalar](s sequence[T], p spread, dst strided.Buffer[T]) {
	mean, releaseMean := scratchLike[T](s.shape)
	defer releaseMean()
	if p.w == nil {
		meanCore(s, mean)
	} else {
		weightedMeanCore(s, p.w, p.sum, mean)
	}

	acc, releaseAcc := scratchLike[T](s.shape)
	defer releaseAcc()
	for i, b := range s.bufs {
		elementwise.AddSqDiff(b, mean, p.weight(i), acc)
	}
	elementwise.DivScalar(acc, scalar.FromFloat[T](p.denom), dst)
}

// sqrtInPlace replaces every element by the square root of its real part.
func sqrtInPlace[T scalar.Scalar](b strided.Buffer[T]) {
	elementwise.Map(b, func(v T) T { return scalar.FromFloat[T](math.Sqrt(scalar.Re(v))) }, b)
}

// Variance returns Σ|xᵢ - μ|² / (n - ddof) for every element position.
// For complex128 the result holds the (real) variance in the real part.
//
// Errors:
//   - ErrNegativeDDOF, ErrInsufficientDOF (n - ddof <= 0).
//   - those of Mean.
func Variance[T scalar.Scalar](xs []*matrix.Vec[T], opts ...Option) (*matrix.Vec[T], error) {
	s, err := vecSequence(opVariance, xs)
	if err != nil {
		return nil, err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opVariance, err)
	}
	dst := newVecFor(s)
	varianceCore(s, p, dst.Strided())
	return dst, nil
}

// VarianceInto writes the pointwise variance of xs into dst.
func VarianceInto[T scalar.Scalar](xs []*matrix.Vec[T], dst *matrix.Vec[T], opts ...Option) error {
	s, err := vecSequence(opVariance, xs)
	if err != nil {
		return err
	}
	b, err := vecDst(opVariance, s, dst)
	if err != nil {
		return err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return statsErrorf(opVariance, err)
	}
	varianceCore(s, p, b)
	return nil
}

// VarianceMat is Variance over matrices.
func VarianceMat[T scalar.Scalar](ms []*matrix.Mat[T], opts ...Option) (*matrix.Mat[T], error) {
	s, err := matSequence(opVariance, ms)
	if err != nil {
		return nil, err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opVariance, err)
	}
	dst := newMatFor(s)
	varianceCore(s, p, dst.Strided())
	return dst, nil
}

// VarianceMatInto is VarianceInto over matrices.
func VarianceMatInto[T scalar.Scalar](ms []*matrix.Mat[T], dst *matrix.Mat[T], opts ...Option) error {
	s, err := matSequence(opVariance, ms)
	if err != nil {
		return err
	}
	b, err := matDst(opVariance, s, dst)
	if err != nil {
		return err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return statsErrorf(opVariance, err)
	}
	varianceCore(s, p, b)
	return nil
}

// WeightedVariance returns Σ wᵢ|xᵢ - μ_w|² / (Σw - ddof·Σw²/Σw), where μ_w is
// the weighted mean. The denominator is the effective-sample-size (Kish)
// correction; with unit weights it equals n - ddof.
func WeightedVariance[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, opts ...Option) (*matrix.Vec[T], error) {
	s, err := vecSequence(opWeightedVariance, xs)
	if err != nil {
		return nil, err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opWeightedVariance, err)
	}
	dst := newVecFor(s)
	varianceCore(s, p, dst.Strided())
	return dst, nil
}

// WeightedVarianceInto writes the weighted variance of xs into dst.
func WeightedVarianceInto[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, dst *matrix.Vec[T], opts ...Option) error {
	s, err := vecSequence(opWeightedVariance, xs)
	if err != nil {
		return err
	}
	b, err := vecDst(opWeightedVariance, s, dst)
	if err != nil {
		return err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return statsErrorf(opWeightedVariance, err)
	}
	varianceCore(s, p, b)
	return nil
}

// WeightedVarianceMat is WeightedVariance over matrices.
func WeightedVarianceMat[T scalar.Scalar](ms []*matrix.Mat[T], w []float64, opts ...Option) (*matrix.Mat[T], error) {
	s, err := matSequence(opWeightedVariance, ms)
	if err != nil {
		return nil, err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opWeightedVariance, err)
	}
	dst := newMatFor(s)
	varianceCore(s, p, dst.Strided())
	return dst, nil
}

// StdDev returns the elementwise square root of Variance.
func StdDev[T scalar.Scalar](xs []*matrix.Vec[T], opts ...Option) (*matrix.Vec[T], error) {
	s, err := vecSequence(opStdDev, xs)
	if err != nil {
		return nil, err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opStdDev, err)
	}
	dst := newVecFor(s)
	varianceCore(s, p, dst.Strided())
	sqrtInPlace(dst.Strided())
	return dst, nil
}

// StdDevMat returns the elementwise square root of VarianceMat.
func StdDevMat[T scalar.Scalar](ms []*matrix.Mat[T], opts ...Option) (*matrix.Mat[T], error) {
	s, err := matSequence(opStdDev, ms)
	if err != nil {
		return nil, err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opStdDev, err)
	}
	dst := newMatFor(s)
	varianceCore(s, p, dst.Strided())
	sqrtInPlace(dst.Strided())
	return dst, nil
}

// WeightedStdDev returns the elementwise square root of WeightedVariance.
func WeightedStdDev[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, opts ...Option) (*matrix.Vec[T], error) {
	s, err := vecSequence(opWeightedStdDev, xs)
	if err != nil {
		return nil, err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opWeightedStdDev, err)
	}
	dst := newVecFor(s)
	varianceCore(s, p, dst.Strided())
	sqrtInPlace(dst.Strided())
	return dst, nil
}
