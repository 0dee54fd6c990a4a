// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Covariance and correlation matrices of a sequence of length-n vectors.
//
// Algorithm:
//  1. Mean μ (weighted when w is given) into pooled scratch.
//  2. Pack column k of an n×count pooled panel with √wₖ·(xₖ - μ).
//  3. One symmetric (real) or Hermitian (complex) rank-k update fills the
//     lower triangle of a pooled n×n result with alpha = 1/denom.
//  4. Mirror the lower triangle onto the upper one, conjugating for complex,
//     and copy into the destination.
//
// The mirror makes C[i,j] == conj(C[j,i]) bit for bit, and the Hermitian
// update leaves the diagonal exactly real.

package stats

import (
	"math"

	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/kernel"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
	"github.com/katalvlaran/linalg/strided"
)

// covarianceCore writes the n×n covariance of s into dst.
func covarianceCore[T scalar.Scalar](s sequence[T], p spread, dst strided.Buffer[T]) {
	n, count := s.shape.Secondary, s.count()

	mean, releaseMean := scratchLike[T](s.shape)
	defer releaseMean()
	if p.w == nil {
		meanCore(s, mean)
	} else {
		weightedMeanCore(s, p.w, p.sum, mean)
	}

	panel, releasePanel := scratch.Get[T](n * count)
	defer releasePanel()
	col := strided.Layout{Primary: 1, Secondary: n, Stride: 1}
	for k, b := range s.bufs {
		dk := strided.Buffer[T]{Layout: col, Data: panel[k*n : (k+1)*n]}
		elementwise.SubScaled(b, mean, scalar.FromFloat[T](math.Sqrt(p.weight(k))), dk)
	}

	c, releaseC := scratch.Get[T](n * n)
	defer releaseC()
	kernel.RankK(n, count, 1/p.denom, panel, n, 0, c, n)
	kernel.MirrorLower(n, c, n)

	elementwise.Copy(strided.Buffer[T]{
		Layout: strided.Layout{Primary: n, Secondary: n, Stride: n},
		Data:   c,
	}, dst)
}

// covDst validates a caller-owned n×n destination.
func covDst[T scalar.Scalar](op string, n int, dst *matrix.Mat[T]) (strided.Buffer[T], error) {
	if err := matrix.ValidateMat(dst); err != nil {
		return strided.Buffer[T]{}, statsErrorf(op, err)
	}
	s := sequence[T]{shape: strided.Layout{Primary: n, Secondary: n}, dims: matDims}
	b := dst.Strided()
	if err := s.checkShape(b.Layout); err != nil {
		return strided.Buffer[T]{}, statsErrorf(op, err)
	}
	return b, nil
}

// Covariance returns the n×n matrix Σ (xᵢ - μ)(xᵢ - μ)ᴴ / (count - ddof) of
// equally long vectors. Real results are exactly symmetric, complex results
// exactly Hermitian.
//
// Errors:
//   - ErrNegativeDDOF, ErrInsufficientDOF.
//   - those of Mean.
func Covariance[T scalar.Scalar](xs []*matrix.Vec[T], opts ...Option) (*matrix.Mat[T], error) {
	s, err := vecSequence(opCovariance, xs)
	if err != nil {
		return nil, err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opCovariance, err)
	}
	n := s.shape.Secondary
	dst, _ := matrix.NewMat[T](n, n)
	covarianceCore(s, p, dst.Strided())
	return dst, nil
}

// CovarianceInto writes the covariance of xs into the n×n matrix dst.
func CovarianceInto[T scalar.Scalar](xs []*matrix.Vec[T], dst *matrix.Mat[T], opts ...Option) error {
	s, err := vecSequence(opCovariance, xs)
	if err != nil {
		return err
	}
	b, err := covDst(opCovariance, s.shape.Secondary, dst)
	if err != nil {
		return err
	}
	p, err := plainSpread(s.count(), opts)
	if err != nil {
		return statsErrorf(opCovariance, err)
	}
	covarianceCore(s, p, b)
	return nil
}

// WeightedCovariance returns Σ wᵢ(xᵢ - μ_w)(xᵢ - μ_w)ᴴ divided by the Kish
// denominator Σw - ddof·Σw²/Σw.
func WeightedCovariance[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, opts ...Option) (*matrix.Mat[T], error) {
	s, err := vecSequence(opWeightedCovariance, xs)
	if err != nil {
		return nil, err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return nil, statsErrorf(opWeightedCovariance, err)
	}
	n := s.shape.Secondary
	dst, _ := matrix.NewMat[T](n, n)
	covarianceCore(s, p, dst.Strided())
	return dst, nil
}

// WeightedCovarianceInto writes the weighted covariance of xs into dst.
func WeightedCovarianceInto[T scalar.Scalar](xs []*matrix.Vec[T], w []float64, dst *matrix.Mat[T], opts ...Option) error {
	s, err := vecSequence(opWeightedCovariance, xs)
	if err != nil {
		return err
	}
	b, err := covDst(opWeightedCovariance, s.shape.Secondary, dst)
	if err != nil {
		return err
	}
	p, err := weightedSpread(w, s.count(), opts)
	if err != nil {
		return statsErrorf(opWeightedCovariance, err)
	}
	covarianceCore(s, p, b)
	return nil
}

// Correlation returns the Pearson correlation matrix of xs:
// C[i,j] / √(C[i,i]·C[j,j]) over the sample covariance C.
//
// A component with zero variance yields a zero row and column (diagonal
// included) instead of NaN.
func Correlation[T scalar.Scalar](xs []*matrix.Vec[T]) (*matrix.Mat[T], error) {
	s, err := vecSequence(opCorrelation, xs)
	if err != nil {
		return nil, err
	}
	// ddof cancels in the ratio; 0 keeps a single observation valid.
	p, err := plainSpread(s.count(), []Option{WithDDOF(0)})
	if err != nil {
		return nil, statsErrorf(opCorrelation, err)
	}
	n := s.shape.Secondary
	dst, _ := matrix.NewMat[T](n, n)
	covarianceCore(s, p, dst.Strided())

	sd, release := scratch.Get[float64](n)
	defer release()
	var i, j int
	for i = 0; i < n; i++ {
		v, _ := dst.At(i, i)
		sd[i] = math.Sqrt(scalar.Re(v))
	}
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if sd[i] == 0 || sd[j] == 0 {
				_ = dst.Set(i, j, 0)
				continue
			}
			if i == j {
				_ = dst.Set(i, j, 1)
				continue
			}
			v, _ := dst.At(i, j)
			_ = dst.Set(i, j, v/scalar.FromFloat[T](sd[i]*sd[j]))
		}
	}
	return dst, nil
}
