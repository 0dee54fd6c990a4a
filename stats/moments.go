// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Third and fourth standardized moments of a flat real sample.
//
// Contract:
//   - Population forms: g1 = m3 / m2^(3/2), g2 = m4 / m2² - 3, where mk is
//     the k-th central moment with divisor n.
//   - Bias-corrected forms (unbiased=true):
//     G1 = g1·√(n(n-1)) / (n-2)                 (n > 2)
//     G2 = ((n+1)·g2 + 6)·(n-1) / ((n-2)(n-3))  (n > 3)
//   - Accumulation is in float64 regardless of R.

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// MomentVarianceFloor is the smallest second central moment Skewness and
// Kurtosis accept.
const MomentVarianceFloor = 1e-14

// centralMoments returns m2, m3 and m4 of xs about their mean.
func centralMoments[R scalar.Real](xs []R) (m2, m3, m4 float64) {
	n := float64(len(xs))
	var mean float64
	for _, v := range xs {
		mean += float64(v)
	}
	mean /= n

	var d, d2 float64
	for _, v := range xs {
		d = float64(v) - mean
		d2 = d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	return m2 / n, m3 / n, m4 / n
}

// momentsFor validates xs for a moment needing more than minBiased samples
// when unbiased, and returns its central moments.
func momentsFor[R scalar.Real](xs []R, unbiased bool, minBiased int) (m2, m3, m4 float64, err error) {
	if len(xs) == 0 {
		return 0, 0, 0, ErrEmptySequence
	}
	if unbiased && len(xs) <= minBiased {
		return 0, 0, 0, fmt.Errorf("%w: n=%d, need n > %d", ErrTooFewSamples, len(xs), minBiased)
	}
	m2, m3, m4 = centralMoments(xs)
	if !(m2 >= MomentVarianceFloor) {
		return 0, 0, 0, fmt.Errorf("%w: m2=%g", ErrDegenerateVariance, m2)
	}
	return m2, m3, m4, nil
}

// Skewness returns the sample skewness of xs: the population coefficient
// g1, or the adjusted Fisher-Pearson G1 when unbiased is true.
//
// Errors:
//   - ErrEmptySequence for an empty sample.
//   - ErrTooFewSamples when unbiased and len(xs) <= 2.
//   - ErrDegenerateVariance when m2 < MomentVarianceFloor (or NaN).
func Skewness[R scalar.Real](xs []R, unbiased bool) (R, error) {
	m2, m3, _, err := momentsFor(xs, unbiased, 2)
	if err != nil {
		return 0, statsErrorf(opSkewness, err)
	}
	g := m3 / math.Pow(m2, 1.5)
	if unbiased {
		n := float64(len(xs))
		g *= math.Sqrt(n*(n-1)) / (n - 2)
	}
	return R(g), nil
}

// Kurtosis returns the excess kurtosis of xs: g2 = m4/m2² - 3, or the
// bias-corrected G2 when unbiased is true. A normal sample gives about 0.
//
// Errors:
//   - ErrEmptySequence for an empty sample.
//   - ErrTooFewSamples when unbiased and len(xs) <= 3.
//   - ErrDegenerateVariance when m2 < MomentVarianceFloor (or NaN).
func Kurtosis[R scalar.Real](xs []R, unbiased bool) (R, error) {
	m2, _, m4, err := momentsFor(xs, unbiased, 3)
	if err != nil {
		return 0, statsErrorf(opKurtosis, err)
	}
	g := m4/(m2*m2) - 3
	if unbiased {
		n := float64(len(xs))
		g = ((n+1)*g + 6) * (n - 1) / ((n - 2) * (n - 3))
	}
	return R(g), nil
}
