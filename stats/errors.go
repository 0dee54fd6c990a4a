// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.

package stats

import (
	"fmt"

	"github.com/katalvlaran/linalg/strided"
)

var (
	// ErrEmptySequence is returned when no observations are given.
	ErrEmptySequence = strided.NewError(strided.ErrInsufficientData, "stats: empty sequence")

	// ErrNegativeWeight is returned for a negative or NaN weight.
	ErrNegativeWeight = strided.NewError(strided.ErrInvalidArgument, "stats: negative or NaN weight")

	// ErrWeightCount is returned when len(weights) differs from the number of
	// observations.
	ErrWeightCount = strided.NewError(strided.ErrInvalidArgument, "stats: weight count mismatch")

	// ErrZeroWeightSum is returned when the weights sum to zero.
	ErrZeroWeightSum = strided.NewError(strided.ErrInsufficientData, "stats: weights sum to zero")

	// ErrNegativeDDOF is returned by WithDDOF values below zero.
	ErrNegativeDDOF = strided.NewError(strided.ErrInvalidArgument, "stats: negative ddof")

	// ErrInsufficientDOF is returned when the variance denominator
	// (n - ddof, or the weighted equivalent) is not positive.
	ErrInsufficientDOF = strided.NewError(strided.ErrInsufficientData, "stats: not enough degrees of freedom")

	// ErrDegenerateVariance is returned by Skewness and Kurtosis when the
	// second central moment is below MomentVarianceFloor.
	ErrDegenerateVariance = strided.NewError(strided.ErrInsufficientData, "stats: variance too small")

	// ErrTooFewSamples is returned when a bias correction needs more samples
	// (n > 2 for skewness, n > 3 for kurtosis).
	ErrTooFewSamples = strided.NewError(strided.ErrInsufficientData, "stats: too few samples for bias correction")
)

// Operation tags used in wrapped errors.
const (
	opMean               = "Mean"
	opWeightedMean       = "WeightedMean"
	opVariance           = "Variance"
	opWeightedVariance   = "WeightedVariance"
	opStdDev             = "StdDev"
	opWeightedStdDev     = "WeightedStdDev"
	opCovariance         = "Covariance"
	opWeightedCovariance = "WeightedCovariance"
	opCorrelation        = "Correlation"
	opSkewness           = "Skewness"
	opKurtosis           = "Kurtosis"
)

// statsErrorf wraps err with an operation tag.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
