// SPDX-License-Identifier: MIT
package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/stats"
)

func TestVariance_MatchesGonum(t *testing.T) {
	t.Parallel()

	rows := sample[float64](12, 5, 3)
	got, err := stats.Variance(rowViews(t, rows))
	require.NoError(t, err)

	sd, err := stats.StdDev(rowViews(t, rows))
	require.NoError(t, err)

	for j := range 5 {
		v, _ := got.At(j)
		require.InDelta(t, stat.Variance(column(rows, j), nil), v, 1e-14)
		s, _ := sd.At(j)
		require.InDelta(t, stat.StdDev(column(rows, j), nil), s, 1e-14)
	}
}

func TestVariance_DDOF(t *testing.T) {
	t.Parallel()

	xs := vecs(t, [][]float64{{1}, {3}})
	pop, err := stats.Variance(xs, stats.WithDDOF(0))
	require.NoError(t, err)
	requireVec(t, []float64{1}, pop, 0)

	smp, err := stats.Variance(xs)
	require.NoError(t, err)
	requireVec(t, []float64{2}, smp, 0)

	_, err = stats.Variance(xs, stats.WithDDOF(2))
	require.ErrorIs(t, err, stats.ErrInsufficientDOF)
	require.ErrorIs(t, err, matrix.ErrInsufficientData)

	_, err = stats.Variance(xs, stats.WithDDOF(-1))
	require.ErrorIs(t, err, stats.ErrNegativeDDOF)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestVariance_IdenticalVectors(t *testing.T) {
	t.Parallel()

	v := []float64{4, -1, 0.5}
	_, err := stats.Variance(vecs(t, [][]float64{v}))
	require.ErrorIs(t, err, matrix.ErrInsufficientData)

	got, err := stats.Variance(vecs(t, [][]float64{v, v, v}))
	require.NoError(t, err)
	requireVec(t, []float64{0, 0, 0}, got, 0)
}

func TestVariance_Complex(t *testing.T) {
	t.Parallel()

	// |x - μ|² for μ = 0: (1 + 1) and (1 + 1), divided by n - 1 = 1.
	got, err := stats.Variance(vecs(t, [][]complex128{{1 + 1i}, {-1 - 1i}}))
	require.NoError(t, err)
	requireVec(t, []complex128{4}, got, 1e-15)

	sd, err := stats.StdDev(vecs(t, [][]complex128{{1 + 1i}, {-1 - 1i}}))
	require.NoError(t, err)
	requireVec(t, []complex128{2}, sd, 1e-15)
}

func TestVarianceMat(t *testing.T) {
	t.Parallel()

	a, err := matrix.MatFromRows([][]float32{{1, 5}, {2, 0}})
	require.NoError(t, err)
	b, err := matrix.MatFromRows([][]float32{{3, 5}, {6, 0}})
	require.NoError(t, err)
	ms := []*matrix.Mat[float32]{a, b}

	got, err := stats.VarianceMat(ms)
	require.NoError(t, err)
	requireMat(t, [][]float32{{2, 0}, {8, 0}}, got, 0)

	dst, err := matrix.NewMat[float32](2, 2)
	require.NoError(t, err)
	require.NoError(t, stats.VarianceMatInto(ms, dst, stats.WithDDOF(0)))
	requireMat(t, [][]float32{{1, 0}, {4, 0}}, dst, 0)

	sd, err := stats.StdDevMat(ms)
	require.NoError(t, err)
	requireMat(t, [][]float32{{float32(math.Sqrt2), 0}, {float32(math.Sqrt(8)), 0}}, sd, 1e-6)
}

func TestVarianceInto_FailFast(t *testing.T) {
	t.Parallel()

	dst := vecs(t, [][]float64{{5, 5}})[0]
	err := stats.VarianceInto(vecs(t, [][]float64{{1, 2}}), dst)
	require.ErrorIs(t, err, stats.ErrInsufficientDOF)
	requireVec(t, []float64{5, 5}, dst, 0)

	xs := vecs(t, [][]float64{{1, 2}, {3, 6}})
	require.NoError(t, stats.VarianceInto(xs, xs[1]))
	requireVec(t, []float64{2, 8}, xs[1], 0)
}

// weightedVarianceRef is Σ wᵢ(xᵢ - μ_w)² / (Σw - ddof·Σw²/Σw) for one component.
func weightedVarianceRef(x, w []float64, ddof int) float64 {
	var sw, sww, swx float64
	for i := range x {
		sw += w[i]
		sww += w[i] * w[i]
		swx += w[i] * x[i]
	}
	mu := swx / sw
	var acc float64
	for i := range x {
		acc += w[i] * (x[i] - mu) * (x[i] - mu)
	}
	return acc / (sw - float64(ddof)*sww/sw)
}

func TestWeightedVariance(t *testing.T) {
	t.Parallel()

	rows := sample[float64](7, 3, 5)
	w := []float64{0.5, 1, 2, 0.25, 3, 1, 1.5}

	for _, ddof := range []int{0, 1} {
		got, err := stats.WeightedVariance(rowViews(t, rows), w, stats.WithDDOF(ddof))
		require.NoError(t, err)
		for j := range 3 {
			v, _ := got.At(j)
			require.InDelta(t, weightedVarianceRef(column(rows, j), w, ddof), v, 1e-14, "ddof=%d j=%d", ddof, j)
		}
	}

	// Population weighted variance agrees with gonum's frequency-weighted
	// form, which divides by Σw.
	got, err := stats.WeightedVariance(vecs(t, rows), w, stats.WithDDOF(0))
	require.NoError(t, err)
	for j := range 3 {
		x := column(rows, j)
		mu := stat.Mean(x, w)
		var acc, sw float64
		for i := range x {
			acc += w[i] * (x[i] - mu) * (x[i] - mu)
			sw += w[i]
		}
		v, _ := got.At(j)
		require.InDelta(t, acc/sw, v, 1e-14)
	}
}

func TestWeightedVariance_UnitWeightsMatchPlain(t *testing.T) {
	t.Parallel()

	rows := sample[complex128](6, 2, 8)
	plain, err := stats.Variance(vecs(t, rows))
	require.NoError(t, err)
	weighted, err := stats.WeightedVariance(vecs(t, rows), []float64{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)

	for j := range 2 {
		a, _ := plain.At(j)
		b, _ := weighted.At(j)
		require.InDelta(t, real(a), real(b), 1e-14)
		require.Zero(t, imag(b))
	}

	sd, err := stats.WeightedStdDev(vecs(t, rows), []float64{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	for j := range 2 {
		a, _ := plain.At(j)
		s, _ := sd.At(j)
		require.InDelta(t, math.Sqrt(real(a)), real(s), 1e-14)
	}
}

func TestWeightedVariance_Errors(t *testing.T) {
	t.Parallel()

	xs := vecs(t, [][]float64{{1}, {2}})

	// One dominant weight: Σw - Σw²/Σw = 0.
	_, err := stats.WeightedVariance(xs, []float64{0, 3})
	require.ErrorIs(t, err, stats.ErrInsufficientDOF)

	_, err = stats.WeightedVariance(xs, []float64{1, -2})
	require.ErrorIs(t, err, stats.ErrNegativeWeight)

	_, err = stats.WeightedVariance(xs, []float64{1, 1}, stats.WithDDOF(-3))
	require.ErrorIs(t, err, stats.ErrNegativeDDOF)

	dst := vecs(t, [][]float64{{-1}})[0]
	err = stats.WeightedVarianceInto(xs, []float64{1}, dst)
	require.ErrorIs(t, err, stats.ErrWeightCount)
	requireVec(t, []float64{-1}, dst, 0)

	a, err := matrix.MatFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	got, err := stats.WeightedVarianceMat([]*matrix.Mat[float64]{a, a}, []float64{1, 2})
	require.NoError(t, err)
	requireMat(t, [][]float64{{0, 0}}, got, 0)
}
