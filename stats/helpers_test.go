// SPDX-License-Identifier: MIT
// Package stats_test contains shared fixtures for the reduction tests.

package stats_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// vecs turns row literals into contiguous vectors.
func vecs[T scalar.Scalar](tb testing.TB, rows [][]T) []*matrix.Vec[T] {
	tb.Helper()
	out := make([]*matrix.Vec[T], len(rows))
	for i, r := range rows {
		v, err := matrix.VecFrom(r)
		require.NoError(tb, err)
		out[i] = v
	}
	return out
}

// rowViews returns the rows of a matrix built from rows, as strided views.
func rowViews[T scalar.Scalar](tb testing.TB, rows [][]T) []*matrix.Vec[T] {
	tb.Helper()
	m, err := matrix.MatFromRows(rows)
	require.NoError(tb, err)
	out := make([]*matrix.Vec[T], len(rows))
	for i := range rows {
		out[i], err = m.Row(i)
		require.NoError(tb, err)
	}
	return out
}

func requireVec[T scalar.Scalar](tb testing.TB, want []T, got *matrix.Vec[T], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, len(want), got.Len())
	for i, v := range got.All() {
		require.LessOrEqualf(tb, scalar.Abs(v-want[i]), tol, "[%d]: got %v want %v", i, v, want[i])
	}
}

func requireMat[T scalar.Scalar](tb testing.TB, want [][]T, got *matrix.Mat[T], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	r, c := got.Dims()
	require.Equal(tb, len(want), r)
	for i := 0; i < r; i++ {
		require.Equal(tb, len(want[i]), c)
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.LessOrEqualf(tb, scalar.Abs(v-want[i][j]), tol, "(%d,%d): got %v want %v", i, j, v, want[i][j])
		}
	}
}

// sample returns count rows of length n with values in [-1, 1) from a
// fixed seed; complex kinds get a random imaginary part as well.
func sample[T scalar.Scalar](count, n int, seed int64) [][]T {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]T, count)
	for i := range out {
		out[i] = make([]T, n)
		for j := range out[i] {
			re := 2*rng.Float64() - 1
			if scalar.IsComplex[T]() {
				out[i][j] = scalar.FromComplex[T](complex(re, 2*rng.Float64()-1))
				continue
			}
			out[i][j] = scalar.FromFloat[T](re)
		}
	}
	return out
}

// column extracts component j of every row.
func column[T scalar.Scalar](rows [][]T, j int) []T {
	out := make([]T, len(rows))
	for i := range rows {
		out[i] = rows[i][j]
	}
	return out
}
