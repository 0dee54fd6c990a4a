// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (row literals, seeded random fills).
//   • Compare matrices elementwise with a tolerance and readable failures.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// MustMat allocates a zeroed r×c matrix or fails the test.
func MustMat[T scalar.Scalar](tb testing.TB, r, c int) *matrix.Mat[T] {
	tb.Helper()
	m, err := matrix.NewMat[T](r, c)
	require.NoError(tb, err)
	return m
}

// MatFromRows builds a matrix from row-major literals or fails the test.
func MatFromRows[T scalar.Scalar](tb testing.TB, rows [][]T) *matrix.Mat[T] {
	tb.Helper()
	m, err := matrix.MatFromRows(rows)
	require.NoError(tb, err)
	return m
}

// MustVec builds a contiguous vector or fails the test.
func MustVec[T scalar.Scalar](tb testing.TB, vals ...T) *matrix.Vec[T] {
	tb.Helper()
	v, err := matrix.VecFrom(vals)
	require.NoError(tb, err)
	return v
}

// RequireMatClose asserts |got[i,j] - want[i][j]| <= tol for every element.
func RequireMatClose[T scalar.Scalar](tb testing.TB, want [][]T, got *matrix.Mat[T], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	r, c := got.Dims()
	require.Equal(tb, len(want), r, "rows")
	for i := 0; i < r; i++ {
		require.Equal(tb, len(want[i]), c, "cols in row %d", i)
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.LessOrEqualf(tb, scalar.Abs(v-want[i][j]), tol,
				"(%d,%d): got %v want %v", i, j, v, want[i][j])
		}
	}
}

// RequireVecClose asserts |got[i] - want[i]| <= tol for every element.
func RequireVecClose[T scalar.Scalar](tb testing.TB, want []T, got *matrix.Vec[T], tol float64) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, len(want), got.Len(), "len")
	for i, v := range got.All() {
		require.LessOrEqualf(tb, scalar.Abs(v-want[i]), tol, "[%d]: got %v want %v", i, v, want[i])
	}
}

// randRows returns an r×c row literal of values in [-1, 1) from a fixed seed.
func randRows[T scalar.Scalar](r, c int, seed int64) [][]T {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
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

// RandMat returns a seeded random r×c matrix.
func RandMat[T scalar.Scalar](tb testing.TB, r, c int, seed int64) *matrix.Mat[T] {
	tb.Helper()
	return MatFromRows(tb, randRows[T](r, c, seed))
}

// paddedCopy returns a copy of m stored with stride rows+pad, so tests can
// exercise the non-contiguous path.
func paddedCopy[T scalar.Scalar](tb testing.TB, m *matrix.Mat[T], pad int) *matrix.Mat[T] {
	tb.Helper()
	r, c := m.Dims()
	s := r + pad
	data := make([]T, s*(c-1)+r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			data[j*s+i] = v
		}
	}
	p, err := matrix.NewMatFrom(r, c, s, data)
	require.NoError(tb, err)
	require.False(tb, p.IsContiguous() && c > 1)
	return p
}
