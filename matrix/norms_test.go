// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestVecNorms(t *testing.T) {
	t.Parallel()

	vals := []float64{3, -4, 0, 12}
	v := MustVec(t, vals...)

	l1, err := v.L1Norm()
	require.NoError(t, err)
	require.Equal(t, floats.Norm(vals, 1), l1)

	l2, err := v.L2Norm()
	require.NoError(t, err)
	require.InDelta(t, 13.0, l2, 1e-12)

	inf, err := v.InfinityNorm()
	require.NoError(t, err)
	require.Equal(t, 12.0, inf)

	p3, err := v.PNorm(3)
	require.NoError(t, err)
	require.InDelta(t, floats.Norm(vals, 3), p3, 1e-12)

	pInf, err := v.PNorm(math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, 12.0, pInf)

	_, err = v.PNorm(0.5)
	require.ErrorIs(t, err, matrix.ErrBadNormOrder)
	_, err = v.PNorm(math.NaN())
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestVecNorms_ComplexStrided(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]complex128{{3 + 4i, 0, 1i}, {9, 9, 9}})
	row, err := m.Row(0)
	require.NoError(t, err)

	l1, err := row.L1Norm()
	require.NoError(t, err)
	require.InDelta(t, 6.0, l1, 1e-12)

	l2, err := row.L2Norm()
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(26), l2, 1e-12)

	inf, err := row.InfinityNorm()
	require.NoError(t, err)
	require.InDelta(t, 5.0, inf, 1e-12)
}

func TestDotInner(t *testing.T) {
	t.Parallel()

	x := MustVec[complex128](t, 1+1i, 2)
	y := MustVec[complex128](t, 1i, 1-1i)

	d, err := matrix.Dot(x, y)
	require.NoError(t, err)
	require.Equal(t, (1+1i)*1i+2*(1-1i), d)

	in, err := matrix.Inner(x, y)
	require.NoError(t, err)
	require.Equal(t, (1-1i)*1i+2*(1-1i), in)

	_, err = matrix.Dot(x, MustVec[complex128](t, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatNorms_AgainstGonum(t *testing.T) {
	t.Parallel()

	rows := randRows[float64](5, 3, 21)
	x := paddedCopy(t, MatFromRows(t, rows), 2)
	flat := make([]float64, 0, 15)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	g := mat.NewDense(5, 3, flat)

	fro, err := x.FrobeniusNorm()
	require.NoError(t, err)
	require.InDelta(t, mat.Norm(g, 2), fro, 1e-12)

	l1, err := x.L1Norm()
	require.NoError(t, err)
	require.InDelta(t, mat.Norm(g, 1), l1, 1e-12)

	inf, err := x.InfinityNorm()
	require.NoError(t, err)
	require.InDelta(t, mat.Norm(g, math.Inf(1)), inf, 1e-12)

	var svd mat.SVD
	require.True(t, svd.Factorize(g, mat.SVDNone))
	l2, err := x.L2Norm()
	require.NoError(t, err)
	require.InDelta(t, svd.Values(nil)[0], l2, 1e-10)

	// L2Norm must leave its input untouched.
	RequireMatClose(t, rows, x, 0)
}

func TestMatSum(t *testing.T) {
	t.Parallel()

	x := MatFromRows(t, [][]float32{{1, 2}, {3, 4}})
	s, err := x.Sum()
	require.NoError(t, err)
	require.Equal(t, float32(10), s)

	rs, err := matrix.RowSums(x)
	require.NoError(t, err)
	require.Equal(t, []float32{3, 7}, rs.ToSlice())

	cs, err := matrix.ColSums(x)
	require.NoError(t, err)
	require.Equal(t, []float32{4, 6}, cs.ToSlice())
}
