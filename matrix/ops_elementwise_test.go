// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAddSub_AllKinds(t *testing.T) {
	t.Parallel()

	t.Run("float32", func(t *testing.T) {
		a := MatFromRows(t, [][]float32{{1, 2}, {3, 4}})
		b := MatFromRows(t, [][]float32{{0.5, -2}, {1, 1}})
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		RequireMatClose(t, [][]float32{{1.5, 0}, {4, 5}}, sum, 0)
		diff, err := matrix.Sub(a, b)
		require.NoError(t, err)
		RequireMatClose(t, [][]float32{{0.5, 4}, {2, 3}}, diff, 0)
	})

	t.Run("float64 padded", func(t *testing.T) {
		a := paddedCopy(t, RandMat[float64](t, 5, 4, 1), 2)
		b := RandMat[float64](t, 5, 4, 2)
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			for j := 0; j < 4; j++ {
				x, _ := a.At(i, j)
				y, _ := b.At(i, j)
				s, _ := sum.At(i, j)
				require.Equal(t, x+y, s)
			}
		}
	})

	t.Run("complex128", func(t *testing.T) {
		a := MatFromRows(t, [][]complex128{{1 + 1i, 2}, {3i, 4 - 1i}})
		b := MatFromRows(t, [][]complex128{{1, 1i}, {-3i, 1}})
		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		RequireMatClose(t, [][]complex128{{2 + 1i, 2 + 1i}, {0, 5 - 1i}}, sum, 0)
	})
}

func TestAdditiveIdentityAndInverse(t *testing.T) {
	t.Parallel()

	x := RandMat[complex128](t, 4, 3, 7)
	neg, err := matrix.Negate(x)
	require.NoError(t, err)
	zero, err := matrix.Add(x, neg)
	require.NoError(t, err)
	RequireMatClose(t, make2D[complex128](4, 3), zero, 0)

	z, err := matrix.ZerosLike(x)
	require.NoError(t, err)
	same, err := matrix.Add(x, z)
	require.NoError(t, err)
	RequireMatClose(t, x.ToRows(), same, 0)
}

func make2D[T any](r, c int) [][]T {
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
	}
	return out
}

func TestElementwise_ScalarOps(t *testing.T) {
	t.Parallel()

	x := MatFromRows(t, [][]float64{{1, -2}, {4, 8}})

	s, err := matrix.Scale(x, 0.5)
	require.NoError(t, err)
	RequireMatClose(t, [][]float64{{0.5, -1}, {2, 4}}, s, 0)

	d, err := matrix.DivScalar(x, 4)
	require.NoError(t, err)
	RequireMatClose(t, [][]float64{{0.25, -0.5}, {1, 2}}, d, 0)

	h, err := matrix.MulElem(x, x)
	require.NoError(t, err)
	RequireMatClose(t, [][]float64{{1, 4}, {16, 64}}, h, 0)

	q, err := matrix.DivElem(x, s)
	require.NoError(t, err)
	RequireMatClose(t, [][]float64{{2, 2}, {2, 2}}, q, 0)

	inf, err := matrix.DivScalar(x, 0)
	require.NoError(t, err)
	v, _ := inf.At(0, 1)
	require.True(t, math.IsInf(v, -1))
}

func TestElementwise_InPlace(t *testing.T) {
	t.Parallel()

	x := MatFromRows(t, [][]complex128{{1 + 2i, 3}, {-1i, 2}})
	y := MatFromRows(t, [][]complex128{{1, 1}, {1, 1}})

	m := x.Clone()
	require.NoError(t, m.AddInPlace(y))
	require.NoError(t, m.SubInPlace(y))
	RequireMatClose(t, x.ToRows(), m, 0)

	require.NoError(t, m.ScaleInPlace(2))
	require.NoError(t, m.DivScalarInPlace(2))
	RequireMatClose(t, x.ToRows(), m, 0)

	require.NoError(t, m.MulElemInPlace(y))
	require.NoError(t, m.DivElemInPlace(y))
	RequireMatClose(t, x.ToRows(), m, 0)

	require.NoError(t, m.ConjugateInPlace())
	RequireMatClose(t, [][]complex128{{1 - 2i, 3}, {1i, 2}}, m, 0)

	require.NoError(t, m.NegateInPlace())
	RequireMatClose(t, [][]complex128{{-1 + 2i, -3}, {-1i, -2}}, m, 0)

	// Same operand as both inputs and destination.
	require.NoError(t, matrix.AddInto(m, m, m))
	RequireMatClose(t, [][]complex128{{-2 + 4i, -6}, {-2i, -4}}, m, 0)
}

func TestConjugate_RoundTrip(t *testing.T) {
	t.Parallel()

	x := RandMat[complex128](t, 3, 5, 11)
	c, err := matrix.Conjugate(x)
	require.NoError(t, err)
	cc, err := matrix.Conjugate(c)
	require.NoError(t, err)
	RequireMatClose(t, x.ToRows(), cc, 0)

	v, _ := x.At(2, 4)
	w, _ := c.At(2, 4)
	require.Equal(t, cmplx.Conj(v), w)

	// Real conjugate is a copy.
	r := RandMat[float64](t, 2, 2, 3)
	rc, err := matrix.Conjugate(r)
	require.NoError(t, err)
	RequireMatClose(t, r.ToRows(), rc, 0)
}

func TestElementwise_Mismatch(t *testing.T) {
	t.Parallel()

	a := MustMat[float64](t, 2, 3)
	tests := []struct {
		name string
		b    *matrix.Mat[float64]
		dim  string
	}{
		{"rows", MustMat[float64](t, 3, 3), "rows"},
		{"cols", MustMat[float64](t, 2, 2), "cols"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Add(a, tc.b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.Contains(t, err.Error(), tc.dim)
		})
	}

	// Empty precedes shape.
	var empty matrix.Mat[float64]
	err := matrix.AddInto(a, &empty, MustMat[float64](t, 5, 5))
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestElementwise_DestinationUntouchedOnError(t *testing.T) {
	t.Parallel()

	a := MatFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustMat[float64](t, 2, 3)
	dst := MatFromRows(t, [][]float64{{9, 9}, {9, 9}})
	require.Error(t, matrix.AddInto(a, b, dst))
	RequireMatClose(t, [][]float64{{9, 9}, {9, 9}}, dst, 0)
}

func TestElementwise_PartialOverlapStaged(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	want := func() [][]float64 {
		m := MatFromRows(t, rows)
		x, _ := m.Submatrix(0, 0, 3, 3)
		y, _ := m.Submatrix(1, 1, 3, 3)
		s, err := matrix.Add(x, y)
		require.NoError(t, err)
		return s.ToRows()
	}()

	m := MatFromRows(t, rows)
	x, _ := m.Submatrix(0, 0, 3, 3)
	y, _ := m.Submatrix(1, 1, 3, 3)
	dst, _ := m.Submatrix(1, 0, 3, 3)
	require.NoError(t, matrix.AddInto(x, y, dst))
	RequireMatClose(t, want, dst, 0)
}

func TestMap_ConvertsKinds(t *testing.T) {
	t.Parallel()

	x := MatFromRows(t, [][]float32{{1, 2}, {3, 4}})
	c, err := matrix.Map(x, func(v float32) complex128 { return complex(float64(v), -float64(v)) })
	require.NoError(t, err)
	RequireMatClose(t, [][]complex128{{1 - 1i, 2 - 2i}, {3 - 3i, 4 - 4i}}, c, 0)

	dst := MustMat[float64](t, 2, 2)
	require.NoError(t, matrix.MapInto(c, func(v complex128) float64 { return cmplx.Abs(v) }, dst))
	v, _ := dst.At(1, 1)
	require.InDelta(t, 4*math.Sqrt2, v, 1e-12)

	require.ErrorIs(t, matrix.MapInto(c, func(v complex128) float64 { return 0 }, MustMat[float64](t, 3, 2)),
		matrix.ErrDimensionMismatch)
}

func TestVecOps(t *testing.T) {
	t.Parallel()

	x := MustVec(t, 1.0, 2, 3)
	y := MustVec(t, 4.0, 5, 6)

	s, err := matrix.AddVec(x, y)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, s.ToSlice())

	d, err := matrix.SubVec(y, x)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, d.ToSlice())

	p, err := matrix.MulElemVec(x, y)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 10, 18}, p.ToSlice())

	q, err := matrix.DivElemVec(p, y)
	require.NoError(t, err)
	require.Equal(t, x.ToSlice(), q.ToSlice())

	sc, err := matrix.ScaleVec(x, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -4, -6}, sc.ToSlice())

	dv, err := matrix.DivScalarVec(sc, -2)
	require.NoError(t, err)
	require.Equal(t, x.ToSlice(), dv.ToSlice())

	n, err := matrix.NegateVec(x)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -2, -3}, n.ToSlice())

	m, err := matrix.MapVec(x, func(v float64) float32 { return float32(v * v) })
	require.NoError(t, err)
	require.Equal(t, []float32{1, 4, 9}, m.ToSlice())

	_, err = matrix.AddVec(x, MustVec(t, 1.0, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "len")
}

func TestVecOps_StridedInPlace(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 2, row.Stride())

	ones := MustVec[complex128](t, 1i, 1i, 1i)
	require.NoError(t, row.AddInPlace(ones))
	require.NoError(t, row.ConjugateInPlace())
	require.NoError(t, row.ScaleInPlace(2))
	RequireMatClose(t, [][]complex128{{1, 2, 3}, {8 - 2i, 10 - 2i, 12 - 2i}}, m, 0)

	require.NoError(t, row.NegateInPlace())
	require.NoError(t, row.DivScalarInPlace(-2))
	require.NoError(t, row.SubInPlace(MustVec[complex128](t, 4, 5, 6)))
	require.NoError(t, row.MulElemInPlace(MustVec[complex128](t, 1i, 1i, 1i)))
	require.NoError(t, row.DivElemInPlace(MustVec[complex128](t, 1i, 1i, 1i)))
	got := row.ToSlice()
	require.Equal(t, []complex128{-1i, -1i, -1i}, got)

	conj, err := matrix.ConjugateVec(row)
	require.NoError(t, err)
	require.Equal(t, []complex128{1i, 1i, 1i}, conj.ToSlice())
}
