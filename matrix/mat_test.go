// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewMat_ShapeInvariant(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{1, 1}, {3, 2}, {2, 5}, {7, 7}} {
		m := MustMat[float64](t, shape[0], shape[1])
		r, c := m.Dims()
		require.Equal(t, shape[0], r)
		require.Equal(t, shape[1], c)
		require.Equal(t, r, m.Stride())
		require.Len(t, m.RawData(), m.Stride()*(c-1)+r)
		require.True(t, m.IsContiguous())
	}
}

func TestNewMat_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		r, c     int
		wantErr  error
		wantKind error
	}{
		{"zero rows", 0, 3, matrix.ErrEmpty, matrix.ErrInvalidArgument},
		{"zero cols", 3, 0, matrix.ErrEmpty, matrix.ErrInvalidArgument},
		{"negative", -1, 2, matrix.ErrNegativeExtent, matrix.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewMat[float32](tc.r, tc.c)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tc.wantKind)
		})
	}
}

func TestNewMatFrom_Layout(t *testing.T) {
	t.Parallel()

	// 2×3 with stride 4: length must be 4*2+2 = 10.
	data := make([]float64, 10)
	m, err := matrix.NewMatFrom(2, 3, 4, data)
	require.NoError(t, err)
	require.False(t, m.IsContiguous())
	require.NoError(t, m.Set(1, 2, 9))
	require.Equal(t, 9.0, data[4*2+1])

	_, err = matrix.NewMatFrom(2, 3, 1, make([]float64, 4))
	require.ErrorIs(t, err, matrix.ErrBadStride)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewMatFrom(2, 3, 4, make([]float64, 11))
	require.ErrorIs(t, err, matrix.ErrBadLength)

	_, err = matrix.NewMatFrom(2, 3, 4, make([]float64, 9))
	require.ErrorIs(t, err, matrix.ErrBadLength)
}

func TestAtSet_Range(t *testing.T) {
	t.Parallel()

	m := MustMat[complex128](t, 2, 2)
	require.NoError(t, m.Set(1, 0, 3+4i))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3+4i, v)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, err, matrix.ErrRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrRange)
	}

	var nilMat *matrix.Mat[complex128]
	_, err = nilMat.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestViews_Aliasing(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	t.Run("submatrix", func(t *testing.T) {
		sub, err := m.Clone().Submatrix(1, 1, 2, 2)
		require.NoError(t, err)
		RequireMatClose(t, [][]float64{{6, 7}, {10, 11}}, sub, 0)
		require.Equal(t, 3, sub.Stride())

		parent := m.Clone()
		sub, err = parent.Submatrix(1, 2, 2, 2)
		require.NoError(t, err)
		require.NoError(t, sub.Set(1, 1, -1))
		v, _ := parent.At(2, 3)
		require.Equal(t, -1.0, v)
		require.NoError(t, parent.Set(1, 2, 42))
		v, _ = sub.At(0, 0)
		require.Equal(t, 42.0, v)
	})

	t.Run("row", func(t *testing.T) {
		parent := m.Clone()
		row, err := parent.Row(1)
		require.NoError(t, err)
		require.Equal(t, []float64{5, 6, 7, 8}, row.ToSlice())
		require.Equal(t, 3, row.Stride())
		require.NoError(t, row.Set(3, 0))
		v, _ := parent.At(1, 3)
		require.Equal(t, 0.0, v)
	})

	t.Run("col", func(t *testing.T) {
		parent := m.Clone()
		col, err := parent.Col(2)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 7, 11}, col.ToSlice())
		col.Fill(1)
		v, _ := parent.At(2, 2)
		require.Equal(t, 1.0, v)
		v, _ = parent.At(2, 3)
		require.Equal(t, 12.0, v)
	})

	t.Run("diagonal", func(t *testing.T) {
		parent := m.Clone()
		d, err := parent.Diagonal()
		require.NoError(t, err)
		require.Equal(t, []float64{1, 6, 11}, d.ToSlice())
		require.NoError(t, d.Set(2, 0))
		v, _ := parent.At(2, 2)
		require.Equal(t, 0.0, v)
	})

	t.Run("row of padded submatrix", func(t *testing.T) {
		parent := paddedCopy(t, m, 3)
		sub, err := parent.Submatrix(0, 1, 3, 3)
		require.NoError(t, err)
		row, err := sub.Row(2)
		require.NoError(t, err)
		require.Equal(t, []float64{10, 11, 12}, row.ToSlice())
	})

	t.Run("vec slice", func(t *testing.T) {
		parent := m.Clone()
		row, err := parent.Row(0)
		require.NoError(t, err)
		s, err := row.Slice(1, 2)
		require.NoError(t, err)
		require.Equal(t, []float64{2, 3}, s.ToSlice())
		require.NoError(t, s.Set(0, 20))
		v, _ := parent.At(0, 1)
		require.Equal(t, 20.0, v)
		_, err = row.Slice(3, 2)
		require.ErrorIs(t, err, matrix.ErrRange)
	})
}

func TestSubmatrix_Errors(t *testing.T) {
	t.Parallel()

	m := MustMat[float64](t, 3, 3)
	_, err := m.Submatrix(2, 0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrRange)
	_, err = m.Submatrix(-1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrRange)
	_, err = m.Submatrix(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrRange)
}

func TestLines(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	rows := m.RowViews()
	require.Equal(t, 3, rows.Len())
	var sums []float32
	for _, r := range rows.All() {
		s, err := r.Sum()
		require.NoError(t, err)
		sums = append(sums, s)
	}
	require.Equal(t, []float32{3, 7, 11}, sums)

	cols := m.ColViews()
	require.Equal(t, 2, cols.Len())
	c1, err := cols.At(1)
	require.NoError(t, err)
	require.Equal(t, []float32{2, 4, 6}, c1.ToSlice())
	_, err = cols.At(2)
	require.ErrorIs(t, err, matrix.ErrRange)

	var diag []float32
	for _, v := range m.DiagonalValues() {
		diag = append(diag, v)
	}
	require.Equal(t, []float32{1, 4}, diag)
}

func TestCopyFrom_OverlappingViews(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	src, err := m.Submatrix(0, 0, 2, 2)
	require.NoError(t, err)
	dst, err := m.Submatrix(1, 1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, dst.CopyFrom(src))
	RequireMatClose(t, [][]float64{
		{1, 2, 3},
		{4, 1, 2},
		{7, 4, 5},
	}, m, 0)

	other := MustMat[float64](t, 3, 2)
	require.True(t, errors.Is(dst.CopyFrom(other), matrix.ErrDimensionMismatch))
}

func TestZeroValue_IsEmpty(t *testing.T) {
	t.Parallel()

	var m matrix.Mat[float64]
	require.True(t, m.IsEmpty())
	_, err := matrix.Transpose(&m)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	var v matrix.Vec[float64]
	require.True(t, v.IsEmpty())
	_, err = v.L2Norm()
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.VecFrom([]float64{})
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestToRowsAndClone(t *testing.T) {
	t.Parallel()

	rows := [][]complex128{{1 + 1i, 2}, {3, 4 - 2i}}
	m := MatFromRows(t, rows)
	require.Equal(t, rows, m.ToRows())

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0))
	v, _ := m.At(0, 0)
	require.Equal(t, 1+1i, v)
}
