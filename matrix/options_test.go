// SPDX-License-Identifier: MIT
package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestFormatOptions_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: WithMaxRows requires n >= 2", func() { matrix.WithMaxRows(1) })
	require.PanicsWithValue(t, "matrix: WithMaxCols requires n >= 2", func() { matrix.WithMaxCols(0) })
	require.PanicsWithValue(t, "matrix: WithWidth requires w >= 16", func() { matrix.WithWidth(15) })
	require.PanicsWithValue(t, "matrix: WithPrecision requires p >= -1", func() { matrix.WithPrecision(-2) })
	require.NotPanics(t, func() { matrix.WithPrecision(-1) })
}

func TestFormat_Small(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]float64{{1, -2.5}, {30, 4}})
	want := strings.Join([]string{
		"Mat[float64 2×2]",
		"   1  -2.5",
		"  30     4",
	}, "\n")
	require.Equal(t, want, matrix.Format(m))
	require.Equal(t, want, m.String())
}

func TestFormat_Elision(t *testing.T) {
	t.Parallel()

	m := MustMat[float32](t, 6, 6)
	out := matrix.Format(m, matrix.WithMaxRows(2), matrix.WithMaxCols(2))
	lines := strings.Split(out, "\n")
	require.Equal(t, "Mat[float32 6×6]", lines[0])
	require.Len(t, lines, 4) // header, first row, ⋮, last row
	require.Equal(t, "  0  …  0", lines[1])
	require.Equal(t, "  ⋮  …  ⋮", lines[2])
}

func TestFormat_WidthBudget(t *testing.T) {
	t.Parallel()

	m := MatFromRows(t, [][]float64{{1.123456, 2.123456, 3.123456, 4.123456, 5.123456}})
	out := matrix.Format(m, matrix.WithWidth(32), matrix.WithPrecision(7))
	for _, line := range strings.Split(out, "\n")[1:] {
		require.LessOrEqual(t, len([]rune(line)), 32, line)
		require.Contains(t, line, "…")
	}
}

func TestFormat_EmptyAndVec(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Mat[complex128 0×0]", matrix.Format(&matrix.Mat[complex128]{}))
	require.Equal(t, "[1 2 3]", MustVec(t, 1.0, 2, 3).String())
	require.Equal(t, "[(1+2i)]", MustVec(t, 1+2i).String())
	require.Equal(t, "[]", (&matrix.Vec[float64]{}).String())
}
