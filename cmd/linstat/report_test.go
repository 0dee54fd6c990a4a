// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	tb := &table{names: []string{"a", "b"}, rows: [][]float64{{1, 0}, {0, 1}}}
	cfg := reportConfig{ddof: 1, weightCol: -1, maxRows: matrix.DefaultMaxRows, maxCols: matrix.DefaultMaxCols}

	r, err := buildReport(tb, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, r.n)
	require.Equal(t, []float64{0.5, 0.5}, r.mean.ToSlice())
	require.Equal(t, [][]float64{{0.5, -0.5}, {-0.5, 0.5}}, r.cov.ToRows())
	require.Equal(t, []string{"-", "-"}, r.skew)

	var out bytes.Buffer
	require.NoError(t, r.write(&out, cfg))
	s := out.String()
	require.Contains(t, s, "observations: 2")
	require.Contains(t, s, "covariance:")
	require.Contains(t, s, "Mat[float64 2×2]")
}

func TestBuildReport_Weighted(t *testing.T) {
	t.Parallel()

	tb := &table{
		names: []string{"w", "x"},
		rows:  [][]float64{{1, 2}, {3, 6}, {0, 100}},
	}
	cfg := reportConfig{ddof: 0, weightCol: 0, maxRows: 4, maxCols: 4}

	r, err := buildReport(tb, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, r.names)
	require.Equal(t, []float64{5}, r.mean.ToSlice())
	require.Equal(t, []float64{3}, r.variance.ToSlice())

	_, err = buildReport(tb, reportConfig{weightCol: 5, maxRows: 4, maxCols: 4})
	require.Error(t, err)
}

func TestSplitWeights(t *testing.T) {
	t.Parallel()

	tb := &table{names: []string{"a", "w", "b"}, rows: [][]float64{{1, 9, 2}}}
	out, w, err := splitWeights(tb, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, out.names)
	require.Equal(t, [][]float64{{1, 2}}, out.rows)
	require.Equal(t, []float64{9}, w)
	require.Equal(t, []string{"a", "w", "b"}, tb.names)

	_, _, err = splitWeights(&table{names: []string{"w"}, rows: [][]float64{{1}}}, 0)
	require.Error(t, err)
}

func TestParseCommaAndValidate(t *testing.T) {
	t.Parallel()

	r, err := parseComma(";")
	require.NoError(t, err)
	require.Equal(t, ';', r)
	r, err = parseComma("\t")
	require.NoError(t, err)
	require.Equal(t, '\t', r)

	for _, bad := range []string{"", ",,", "\n", `"`} {
		_, err = parseComma(bad)
		require.Error(t, err, "%q", bad)
	}

	require.NoError(t, validate(reportConfig{ddof: 1, maxRows: 2, maxCols: 2}, 1))
	require.Error(t, validate(reportConfig{ddof: 1, maxRows: 2, maxCols: 2}, 0))
	require.Error(t, validate(reportConfig{ddof: -1, maxRows: 2, maxCols: 2}, 1))
	require.Error(t, validate(reportConfig{maxRows: 1, maxCols: 2}, 1))
}
