// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/stats"
)

// reportConfig selects the estimator and the rendering limits.
type reportConfig struct {
	ddof      int
	weightCol int // -1 when unweighted
	maxRows   int
	maxCols   int
}

// report holds every statistic printed for one table.
type report struct {
	names    []string
	n        int
	mean     *matrix.Vec[float64]
	variance *matrix.Vec[float64]
	stddev   *matrix.Vec[float64]
	skew     []string
	kurt     []string
	cov      *matrix.Mat[float64]
	corr     *matrix.Mat[float64]
}

// splitWeights removes column col from t and returns it as weights.
func splitWeights(t *table, col int) (*table, []float64, error) {
	if col < 0 {
		return t, nil, nil
	}
	if col >= t.cols() {
		return nil, nil, fmt.Errorf("weight column %d out of range [0,%d)", col, t.cols())
	}
	if t.cols() == 1 {
		return nil, nil, errors.New("weight column leaves no data columns")
	}
	out := &table{
		names: append(append([]string(nil), t.names[:col]...), t.names[col+1:]...),
		rows:  make([][]float64, len(t.rows)),
	}
	w := make([]float64, len(t.rows))
	for i, row := range t.rows {
		w[i] = row[col]
		out.rows[i] = append(append(make([]float64, 0, len(row)-1), row[:col]...), row[col+1:]...)
	}
	return out, w, nil
}

// moment formats a higher moment or a dash when the sample does not
// support it.
func moment(v float64, err error) string {
	if err != nil {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func buildReport(t *table, cfg reportConfig) (*report, error) {
	t, w, err := splitWeights(t, cfg.weightCol)
	if err != nil {
		return nil, err
	}
	xs := make([]*matrix.Vec[float64], len(t.rows))
	for i, row := range t.rows {
		if xs[i], err = matrix.VecFrom(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	r := &report{names: t.names, n: len(xs)}
	ddof := stats.WithDDOF(cfg.ddof)
	if w == nil {
		if r.mean, err = stats.Mean(xs); err != nil {
			return nil, err
		}
		if r.variance, err = stats.Variance(xs, ddof); err != nil {
			return nil, err
		}
		if r.stddev, err = stats.StdDev(xs, ddof); err != nil {
			return nil, err
		}
		if r.cov, err = stats.Covariance(xs, ddof); err != nil {
			return nil, err
		}
	} else {
		if r.mean, err = stats.WeightedMean(xs, w); err != nil {
			return nil, err
		}
		if r.variance, err = stats.WeightedVariance(xs, w, ddof); err != nil {
			return nil, err
		}
		if r.stddev, err = stats.WeightedStdDev(xs, w, ddof); err != nil {
			return nil, err
		}
		if r.cov, err = stats.WeightedCovariance(xs, w, ddof); err != nil {
			return nil, err
		}
	}
	if r.corr, err = stats.Correlation(xs); err != nil {
		return nil, err
	}

	col := make([]float64, len(t.rows))
	for j := range t.names {
		for i, row := range t.rows {
			col[i] = row[j]
		}
		r.skew = append(r.skew, moment(stats.Skewness(col, true)))
		r.kurt = append(r.kurt, moment(stats.Kurtosis(col, true)))
	}
	return r, nil
}

func (r *report) write(out io.Writer, cfg reportConfig) error {
	if _, err := fmt.Fprintf(out, "observations: %d\n\n", r.n); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tmean\tstddev\tvariance\tskewness\tkurtosis\t")
	for j, name := range r.names {
		mean, _ := r.mean.At(j)
		sd, _ := r.stddev.At(j)
		v, _ := r.variance.At(j)
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%s\t%s\t\n", name, mean, sd, v, r.skew[j], r.kurt[j])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	opts := []matrix.FormatOption{matrix.WithMaxRows(cfg.maxRows), matrix.WithMaxCols(cfg.maxCols)}
	_, err := fmt.Fprintf(out, "\ncovariance:\n%s\n\ncorrelation:\n%s\n",
		matrix.Format(r.cov, opts...), matrix.Format(r.corr, opts...))
	return err
}
