// SPDX-License-Identifier: MIT

// Command linstat prints descriptive statistics of numeric tables.
//
// Usage:
//
//	linstat [flags] file...
//
// Each file holds one observation per line with one numeric column per
// component; "-" reads standard input. gzip and zstd input is detected from
// the leading bytes. Tables from several files are concatenated.
//
// Examples:
//
//	linstat -header samples.csv
//	linstat -comma ';' -ddof 0 a.csv.gz b.csv.zst
//	linstat -header -weights 0 weighted.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linalg/internal/logger"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/stats"
)

const envLogLevel = "LINSTAT_LOG_LEVEL"

func main() {
	level := flag.String("level", "warn", "log level (debug, info, warn, error); "+envLogLevel+" overrides")
	ddof := flag.Int("ddof", stats.DefaultDDOF, "delta degrees of freedom for variance and covariance")
	weights := flag.Int("weights", -1, "0-based column holding observation weights (-1 for none)")
	workers := flag.Int("workers", 4, "files read concurrently")
	comma := flag.String("comma", ",", "field separator (one character)")
	header := flag.Bool("header", false, "first line names the columns")
	maxRows := flag.Int("maxrows", matrix.DefaultMaxRows, "matrix rows printed before eliding")
	maxCols := flag.Int("maxcols", matrix.DefaultMaxCols, "matrix columns printed before eliding")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: linstat [flags] file...\n\n")
		fmt.Fprintf(os.Stderr, "Prints mean, spread, higher moments, covariance and correlation\n")
		fmt.Fprintf(os.Stderr, "of the numeric columns of the given tables.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if v, ok := os.LookupEnv(envLogLevel); ok {
		*level = v
	}
	zl := logger.New(logger.Level(*level), zapcore.Lock(os.Stderr))
	logger.Set(zl)

	cfg := reportConfig{ddof: *ddof, weightCol: *weights, maxRows: *maxRows, maxCols: *maxCols}
	sep, err := parseComma(*comma)
	if err == nil {
		err = validate(cfg, flag.NArg())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Args(), *workers, sep, *header, cfg); err != nil {
		zl.Error("linstat failed", zap.Error(err))
		_ = zl.Sync()
		stop()
		os.Exit(1)
	}
	_ = zl.Sync()
}

func parseComma(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid -comma %q", s)
	}
	return r, nil
}

// validate checks flag values that would otherwise panic or fail late.
func validate(cfg reportConfig, files int) error {
	switch {
	case files == 0:
		return fmt.Errorf("no input files")
	case cfg.ddof < 0:
		return fmt.Errorf("-ddof must be >= 0")
	case cfg.maxRows < 2 || cfg.maxCols < 2:
		return fmt.Errorf("-maxrows and -maxcols must be >= 2")
	}
	return nil
}

func run(ctx context.Context, paths []string, workers int, comma rune, header bool, cfg reportConfig) error {
	t, err := loadAll(ctx, paths, workers, comma, header)
	if err != nil {
		return err
	}
	logger.Sugar().Infof("loaded %d observations of %d columns from %d files", len(t.rows), t.cols(), len(paths))

	r, err := buildReport(t, cfg)
	if err != nil {
		return err
	}
	return r.write(os.Stdout, cfg)
}
