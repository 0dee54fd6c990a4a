// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linalg/internal/logger"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

var (
	errNoRows      = errors.New("linstat: no observations")
	errColumnCount = errors.New("linstat: column count mismatch")
)

// table is a set of observations: one row per observation, one column per
// component.
type table struct {
	names []string
	rows  [][]float64
}

func (t *table) cols() int {
	if len(t.names) > 0 {
		return len(t.names)
	}
	if len(t.rows) > 0 {
		return len(t.rows[0])
	}
	return 0
}

// decompress sniffs r for a gzip or zstd frame and returns a reader over
// the plain bytes. close releases the decoder.
func decompress(r io.Reader) (plain io.Reader, close func(), err error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}

// readTable parses delimited numeric rows from r. With header set the first
// record names the columns; otherwise columns are named c0, c1, ...
func readTable(r io.Reader, comma rune, header bool) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	t := &table{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if header && t.names == nil {
			t.names = make([]string, len(rec))
			for i, name := range rec {
				t.names[i] = strings.TrimSpace(name)
			}
			continue
		}
		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, col := cr.FieldPos(i)
				return nil, fmt.Errorf("line %d, column %d: %w", line, col, err)
			}
			row[i] = v
		}
		t.rows = append(t.rows, row)
	}
	if len(t.rows) == 0 {
		return nil, errNoRows
	}
	if t.names == nil {
		t.names = make([]string, len(t.rows[0]))
		for i := range t.names {
			t.names[i] = "c" + strconv.Itoa(i)
		}
	}
	if len(t.names) != len(t.rows[0]) {
		return nil, fmt.Errorf("%w: header has %d, rows have %d", errColumnCount, len(t.names), len(t.rows[0]))
	}
	return t, nil
}

// loadFile reads one table from path; "-" is standard input.
func loadFile(path string, comma rune, header bool) (*table, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	plain, release, err := decompress(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer release()

	t, err := readTable(plain, comma, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Sugar().Debugf("%s: %d rows, %d columns", path, len(t.rows), t.cols())
	return t, nil
}

// loadAll reads paths with at most workers files in flight and concatenates
// the tables in argument order. Column counts must agree; names come from
// the first file.
func loadAll(ctx context.Context, paths []string, workers int, comma rune, header bool) (*table, error) {
	tables := make([]*table, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := loadFile(path, comma, header)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &table{names: tables[0].names}
	for i, t := range tables {
		if t.cols() != out.cols() {
			return nil, fmt.Errorf("%s: %w: %d != %d", paths[i], errColumnCount, t.cols(), out.cols())
		}
		out.rows = append(out.rows, t.rows...)
	}
	return out, nil
}
