// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering. This file
// defines:
//   - FormatOption (functional options over an unexported formatOptions),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic output: no global state, no locale dependence.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxRows is the number of rows printed before interior rows are
	// elided with a ⋮ line.
	DefaultMaxRows = 12

	// DefaultMaxCols is the number of columns printed before interior columns
	// are elided with a … column.
	DefaultMaxCols = 8

	// DefaultWidth is the character budget of one rendered line. Columns are
	// dropped from the middle until the table fits.
	DefaultWidth = 100

	// DefaultPrecision is the number of significant digits ('g' format).
	// -1 selects the shortest representation that round-trips.
	DefaultPrecision = 6
)

// Panic messages (stable for tests).
const (
	panicMaxRowsInvalid   = "matrix: WithMaxRows requires n >= 2"
	panicMaxColsInvalid   = "matrix: WithMaxCols requires n >= 2"
	panicWidthInvalid     = "matrix: WithWidth requires w >= 16"
	panicPrecisionInvalid = "matrix: WithPrecision requires p >= -1"
)

// FormatOption configures Format and String.
type FormatOption func(*formatOptions)

type formatOptions struct {
	maxRows   int
	maxCols   int
	width     int
	precision int
}

// WithMaxRows sets how many rows are printed before elision (head and tail
// halves are kept). Panics when n < 2.
func WithMaxRows(n int) FormatOption {
	if n < 2 {
		panic(panicMaxRowsInvalid)
	}
	return func(o *formatOptions) { o.maxRows = n }
}

// WithMaxCols sets how many columns are printed before elision. Panics when
// n < 2.
func WithMaxCols(n int) FormatOption {
	if n < 2 {
		panic(panicMaxColsInvalid)
	}
	return func(o *formatOptions) { o.maxCols = n }
}

// WithWidth sets the line budget in characters. Panics when w < 16.
func WithWidth(w int) FormatOption {
	if w < 16 {
		panic(panicWidthInvalid)
	}
	return func(o *formatOptions) { o.width = w }
}

// WithPrecision sets the number of significant digits; -1 prints the
// shortest exact representation. Panics when p < -1.
func WithPrecision(p int) FormatOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}
	return func(o *formatOptions) { o.precision = p }
}

// gatherFormatOptions applies setters on top of the defaults, last writer wins.
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{
		maxRows:   DefaultMaxRows,
		maxCols:   DefaultMaxCols,
		width:     DefaultWidth,
		precision: DefaultPrecision,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
