// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/linalg/scalar"
)

const (
	elideRow = "⋮"
	elideCol = "…"
	cellGap  = 2
)

// formatScalar renders one element in 'g' format with the given precision.
func formatScalar[T scalar.Scalar](v T, prec int) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', prec, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', prec, 64)
	case complex128:
		return strconv.FormatComplex(x, 'g', prec, 128)
	}
	return "?"
}

// pickIndices returns the indices kept when n entries are shown with at most
// limit of them; gap is the position of the elision marker or -1.
func pickIndices(n, limit int) (idx []int, gap int) {
	if n <= limit {
		idx = make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, -1
	}
	head := (limit + 1) / 2
	tail := limit - head
	idx = make([]int, 0, limit)
	for i := 0; i < head; i++ {
		idx = append(idx, i)
	}
	for i := n - tail; i < n; i++ {
		idx = append(idx, i)
	}
	return idx, head
}

// Format renders m as an aligned table under a "Mat[kind rows×cols]" header.
// Interior rows and columns are elided beyond WithMaxRows/WithMaxCols, and
// further columns are dropped from the middle while a line would exceed
// WithWidth characters.
func Format[T scalar.Scalar](m *Mat[T], opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	kind := scalar.KindOf[T]()
	if m.IsEmpty() {
		return fmt.Sprintf("Mat[%s 0×0]", kind)
	}
	r, c := m.Dims()
	rows, rowGap := pickIndices(r, o.maxRows)

	// Render every candidate cell once; column widths follow.
	limit := min(c, o.maxCols)
	var (
		cols   []int
		colGap int
		cells  [][]string
		widths []int
	)
	for {
		cols, colGap = pickIndices(c, limit)
		cells = make([][]string, len(rows))
		widths = make([]int, len(cols))
		for ri, i := range rows {
			cells[ri] = make([]string, len(cols))
			for ci, j := range cols {
				s := formatScalar(m.buf.At(i, j), o.precision)
				cells[ri][ci] = s
				widths[ci] = max(widths[ci], utf8.RuneCountInString(s))
			}
		}
		if lineWidth(widths, colGap >= 0) <= o.width || limit <= 2 {
			break
		}
		limit--
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mat[%s %d×%d]\n", kind, r, c)
	for ri := range rows {
		if ri == rowGap {
			writeRow(&sb, elisionRow(widths), widths, colGap)
		}
		writeRow(&sb, cells[ri], widths, colGap)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func elisionRow(widths []int) []string {
	out := make([]string, len(widths))
	for i := range out {
		out[i] = elideRow
	}
	return out
}

func lineWidth(widths []int, elided bool) int {
	total := 0
	for _, w := range widths {
		total += w + cellGap
	}
	if elided {
		total += utf8.RuneCountInString(elideCol) + cellGap
	}
	return total
}

func writeRow(sb *strings.Builder, cells []string, widths []int, gap int) {
	for ci, s := range cells {
		if ci == gap {
			sb.WriteString(strings.Repeat(" ", cellGap))
			sb.WriteString(elideCol)
		}
		pad := widths[ci] - utf8.RuneCountInString(s)
		sb.WriteString(strings.Repeat(" ", cellGap+pad))
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
}

// String renders m with the default FormatOptions.
func (m *Mat[T]) String() string { return Format(m) }

// String renders v as "[a b c]" with the default precision, eliding the
// middle beyond DefaultMaxCols elements.
func (v *Vec[T]) String() string {
	if v.IsEmpty() {
		return "[]"
	}
	idx, gap := pickIndices(v.Len(), DefaultMaxCols)
	parts := make([]string, 0, len(idx)+1)
	for k, i := range idx {
		if k == gap {
			parts = append(parts, elideCol)
		}
		parts = append(parts, formatScalar(v.buf.At(0, i), DefaultPrecision))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
