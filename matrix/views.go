// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Col returns column j as a contiguous (stride 1) vector aliasing m.
func (m *Mat[T]) Col(j int) (*Vec[T], error) {
	if err := validateMat(m); err != nil {
		return nil, fmt.Errorf("Mat.Col(%d): %w", j, err)
	}
	if err := m.buf.CheckIndex(0, j); err != nil {
		return nil, fmt.Errorf("Mat.Col(%d): %w", j, err)
	}
	return &Vec[T]{buf: strided.Buffer[T]{
		Layout: vecLayout(m.buf.Primary, 1),
		Data:   m.buf.Line(j),
	}}, nil
}

// Row returns row i as a vector with element step Stride(), aliasing m.
func (m *Mat[T]) Row(i int) (*Vec[T], error) {
	if err := validateMat(m); err != nil {
		return nil, fmt.Errorf("Mat.Row(%d): %w", i, err)
	}
	if err := m.buf.CheckIndex(i, 0); err != nil {
		return nil, fmt.Errorf("Mat.Row(%d): %w", i, err)
	}
	n, s := m.buf.Secondary, m.buf.Stride
	end := i + s*(n-1) + 1
	return &Vec[T]{buf: strided.Buffer[T]{
		Layout: vecLayout(n, s),
		Data:   m.buf.Data[i:end:end],
	}}, nil
}

// Diagonal returns the min(rows, cols) diagonal elements as a vector with
// element step Stride()+1, aliasing m.
func (m *Mat[T]) Diagonal() (*Vec[T], error) {
	if err := validateMat(m); err != nil {
		return nil, fmt.Errorf("Mat.Diagonal: %w", err)
	}
	k, s := min(m.buf.Primary, m.buf.Secondary), m.buf.Stride+1
	end := s*(k-1) + 1
	return &Vec[T]{buf: strided.Buffer[T]{
		Layout: vecLayout(k, s),
		Data:   m.buf.Data[:end:end],
	}}, nil
}

// Submatrix returns the rows×cols block whose top-left element is (i, j).
// The view keeps m's stride and aliases its storage.
//
// Non-positive extents are ErrEmpty; a block leaving m is ErrOutOfRange.
func (m *Mat[T]) Submatrix(i, j, rows, cols int) (*Mat[T], error) {
	if err := validateMat(m); err != nil {
		return nil, fmt.Errorf("Mat.Submatrix(%d,%d,%d,%d): %w", i, j, rows, cols, err)
	}
	if err := m.buf.CheckWindow(i, j, rows, cols); err != nil {
		return nil, fmt.Errorf("Mat.Submatrix(%d,%d,%d,%d): %w", i, j, rows, cols, err)
	}
	return &Mat[T]{buf: m.buf.Window(i, j, rows, cols)}, nil
}

// Lines is a lazily evaluated list of row or column views of a matrix.
// Each access constructs a fresh aliasing Vec; nothing is cached.
type Lines[T scalar.Scalar] struct {
	m    *Mat[T]
	rows bool
}

// RowViews returns the rows of m as a lazy list.
func (m *Mat[T]) RowViews() Lines[T] { return Lines[T]{m: m, rows: true} }

// ColViews returns the columns of m as a lazy list.
func (m *Mat[T]) ColViews() Lines[T] { return Lines[T]{m: m} }

// Len returns the number of views.
func (l Lines[T]) Len() int {
	if l.rows {
		return l.m.Rows()
	}
	return l.m.Cols()
}

// At returns view k.
func (l Lines[T]) At(k int) (*Vec[T], error) {
	if l.rows {
		return l.m.Row(k)
	}
	return l.m.Col(k)
}

// All iterates over (index, view) pairs.
func (l Lines[T]) All() iter.Seq2[int, *Vec[T]] {
	return func(yield func(int, *Vec[T]) bool) {
		n := l.Len()
		var k int
		for k = 0; k < n; k++ {
			v, err := l.At(k)
			if err != nil {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// DiagonalValues iterates over (k, m[k,k]) for k < min(rows, cols) by
// walking storage with step stride+1.
func (m *Mat[T]) DiagonalValues() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if m.IsEmpty() {
			return
		}
		k, s := min(m.buf.Primary, m.buf.Secondary), m.buf.Stride+1
		var d int
		for d = 0; d < k; d++ {
			if !yield(d, m.buf.Data[d*s]) {
				return
			}
		}
	}
}
