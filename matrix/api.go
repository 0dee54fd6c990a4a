// SPDX-License-Identifier: MIT
// Package matrix: constructors and facades.
//
// Purpose:
//   - Intention-revealing constructors (Zeros, Ones, Identity, Diag,
//     MatFromRows, ZerosLike) over NewMat/NewVec.
//   - Short spellings for copying between matrices.
//
// Determinism & Policy:
//   - Every constructor returns an owning, contiguous matrix (stride == rows).
//   - Validation is performed by NewMat/NewVec; facades only compose or forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Zeros returns a zero-initialized rows×cols matrix.
// Thin alias of NewMat with an intention-revealing name.
func Zeros[T scalar.Scalar](rows, cols int) (*Mat[T], error) {
	return NewMat[T](rows, cols)
}

// Ones returns a rows×cols matrix filled with 1.
func Ones[T scalar.Scalar](rows, cols int) (*Mat[T], error) {
	m, err := NewMat[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(scalar.FromFloat[T](1))
	return m, nil
}

// Identity returns I_n.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[T scalar.Scalar](n int) (*Mat[T], error) {
	m, err := NewMat[T](n, n)
	if err != nil {
		return nil, err
	}
	one := scalar.FromFloat[T](1)
	for i := 0; i < n; i++ {
		m.buf.Data[i*n+i] = one
	}
	return m, nil
}

// Diag returns the square matrix with d on its diagonal.
func Diag[T scalar.Scalar](d ...T) (*Mat[T], error) {
	n := len(d)
	m, err := NewMat[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("Diag: %w", err)
	}
	for i, v := range d {
		m.buf.Data[i*n+i] = v
	}
	return m, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T scalar.Scalar](m *Mat[T]) (*Mat[T], error) {
	return newLike[T]("ZerosLike", m)
}

// MatFromRows builds a matrix from row-major literals. All rows must have the
// same non-zero length.
func MatFromRows[T scalar.Scalar](rows [][]T) (*Mat[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("MatFromRows: %w", ErrEmpty)
	}
	r, c := len(rows), len(rows[0])
	m := &Mat[T]{buf: strided.Make[T](r, c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("MatFromRows: row %d: %w: cols %d != %d", i, ErrDimensionMismatch, len(row), c)
		}
		for j, v := range row {
			m.buf.Data[j*r+i] = v
		}
	}
	return m, nil
}

// CopyInto copies src into dst; shapes must match.
func CopyInto[T scalar.Scalar](src, dst *Mat[T]) error { return dst.CopyFrom(src) }

// CopyVecInto copies src into dst; lengths must match.
func CopyVecInto[T scalar.Scalar](src, dst *Vec[T]) error { return dst.CopyFrom(src) }
