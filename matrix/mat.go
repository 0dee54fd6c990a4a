// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Mat is a dense column-major matrix view: element (i, j) lives at
// data[stride*j + i], with stride >= rows and
// len(data) == stride*(cols-1) + rows.
//
// Owning matrices come from NewMat and the constructors in api.go and have
// stride == rows. Views (Submatrix) keep the parent's stride and alias its
// storage; Row, Col, and Diagonal return aliasing vectors. The zero value
// is the empty matrix.
//
// Mat performs no locking; concurrent writes through views that share
// storage are the caller's responsibility.
type Mat[T scalar.Scalar] struct {
	buf strided.Buffer[T] // Primary == rows, Secondary == cols
}

// denseErrorf formats an element-access error: "Mat.<method>(i,j): <err>".
func denseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Mat.%s(%d,%d): %w", method, i, j, err)
}

// NewMat allocates a zeroed rows×cols matrix with stride == rows.
func NewMat[T scalar.Scalar](rows, cols int) (*Mat[T], error) {
	l := strided.Layout{Primary: rows, Secondary: cols, Stride: rows}
	if err := l.Validate(l.Required()); err != nil {
		return nil, fmt.Errorf("NewMat(%d,%d): %w", rows, cols, err)
	}
	return &Mat[T]{buf: strided.Make[T](rows, cols)}, nil
}

// NewMatFrom wraps column-major data as a rows×cols matrix with the given
// stride. len(data) must be exactly stride*(cols-1)+rows. No copy is made.
func NewMatFrom[T scalar.Scalar](rows, cols, stride int, data []T) (*Mat[T], error) {
	b, err := strided.Wrap(strided.Layout{Primary: rows, Secondary: cols, Stride: stride}, data)
	if err != nil {
		return nil, fmt.Errorf("NewMatFrom(%d,%d,%d): %w", rows, cols, stride, err)
	}
	return &Mat[T]{buf: b}, nil
}

// Rows returns the row count.
func (m *Mat[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.buf.Primary
}

// Cols returns the column count.
func (m *Mat[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.buf.Secondary
}

// Dims returns (rows, cols).
func (m *Mat[T]) Dims() (int, int) { return m.Rows(), m.Cols() }

// Stride returns the storage step between consecutive columns.
func (m *Mat[T]) Stride() int { return m.buf.Stride }

// IsEmpty reports whether m is nil or has a zero extent.
func (m *Mat[T]) IsEmpty() bool { return m == nil || m.buf.IsEmpty() }

// IsSquare reports rows == cols for a non-empty matrix.
func (m *Mat[T]) IsSquare() bool { return !m.IsEmpty() && m.buf.Primary == m.buf.Secondary }

// IsContiguous reports whether there is no padding between columns.
func (m *Mat[T]) IsContiguous() bool { return m.buf.IsContiguous() }

// RawData returns the backing column-major slice. It aliases m.
func (m *Mat[T]) RawData() []T { return m.buf.Data }

// Strided returns the layout descriptor and storage of m.
func (m *Mat[T]) Strided() strided.Buffer[T] {
	if m == nil {
		return strided.Buffer[T]{}
	}
	return m.buf
}

// At returns element (i, j).
func (m *Mat[T]) At(i, j int) (T, error) {
	var zero T
	if m == nil {
		return zero, denseErrorf("At", i, j, ErrNilMatrix)
	}
	if err := m.buf.CheckIndex(i, j); err != nil {
		return zero, denseErrorf("At", i, j, err)
	}
	return m.buf.Data[j*m.buf.Stride+i], nil
}

// Set assigns element (i, j).
func (m *Mat[T]) Set(i, j int, v T) error {
	if m == nil {
		return denseErrorf("Set", i, j, ErrNilMatrix)
	}
	if err := m.buf.CheckIndex(i, j); err != nil {
		return denseErrorf("Set", i, j, err)
	}
	m.buf.Data[j*m.buf.Stride+i] = v
	return nil
}

// Fill sets every element to v. Padding between columns is not touched.
func (m *Mat[T]) Fill(v T) {
	if m.IsEmpty() {
		return
	}
	m.buf.Fill(v)
}

// Clear sets every element to zero.
func (m *Mat[T]) Clear() {
	var zero T
	m.Fill(zero)
}

// Clone returns a contiguous deep copy of m.
func (m *Mat[T]) Clone() *Mat[T] {
	if m.IsEmpty() {
		return &Mat[T]{}
	}
	return &Mat[T]{buf: m.buf.Clone()}
}

// CopyFrom copies src into m. Shapes must match; overlapping storage is
// handled.
func (m *Mat[T]) CopyFrom(src *Mat[T]) error {
	if err := validateMatPair(opCopy, src, m); err != nil {
		return err
	}
	b, release := stage(src.buf, m.buf)
	defer release()
	m.buf.CopyFrom(b)
	return nil
}

// ToRows returns the elements as a row-major [][]T copy.
func (m *Mat[T]) ToRows() [][]T {
	r, c := m.Dims()
	out := make([][]T, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]T, c)
		for j = 0; j < c; j++ {
			out[i][j] = m.buf.Data[j*m.buf.Stride+i]
		}
	}
	return out
}
