// SPDX-License-Identifier: MIT
// Package: interop
//
// Purpose:
//   - Copy between Mat/Vec and gorgonia *tensor.Dense (row-major, 2-D for
//     matrices, 1-D for vectors).
//   - Transposed or sliced tensors are materialized before reading.

package interop

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// dtypeOf maps an element kind onto its tensor dtype.
func dtypeOf[T scalar.Scalar]() tensor.Dtype {
	switch scalar.KindOf[T]() {
	case scalar.Float32:
		return tensor.Float32
	case scalar.Float64:
		return tensor.Float64
	default:
		return tensor.Complex128
	}
}

// TensorOf returns a 2-D tensor holding a copy of m.
func TensorOf[T scalar.Scalar](m *matrix.Mat[T]) (*tensor.Dense, error) {
	if err := matrix.ValidateMat(m); err != nil {
		return nil, interopErrorf(opTensorOf, err)
	}
	r, c := m.Dims()
	return tensor.New(tensor.WithShape(r, c), tensor.WithBacking(rowMajor(m))), nil
}

// VecTensorOf returns a 1-D tensor holding a copy of v.
func VecTensorOf[T scalar.Scalar](v *matrix.Vec[T]) (*tensor.Dense, error) {
	if err := matrix.ValidateVec(v); err != nil {
		return nil, interopErrorf(opTensorOf, err)
	}
	return tensor.New(tensor.WithShape(v.Len()), tensor.WithBacking(v.ToSlice())), nil
}

// tensorData checks t's dtype and rank and returns its elements in
// row-major order.
func tensorData[T scalar.Scalar](t *tensor.Dense, rank int) ([]T, tensor.Shape, error) {
	if t == nil {
		return nil, nil, matrix.ErrNilMatrix
	}
	if want := dtypeOf[T](); t.Dtype() != want {
		return nil, nil, fmt.Errorf("%w: %v, want %v", ErrDtype, t.Dtype(), want)
	}
	shape := t.Shape()
	if shape.Dims() != rank {
		return nil, nil, fmt.Errorf("%w: %d-D, want %d-D", ErrTensorRank, shape.Dims(), rank)
	}
	src := t
	if t.IsMaterializable() {
		src = t.Materialize().(*tensor.Dense)
	}
	data, ok := src.Data().([]T)
	if !ok || len(data) < shape.TotalSize() {
		return nil, nil, fmt.Errorf("%w: backing %T", ErrDtype, src.Data())
	}
	return data[:shape.TotalSize()], shape, nil
}

// FromTensor copies a 2-D tensor with element type T into a new Mat.
func FromTensor[T scalar.Scalar](t *tensor.Dense) (*matrix.Mat[T], error) {
	data, shape, err := tensorData[T](t, 2)
	if err != nil {
		return nil, interopErrorf(opFromTensor, err)
	}
	m, err := matrix.MatFromRows(splitRows(data, shape[0], shape[1]))
	if err != nil {
		return nil, interopErrorf(opFromTensor, err)
	}
	return m, nil
}

// VecFromTensor copies a 1-D tensor with element type T into a new Vec.
func VecFromTensor[T scalar.Scalar](t *tensor.Dense) (*matrix.Vec[T], error) {
	data, _, err := tensorData[T](t, 1)
	if err != nil {
		return nil, interopErrorf(opFromTensor, err)
	}
	v, err := matrix.VecFrom(data)
	if err != nil {
		return nil, interopErrorf(opFromTensor, err)
	}
	return v, nil
}

// splitRows views a row-major slice as r rows of c elements.
func splitRows[T any](data []T, r, c int) [][]T {
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = data[i*c : (i+1)*c : (i+1)*c]
	}
	return rows
}
