// SPDX-License-Identifier: MIT
// Package: interop
//
// Purpose:
//   - Copy between column-major strided Mat/Vec and gonum's row-major dense
//     types. Any mat.Matrix (Dense, SymDense, TriDense, views) is accepted on
//     the way in.

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// rowMajor flattens m row by row.
func rowMajor[T scalar.Scalar](m *matrix.Mat[T]) []T {
	r, c := m.Dims()
	b := m.Strided()
	out := make([]T, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out = append(out, b.At(i, j))
		}
	}
	return out
}

// DenseOf returns a *mat.Dense holding a copy of m.
func DenseOf(m *matrix.Mat[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateMat(m); err != nil {
		return nil, interopErrorf(opDenseOf, err)
	}
	r, c := m.Dims()
	return mat.NewDense(r, c, rowMajor(m)), nil
}

// FromMatrix copies any gonum matrix into a new Mat.
func FromMatrix(a mat.Matrix) (*matrix.Mat[float64], error) {
	if a == nil {
		return nil, interopErrorf(opFromMatrix, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := matrix.NewMat[float64](r, c)
	if err != nil {
		return nil, interopErrorf(opFromMatrix, err)
	}
	b := m.Strided()
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			b.Set(i, j, a.At(i, j))
		}
	}
	return m, nil
}

// VecDenseOf returns a *mat.VecDense holding a copy of v.
func VecDenseOf(v *matrix.Vec[float64]) (*mat.VecDense, error) {
	if err := matrix.ValidateVec(v); err != nil {
		return nil, interopErrorf(opVecDenseOf, err)
	}
	return mat.NewVecDense(v.Len(), v.ToSlice()), nil
}

// FromVector copies a gonum vector into a new Vec.
func FromVector(a mat.Vector) (*matrix.Vec[float64], error) {
	if a == nil {
		return nil, interopErrorf(opFromVector, matrix.ErrNilMatrix)
	}
	n := a.Len()
	data := make([]float64, n)
	for i := range data {
		data[i] = a.AtVec(i)
	}
	v, err := matrix.VecFrom(data)
	if err != nil {
		return nil, interopErrorf(opFromVector, err)
	}
	return v, nil
}

// CDenseOf returns a *mat.CDense holding a copy of m.
func CDenseOf(m *matrix.Mat[complex128]) (*mat.CDense, error) {
	if err := matrix.ValidateMat(m); err != nil {
		return nil, interopErrorf(opCDenseOf, err)
	}
	r, c := m.Dims()
	return mat.NewCDense(r, c, rowMajor(m)), nil
}

// FromCMatrix copies any gonum complex matrix into a new Mat.
func FromCMatrix(a mat.CMatrix) (*matrix.Mat[complex128], error) {
	if a == nil {
		return nil, interopErrorf(opFromCMat, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := matrix.NewMat[complex128](r, c)
	if err != nil {
		return nil, interopErrorf(opFromCMat, err)
	}
	b := m.Strided()
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			b.Set(i, j, a.At(i, j))
		}
	}
	return m, nil
}
