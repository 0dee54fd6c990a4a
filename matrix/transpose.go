// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

func transposeInto[T scalar.Scalar](op string, x, dst *Mat[T], conj bool) error {
	if err := validateMat(x); err != nil {
		return matrixErrorf(op, err)
	}
	if err := validateMat(dst); err != nil {
		return matrixErrorf(op, err)
	}
	if dst.buf.Primary != x.buf.Secondary {
		return mismatchf(op, "rows", dst.buf.Primary, x.buf.Secondary)
	}
	if dst.buf.Secondary != x.buf.Primary {
		return mismatchf(op, "cols", dst.buf.Secondary, x.buf.Primary)
	}
	if x == dst || strided.Relate(x.buf, dst.buf) == strided.Identical {
		return matrixErrorf(op, ErrInPlaceTranspose)
	}
	src, release := stage(x.buf, dst.buf)
	defer release()
	elementwise.Transpose(src, dst.buf, conj)
	return nil
}

// TransposeInto writes xᵀ into dst, which must be cols×rows of x. dst may not
// be x itself; for square matrices use TransposeInPlace.
func TransposeInto[T scalar.Scalar](x, dst *Mat[T]) error {
	return transposeInto(opTranspose, x, dst, false)
}

// ConjTransposeInto writes the conjugate transpose xᴴ into dst. For real
// kinds it equals TransposeInto.
func ConjTransposeInto[T scalar.Scalar](x, dst *Mat[T]) error {
	return transposeInto(opConjTranspose, x, dst, true)
}

// Transpose returns xᵀ as a new contiguous matrix.
func Transpose[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dst := &Mat[T]{buf: strided.Make[T](x.buf.Secondary, x.buf.Primary)}
	elementwise.Transpose(x.buf, dst.buf, false)
	return dst, nil
}

// ConjTranspose returns xᴴ as a new contiguous matrix.
func ConjTranspose[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	dst := &Mat[T]{buf: strided.Make[T](x.buf.Secondary, x.buf.Primary)}
	elementwise.Transpose(x.buf, dst.buf, true)
	return dst, nil
}

// TransposeInPlace transposes a square matrix by swapping across the
// diagonal.
func (m *Mat[T]) TransposeInPlace() error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("TransposeInPlace: %w", err)
	}
	elementwise.TransposeSquareInPlace(m.buf, false)
	return nil
}

// ConjTransposeInPlace replaces a square matrix with its conjugate
// transpose.
func (m *Mat[T]) ConjTransposeInPlace() error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("ConjTransposeInPlace: %w", err)
	}
	elementwise.TransposeSquareInPlace(m.buf, true)
	return nil
}
