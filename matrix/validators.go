// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide the single source of truth for operand checks: nil, empty, shape,
//    squareness, symmetry.
//  - Keep facades minimal by delegating guard logic here.
//
// Ordering (fail-fast, no destination writes before all checks pass):
//  - nil → empty for every operand (inputs first, destination last),
//  - then shapes: rows before cols, inputs against the first input, then the
//    destination against the inputs.
//
// Note:
//  - Validators return sentinel errors wrapped with a tag; callers match with errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
	"github.com/katalvlaran/linalg/strided"
)

// validateMat reports ErrNilMatrix or ErrEmpty for unusable operands.
func validateMat[T scalar.Scalar](m *Mat[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.buf.IsEmpty() {
		return ErrEmpty
	}
	return nil
}

// validateVec reports ErrNilMatrix or ErrEmpty for unusable operands.
func validateVec[T scalar.Scalar](v *Vec[T]) error {
	if v == nil {
		return ErrNilMatrix
	}
	if v.buf.IsEmpty() {
		return ErrEmpty
	}
	return nil
}

// ValidateMat returns nil for a non-nil, non-empty matrix.
func ValidateMat[T scalar.Scalar](m *Mat[T]) error {
	if err := validateMat(m); err != nil {
		return fmt.Errorf("ValidateMat: %w", err)
	}
	return nil
}

// ValidateVec returns nil for a non-nil, non-empty vector.
func ValidateVec[T scalar.Scalar](v *Vec[T]) error {
	if err := validateVec(v); err != nil {
		return fmt.Errorf("ValidateVec: %w", err)
	}
	return nil
}

// ValidateSameShape checks that a and b are usable and have equal extents.
// The error names the first mismatching dimension.
func ValidateSameShape[T, U scalar.Scalar](a *Mat[T], b *Mat[U]) error {
	if err := validateMat(a); err != nil {
		return fmt.Errorf("ValidateSameShape: %w", err)
	}
	if err := validateMat(b); err != nil {
		return fmt.Errorf("ValidateSameShape: %w", err)
	}
	return sameShape("ValidateSameShape", a.buf.Layout, b.buf.Layout, "rows", "cols")
}

// ValidateSquare checks that m is usable and square.
func ValidateSquare[T scalar.Scalar](m *Mat[T]) error {
	if err := validateMat(m); err != nil {
		return fmt.Errorf("ValidateSquare: %w", err)
	}
	if m.buf.Primary != m.buf.Secondary {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.buf.Primary, m.buf.Secondary, ErrNonSquare)
	}
	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j] - conj(m[j,i])| <= tol
// for every pair; for complex kinds this is the Hermitian property and the
// diagonal imaginary parts must be within tol of zero.
func ValidateSymmetric[T scalar.Scalar](m *Mat[T], tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("ValidateSymmetric: %w", err)
	}
	n, s := m.buf.Primary, m.buf.Stride
	var i, j int
	for j = 0; j < n; j++ {
		for i = j; i < n; i++ {
			if scalar.Abs(m.buf.Data[j*s+i]-scalar.Conj(m.buf.Data[i*s+j])) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}
	return nil
}

// sameShape compares two layouts, naming the mismatching dimension.
func sameShape(op string, got, want strided.Layout, primary, secondary string) error {
	if got.Primary != want.Primary {
		return mismatchf(op, primary, got.Primary, want.Primary)
	}
	if got.Secondary != want.Secondary {
		return mismatchf(op, secondary, got.Secondary, want.Secondary)
	}
	return nil
}

// validateMatPair checks an input and a destination of the same shape.
func validateMatPair[T, U scalar.Scalar](op string, x *Mat[T], dst *Mat[U]) error {
	if err := validateMat(x); err != nil {
		return matrixErrorf(op, err)
	}
	if err := validateMat(dst); err != nil {
		return matrixErrorf(op, err)
	}
	return sameShape(op, dst.buf.Layout, x.buf.Layout, "rows", "cols")
}

// validateMatTriple checks two inputs and a destination of the same shape.
func validateMatTriple[T scalar.Scalar](op string, x, y, dst *Mat[T]) error {
	for _, m := range [...]*Mat[T]{x, y, dst} {
		if err := validateMat(m); err != nil {
			return matrixErrorf(op, err)
		}
	}
	if err := sameShape(op, y.buf.Layout, x.buf.Layout, "rows", "cols"); err != nil {
		return err
	}
	return sameShape(op, dst.buf.Layout, x.buf.Layout, "rows", "cols")
}

// validateVecPair checks an input and a destination of the same length.
func validateVecPair[T, U scalar.Scalar](op string, x *Vec[T], dst *Vec[U]) error {
	if err := validateVec(x); err != nil {
		return matrixErrorf(op, err)
	}
	if err := validateVec(dst); err != nil {
		return matrixErrorf(op, err)
	}
	return sameShape(op, dst.buf.Layout, x.buf.Layout, "len", "len")
}

// validateVecTriple checks two inputs and a destination of the same length.
func validateVecTriple[T scalar.Scalar](op string, x, y, dst *Vec[T]) error {
	for _, v := range [...]*Vec[T]{x, y, dst} {
		if err := validateVec(v); err != nil {
			return matrixErrorf(op, err)
		}
	}
	if err := sameShape(op, y.buf.Layout, x.buf.Layout, "len", "len"); err != nil {
		return err
	}
	return sameShape(op, dst.buf.Layout, x.buf.Layout, "len", "len")
}

// stage returns src unchanged when it is disjoint from or identical to dst,
// and otherwise a pooled contiguous copy, so that element-by-element writes
// into dst cannot clobber unread source elements.
func stage[T scalar.Scalar, U any](src strided.Buffer[T], dst strided.Buffer[U]) (strided.Buffer[T], func()) {
	if strided.Relate(src, dst) != strided.Partial {
		return src, func() {}
	}
	data, release := scratch.Get[T](src.Len())
	tmp := strided.Buffer[T]{
		Layout: strided.Layout{Primary: src.Primary, Secondary: src.Secondary, Stride: src.Primary},
		Data:   data,
	}
	tmp.CopyFrom(src)
	return tmp, release
}
