// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise arithmetic over Mat and Vec: Add, Sub, MulElem, DivElem,
//     Scale, DivScalar, Negate, Conjugate, Map.
//   - Three spellings per operation: XInto (caller-owned destination),
//     X (allocating), and the receiver form m.XInPlace.
//
// Determinism & Performance:
//   - Loops run column-major (outer columns, inner rows); contiguous operands
//     are processed as one flat span by the elementwise package.
//   - A destination that partially overlaps a source is fed from a pooled
//     staging copy; identical storage needs no staging.
//
// Note:
//   - Every check runs before the destination is touched.

package matrix

import (
	"github.com/katalvlaran/linalg/elementwise"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

type (
	binaryKernel[T scalar.Scalar] func(x, y, dst strided.Buffer[T])
	unaryKernel[T scalar.Scalar]  func(x, dst strided.Buffer[T])
)

// applyBinary runs k on pre-validated buffers, staging sources that
// partially overlap dst.
func applyBinary[T scalar.Scalar](x, y, dst strided.Buffer[T], k binaryKernel[T]) {
	xs, releaseX := stage(x, dst)
	defer releaseX()
	ys, releaseY := stage(y, dst)
	defer releaseY()
	k(xs, ys, dst)
}

func applyUnary[T scalar.Scalar](x, dst strided.Buffer[T], k unaryKernel[T]) {
	xs, release := stage(x, dst)
	defer release()
	k(xs, dst)
}

func matBinaryInto[T scalar.Scalar](op string, x, y, dst *Mat[T], k binaryKernel[T]) error {
	if err := validateMatTriple(op, x, y, dst); err != nil {
		return err
	}
	applyBinary(x.buf, y.buf, dst.buf, k)
	return nil
}

func matUnaryInto[T scalar.Scalar](op string, x, dst *Mat[T], k unaryKernel[T]) error {
	if err := validateMatPair(op, x, dst); err != nil {
		return err
	}
	applyUnary(x.buf, dst.buf, k)
	return nil
}

// newLike allocates a zeroed matrix shaped like x, which must be usable.
func newLike[T, U scalar.Scalar](op string, x *Mat[U]) (*Mat[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(op, err)
	}
	return &Mat[T]{buf: strided.Make[T](x.buf.Primary, x.buf.Secondary)}, nil
}

func newVecLike[T, U scalar.Scalar](op string, x *Vec[U]) (*Vec[T], error) {
	if err := validateVec(x); err != nil {
		return nil, matrixErrorf(op, err)
	}
	return &Vec[T]{buf: strided.Make[T](1, x.buf.Secondary)}, nil
}

func matBinary[T scalar.Scalar](op string, x, y *Mat[T], k binaryKernel[T]) (*Mat[T], error) {
	dst, err := newLike[T](op, x)
	if err != nil {
		return nil, err
	}
	if err = matBinaryInto(op, x, y, dst, k); err != nil {
		return nil, err
	}
	return dst, nil
}

func matUnary[T scalar.Scalar](op string, x *Mat[T], k unaryKernel[T]) (*Mat[T], error) {
	dst, err := newLike[T](op, x)
	if err != nil {
		return nil, err
	}
	applyUnary(x.buf, dst.buf, k)
	return dst, nil
}

func scaleKernel[T scalar.Scalar](alpha T) unaryKernel[T] {
	return func(x, dst strided.Buffer[T]) { elementwise.Scale(x, alpha, dst) }
}

func divScalarKernel[T scalar.Scalar](alpha T) unaryKernel[T] {
	return func(x, dst strided.Buffer[T]) { elementwise.DivScalar(x, alpha, dst) }
}

// AddInto computes dst = x + y. Any operand may be dst itself.
func AddInto[T scalar.Scalar](x, y, dst *Mat[T]) error {
	return matBinaryInto(opAdd, x, y, dst, elementwise.Add[T])
}

// SubInto computes dst = x - y.
func SubInto[T scalar.Scalar](x, y, dst *Mat[T]) error {
	return matBinaryInto(opSub, x, y, dst, elementwise.Sub[T])
}

// MulElemInto computes the Hadamard product dst = x ∘ y.
func MulElemInto[T scalar.Scalar](x, y, dst *Mat[T]) error {
	return matBinaryInto(opMulElem, x, y, dst, elementwise.MulElem[T])
}

// DivElemInto computes dst = x ⊘ y. Division by zero follows IEEE-754.
func DivElemInto[T scalar.Scalar](x, y, dst *Mat[T]) error {
	return matBinaryInto(opDivElem, x, y, dst, elementwise.DivElem[T])
}

// ScaleInto computes dst = alpha·x.
func ScaleInto[T scalar.Scalar](x *Mat[T], alpha T, dst *Mat[T]) error {
	return matUnaryInto(opScale, x, dst, scaleKernel(alpha))
}

// DivScalarInto computes dst = x / alpha.
func DivScalarInto[T scalar.Scalar](x *Mat[T], alpha T, dst *Mat[T]) error {
	return matUnaryInto(opDivScalar, x, dst, divScalarKernel(alpha))
}

// NegateInto computes dst = -x.
func NegateInto[T scalar.Scalar](x, dst *Mat[T]) error {
	return matUnaryInto(opNegate, x, dst, elementwise.Negate[T])
}

// ConjugateInto computes dst = conj(x); for real kinds it copies.
func ConjugateInto[T scalar.Scalar](x, dst *Mat[T]) error {
	return matUnaryInto(opConjugate, x, dst, elementwise.Conj[T])
}

// MapInto computes dst[i,j] = f(x[i,j]). T and U may differ, which makes
// MapInto the explicit conversion between element kinds.
func MapInto[T, U scalar.Scalar](x *Mat[T], f func(T) U, dst *Mat[U]) error {
	if err := validateMatPair(opMap, x, dst); err != nil {
		return err
	}
	src, release := stage(x.buf, dst.buf)
	defer release()
	elementwise.Map(src, f, dst.buf)
	return nil
}

// Add returns x + y in a new matrix.
func Add[T scalar.Scalar](x, y *Mat[T]) (*Mat[T], error) {
	return matBinary(opAdd, x, y, elementwise.Add[T])
}

// Sub returns x - y in a new matrix.
func Sub[T scalar.Scalar](x, y *Mat[T]) (*Mat[T], error) {
	return matBinary(opSub, x, y, elementwise.Sub[T])
}

// MulElem returns x ∘ y in a new matrix.
func MulElem[T scalar.Scalar](x, y *Mat[T]) (*Mat[T], error) {
	return matBinary(opMulElem, x, y, elementwise.MulElem[T])
}

// DivElem returns x ⊘ y in a new matrix.
func DivElem[T scalar.Scalar](x, y *Mat[T]) (*Mat[T], error) {
	return matBinary(opDivElem, x, y, elementwise.DivElem[T])
}

// Scale returns alpha·x in a new matrix.
func Scale[T scalar.Scalar](x *Mat[T], alpha T) (*Mat[T], error) {
	return matUnary(opScale, x, scaleKernel(alpha))
}

// DivScalar returns x / alpha in a new matrix.
func DivScalar[T scalar.Scalar](x *Mat[T], alpha T) (*Mat[T], error) {
	return matUnary(opDivScalar, x, divScalarKernel(alpha))
}

// Negate returns -x in a new matrix.
func Negate[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	return matUnary(opNegate, x, elementwise.Negate[T])
}

// Conjugate returns conj(x) in a new matrix.
func Conjugate[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	return matUnary(opConjugate, x, elementwise.Conj[T])
}

// Map returns f applied to every element of x.
func Map[T, U scalar.Scalar](x *Mat[T], f func(T) U) (*Mat[U], error) {
	dst, err := newLike[U](opMap, x)
	if err != nil {
		return nil, err
	}
	elementwise.Map(x.buf, f, dst.buf)
	return dst, nil
}

// AddInPlace sets m = m + y.
func (m *Mat[T]) AddInPlace(y *Mat[T]) error { return AddInto(m, y, m) }

// SubInPlace sets m = m - y.
func (m *Mat[T]) SubInPlace(y *Mat[T]) error { return SubInto(m, y, m) }

// MulElemInPlace sets m = m ∘ y.
func (m *Mat[T]) MulElemInPlace(y *Mat[T]) error { return MulElemInto(m, y, m) }

// DivElemInPlace sets m = m ⊘ y.
func (m *Mat[T]) DivElemInPlace(y *Mat[T]) error { return DivElemInto(m, y, m) }

// ScaleInPlace sets m = alpha·m.
func (m *Mat[T]) ScaleInPlace(alpha T) error { return ScaleInto(m, alpha, m) }

// DivScalarInPlace sets m = m / alpha.
func (m *Mat[T]) DivScalarInPlace(alpha T) error { return DivScalarInto(m, alpha, m) }

// NegateInPlace sets m = -m.
func (m *Mat[T]) NegateInPlace() error { return NegateInto(m, m) }

// ConjugateInPlace sets m = conj(m).
func (m *Mat[T]) ConjugateInPlace() error { return ConjugateInto(m, m) }

// ---- vectors ----

func vecBinaryInto[T scalar.Scalar](op string, x, y, dst *Vec[T], k binaryKernel[T]) error {
	if err := validateVecTriple(op, x, y, dst); err != nil {
		return err
	}
	applyBinary(x.buf, y.buf, dst.buf, k)
	return nil
}

func vecUnaryInto[T scalar.Scalar](op string, x, dst *Vec[T], k unaryKernel[T]) error {
	if err := validateVecPair(op, x, dst); err != nil {
		return err
	}
	applyUnary(x.buf, dst.buf, k)
	return nil
}

func vecBinary[T scalar.Scalar](op string, x, y *Vec[T], k binaryKernel[T]) (*Vec[T], error) {
	dst, err := newVecLike[T](op, x)
	if err != nil {
		return nil, err
	}
	if err = vecBinaryInto(op, x, y, dst, k); err != nil {
		return nil, err
	}
	return dst, nil
}

func vecUnary[T scalar.Scalar](op string, x *Vec[T], k unaryKernel[T]) (*Vec[T], error) {
	dst, err := newVecLike[T](op, x)
	if err != nil {
		return nil, err
	}
	k(x.buf, dst.buf)
	return dst, nil
}

// AddVecInto computes dst = x + y.
func AddVecInto[T scalar.Scalar](x, y, dst *Vec[T]) error {
	return vecBinaryInto(opAdd, x, y, dst, elementwise.Add[T])
}

// SubVecInto computes dst = x - y.
func SubVecInto[T scalar.Scalar](x, y, dst *Vec[T]) error {
	return vecBinaryInto(opSub, x, y, dst, elementwise.Sub[T])
}

// MulElemVecInto computes dst = x ∘ y.
func MulElemVecInto[T scalar.Scalar](x, y, dst *Vec[T]) error {
	return vecBinaryInto(opMulElem, x, y, dst, elementwise.MulElem[T])
}

// DivElemVecInto computes dst = x ⊘ y.
func DivElemVecInto[T scalar.Scalar](x, y, dst *Vec[T]) error {
	return vecBinaryInto(opDivElem, x, y, dst, elementwise.DivElem[T])
}

// ScaleVecInto computes dst = alpha·x.
func ScaleVecInto[T scalar.Scalar](x *Vec[T], alpha T, dst *Vec[T]) error {
	return vecUnaryInto(opScale, x, dst, scaleKernel(alpha))
}

// DivScalarVecInto computes dst = x / alpha.
func DivScalarVecInto[T scalar.Scalar](x *Vec[T], alpha T, dst *Vec[T]) error {
	return vecUnaryInto(opDivScalar, x, dst, divScalarKernel(alpha))
}

// NegateVecInto computes dst = -x.
func NegateVecInto[T scalar.Scalar](x, dst *Vec[T]) error {
	return vecUnaryInto(opNegate, x, dst, elementwise.Negate[T])
}

// ConjugateVecInto computes dst = conj(x).
func ConjugateVecInto[T scalar.Scalar](x, dst *Vec[T]) error {
	return vecUnaryInto(opConjugate, x, dst, elementwise.Conj[T])
}

// MapVecInto computes dst[i] = f(x[i]).
func MapVecInto[T, U scalar.Scalar](x *Vec[T], f func(T) U, dst *Vec[U]) error {
	if err := validateVecPair(opMap, x, dst); err != nil {
		return err
	}
	src, release := stage(x.buf, dst.buf)
	defer release()
	elementwise.Map(src, f, dst.buf)
	return nil
}

// AddVec returns x + y in a new vector.
func AddVec[T scalar.Scalar](x, y *Vec[T]) (*Vec[T], error) {
	return vecBinary(opAdd, x, y, elementwise.Add[T])
}

// SubVec returns x - y in a new vector.
func SubVec[T scalar.Scalar](x, y *Vec[T]) (*Vec[T], error) {
	return vecBinary(opSub, x, y, elementwise.Sub[T])
}

// MulElemVec returns x ∘ y in a new vector.
func MulElemVec[T scalar.Scalar](x, y *Vec[T]) (*Vec[T], error) {
	return vecBinary(opMulElem, x, y, elementwise.MulElem[T])
}

// DivElemVec returns x ⊘ y in a new vector.
func DivElemVec[T scalar.Scalar](x, y *Vec[T]) (*Vec[T], error) {
	return vecBinary(opDivElem, x, y, elementwise.DivElem[T])
}

// ScaleVec returns alpha·x in a new vector.
func ScaleVec[T scalar.Scalar](x *Vec[T], alpha T) (*Vec[T], error) {
	return vecUnary(opScale, x, scaleKernel(alpha))
}

// DivScalarVec returns x / alpha in a new vector.
func DivScalarVec[T scalar.Scalar](x *Vec[T], alpha T) (*Vec[T], error) {
	return vecUnary(opDivScalar, x, divScalarKernel(alpha))
}

// NegateVec returns -x in a new vector.
func NegateVec[T scalar.Scalar](x *Vec[T]) (*Vec[T], error) {
	return vecUnary(opNegate, x, elementwise.Negate[T])
}

// ConjugateVec returns conj(x) in a new vector.
func ConjugateVec[T scalar.Scalar](x *Vec[T]) (*Vec[T], error) {
	return vecUnary(opConjugate, x, elementwise.Conj[T])
}

// MapVec returns f applied to every element of x.
func MapVec[T, U scalar.Scalar](x *Vec[T], f func(T) U) (*Vec[U], error) {
	dst, err := newVecLike[U](opMap, x)
	if err != nil {
		return nil, err
	}
	elementwise.Map(x.buf, f, dst.buf)
	return dst, nil
}

// AddInPlace sets v = v + y.
func (v *Vec[T]) AddInPlace(y *Vec[T]) error { return AddVecInto(v, y, v) }

// SubInPlace sets v = v - y.
func (v *Vec[T]) SubInPlace(y *Vec[T]) error { return SubVecInto(v, y, v) }

// MulElemInPlace sets v = v ∘ y.
func (v *Vec[T]) MulElemInPlace(y *Vec[T]) error { return MulElemVecInto(v, y, v) }

// DivElemInPlace sets v = v ⊘ y.
func (v *Vec[T]) DivElemInPlace(y *Vec[T]) error { return DivElemVecInto(v, y, v) }

// ScaleInPlace sets v = alpha·v.
func (v *Vec[T]) ScaleInPlace(alpha T) error { return ScaleVecInto(v, alpha, v) }

// DivScalarInPlace sets v = v / alpha.
func (v *Vec[T]) DivScalarInPlace(alpha T) error { return DivScalarVecInto(v, alpha, v) }

// NegateInPlace sets v = -v.
func (v *Vec[T]) NegateInPlace() error { return NegateVecInto(v, v) }

// ConjugateInPlace sets v = conj(v).
func (v *Vec[T]) ConjugateInPlace() error { return ConjugateVecInto(v, v) }
