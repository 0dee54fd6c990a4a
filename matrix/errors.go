// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error returned by this package matches one sentinel below and one of
// the four kinds (ErrInvalidArgument, ErrRange, ErrInsufficientData,
// ErrNumerical) under errors.Is. No operation panics on user input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix/kernel"
	"github.com/katalvlaran/linalg/strided"
)

// Error kinds, shared with the strided and stats packages.
var (
	ErrInvalidArgument  = strided.ErrInvalidArgument
	ErrRange            = strided.ErrRange
	ErrInsufficientData = strided.ErrInsufficientData
	ErrNumerical        = strided.ErrNumerical
)

// Layout errors raised while constructing matrices, vectors, and views.
var (
	// ErrEmpty is returned for zero-extent operands and view requests.
	ErrEmpty = strided.ErrEmpty

	// ErrNegativeExtent is returned for negative counts or strides.
	ErrNegativeExtent = strided.ErrNegativeExtent

	// ErrBadStride is returned when stride < rows (or < 1 for vectors).
	ErrBadStride = strided.ErrBadStride

	// ErrBadLength is returned when the backing slice length is not exactly
	// stride*(cols-1)+rows.
	ErrBadLength = strided.ErrBadLength

	// ErrOutOfRange is returned by At/Set and view constructors for indices or
	// windows outside the parent.
	ErrOutOfRange = strided.ErrOutOfRange
)

var (
	// ErrNilMatrix indicates a nil *Mat or *Vec operand or receiver.
	ErrNilMatrix = strided.NewError(ErrInvalidArgument, "matrix: nil operand")

	// ErrDimensionMismatch indicates incompatible operand shapes. Wrapped
	// messages name the dimension that disagreed.
	ErrDimensionMismatch = strided.NewError(ErrInvalidArgument, "matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = strided.NewError(ErrInvalidArgument, "matrix: matrix is not square")

	// ErrInPlaceTranspose is returned when a transpose destination is its
	// own source. Use TransposeInPlace for square matrices.
	ErrInPlaceTranspose = strided.NewError(ErrInvalidArgument, "matrix: transpose destination is the source")

	// ErrAsymmetry signals a matrix that is not symmetric (Hermitian) within
	// the requested tolerance.
	ErrAsymmetry = strided.NewError(ErrInvalidArgument, "matrix: matrix is not symmetric")

	// ErrBadTolerance is returned for negative or infinite tolerances.
	ErrBadTolerance = strided.NewError(ErrInvalidArgument, "matrix: invalid tolerance")

	// ErrBadNormOrder is returned by PNorm for p < 1 or NaN p.
	ErrBadNormOrder = strided.NewError(ErrInvalidArgument, "matrix: invalid norm order")

	// ErrFactorization is returned when the kernel reports a singular,
	// ill-conditioned, indefinite, or non-converging factorization. The
	// kernel's own sentinel is wrapped as well.
	ErrFactorization = strided.NewError(ErrNumerical, "matrix: factorization failed")

	// ErrUnsupportedKind is returned by routines that have no implementation
	// for the element kind (EigenSym on complex128).
	ErrUnsupportedKind = kernel.ErrUnsupportedKind
)

// Operation tags used in wrapped errors.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opMulElem        = "MulElem"
	opDivElem        = "DivElem"
	opScale          = "Scale"
	opDivScalar      = "DivScalar"
	opNegate         = "Negate"
	opConjugate      = "Conjugate"
	opMap            = "Map"
	opCopy           = "Copy"
	opTranspose      = "Transpose"
	opConjTranspose  = "ConjTranspose"
	opMul            = "Mul"
	opMulVec         = "MulVec"
	opInverse        = "Inverse"
	opDeterminant    = "Determinant"
	opRank           = "Rank"
	opSingularValues = "SingularValues"
	opPseudoInverse  = "PseudoInverse"
	opCondition      = "ConditionNumber"
	opCholesky       = "Cholesky"
	opEigenSym       = "EigenSym"
	opTrace          = "Trace"
	opNorm           = "Norm"
	opDot            = "Dot"
	opSymmetrize     = "Symmetrize"
	opSum            = "Sum"
	opRowSums        = "RowSums"
	opColSums        = "ColSums"
	opEqual          = "EqualApprox"
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// mismatchf reports which dimension disagreed.
func mismatchf(op, dim string, got, want int) error {
	return fmt.Errorf("%s: %w: %s %d != %d", op, ErrDimensionMismatch, dim, got, want)
}

// factorizationErrorf wraps a kernel failure so that both ErrFactorization
// and the kernel sentinel match.
func factorizationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrFactorization, err)
}
