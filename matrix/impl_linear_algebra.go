// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Products (GEMM, GEMV) and factorization facades (inverse, determinant,
//     rank, SVD, pseudo-inverse, condition number, Cholesky, symmetric eigen).
//   - Square-only helpers: Trace, Symmetrize.
//
// Determinism & Performance:
//   - Transposed operands are never materialized; the op flag travels to the
//     kernel. Factorizations run on pooled contiguous copies, so inputs are
//     never modified and destinations are written only on success.
//
// Note:
//   - Kernel failures surface as ErrFactorization and still match the kernel
//     sentinel (kernel.ErrSingular, kernel.ErrNoConvergence, ...).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/linalg/matrix/kernel"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/scratch"
	"github.com/katalvlaran/linalg/strided"
)

// Op selects how an operand enters a product.
type Op uint8

const (
	NoTrans   Op = iota // A
	Trans               // Aᵀ
	ConjTrans           // Aᴴ; equal to Trans for real kinds
)

// String returns "N", "T" or "C".
func (o Op) String() string {
	switch o {
	case NoTrans:
		return "N"
	case Trans:
		return "T"
	case ConjTrans:
		return "C"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

func (o Op) blas() blas.Transpose {
	switch o {
	case Trans:
		return blas.Trans
	case ConjTrans:
		return blas.ConjTrans
	}
	return blas.NoTrans
}

// opDims returns the extents of op(m).
func opDims[T scalar.Scalar](o Op, m *Mat[T]) (int, int) {
	if o == NoTrans {
		return m.buf.Primary, m.buf.Secondary
	}
	return m.buf.Secondary, m.buf.Primary
}

func checkOp(op string, o Op) error {
	if o > ConjTrans {
		return fmt.Errorf("%s: %v: %w", op, o, ErrInvalidArgument)
	}
	return nil
}

// detach returns src itself when it shares no storage with dst, otherwise a
// pooled contiguous copy. Unlike stage, identical storage is copied too,
// because BLAS products read operands after writing the output.
func detach[T scalar.Scalar](src, dst strided.Buffer[T]) (strided.Buffer[T], func()) {
	if strided.Relate(src, dst) == strided.Disjoint {
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

// MulInto computes dst = op(a)·op(b).
//
// Implementation:
//   - Stage 1: nil/empty checks on a, b, dst; then inner extents of op(a) and
//     op(b), then dst against the product shape.
//   - Stage 2: operands sharing storage with dst are copied to scratch.
//   - Stage 3: a single GEMM call with beta = 0.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrDimensionMismatch ("inner", "rows", "cols").
//
// Complexity:
//   - Time O(m·n·k). Space O(1) unless an operand aliases dst.
func MulInto[T scalar.Scalar](opA Op, a *Mat[T], opB Op, b *Mat[T], dst *Mat[T]) error {
	if err := checkOp(opMul, opA); err != nil {
		return err
	}
	if err := checkOp(opMul, opB); err != nil {
		return err
	}
	for _, m := range [...]*Mat[T]{a, b, dst} {
		if err := validateMat(m); err != nil {
			return matrixErrorf(opMul, err)
		}
	}
	m, k := opDims(opA, a)
	kb, n := opDims(opB, b)
	if kb != k {
		return mismatchf(opMul, "inner", kb, k)
	}
	if dst.buf.Primary != m {
		return mismatchf(opMul, "rows", dst.buf.Primary, m)
	}
	if dst.buf.Secondary != n {
		return mismatchf(opMul, "cols", dst.buf.Secondary, n)
	}
	ab, releaseA := detach(a.buf, dst.buf)
	defer releaseA()
	bb, releaseB := detach(b.buf, dst.buf)
	defer releaseB()

	var zero T
	kernel.Gemm(opA.blas(), opB.blas(), m, n, k,
		scalar.FromFloat[T](1), ab.Data, ab.Stride, bb.Data, bb.Stride,
		zero, dst.buf.Data, dst.buf.Stride)
	return nil
}

// MulOp returns op(a)·op(b) in a new matrix.
func MulOp[T scalar.Scalar](opA Op, a *Mat[T], opB Op, b *Mat[T]) (*Mat[T], error) {
	if err := validateMat(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMat(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	m, _ := opDims(opA, a)
	_, n := opDims(opB, b)
	dst := &Mat[T]{buf: strided.Make[T](m, n)}
	if err := MulInto(opA, a, opB, b, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Mul returns a·b.
func Mul[T scalar.Scalar](a, b *Mat[T]) (*Mat[T], error) {
	return MulOp(NoTrans, a, NoTrans, b)
}

// MulVecInto computes dst = op(a)·x.
func MulVecInto[T scalar.Scalar](opA Op, a *Mat[T], x, dst *Vec[T]) error {
	if err := checkOp(opMulVec, opA); err != nil {
		return err
	}
	if err := validateMat(a); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	if err := validateVec(x); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	if err := validateVec(dst); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	m, n := opDims(opA, a)
	if x.buf.Secondary != n {
		return mismatchf(opMulVec, "len", x.buf.Secondary, n)
	}
	if dst.buf.Secondary != m {
		return mismatchf(opMulVec, "len", dst.buf.Secondary, m)
	}
	ab, releaseA := detach(a.buf, dst.buf)
	defer releaseA()
	xb, releaseX := detach(x.buf, dst.buf)
	defer releaseX()

	var zero T
	// Gemv takes the stored extents of a, not those of op(a).
	kernel.Gemv(opA.blas(), a.buf.Primary, a.buf.Secondary,
		scalar.FromFloat[T](1), ab.Data, ab.Stride, xb.Data, xb.Stride,
		zero, dst.buf.Data, dst.buf.Stride)
	return nil
}

// MulVecOp returns op(a)·x in a new vector.
func MulVecOp[T scalar.Scalar](opA Op, a *Mat[T], x *Vec[T]) (*Vec[T], error) {
	if err := validateMat(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	m, _ := opDims(opA, a)
	dst := &Vec[T]{buf: strided.Make[T](1, m)}
	if err := MulVecInto(opA, a, x, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// MulVec returns a·x.
func MulVec[T scalar.Scalar](a *Mat[T], x *Vec[T]) (*Vec[T], error) {
	return MulVecOp(NoTrans, a, x)
}

// copyContiguous writes the contiguous column-major r×c block src (leading
// dimension r) into dst.
func copyContiguous[T scalar.Scalar](src []T, dst *Mat[T]) {
	dst.buf.CopyFrom(strided.Buffer[T]{
		Layout: strided.Layout{Primary: dst.buf.Primary, Secondary: dst.buf.Secondary, Stride: dst.buf.Primary},
		Data:   src[:dst.buf.Len()],
	})
}

// InverseInto writes x⁻¹ into dst, which may be x itself.
//
// Implementation:
//   - Stage 1: x must be square; dst must match x.
//   - Stage 2: LU with partial pivoting on a pooled copy, a reciprocal
//     condition estimate, then the inverse from the factors.
//   - Stage 3: on success the copy is written into dst.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch.
//   - ErrFactorization wrapping kernel.ErrSingular or kernel.ErrIllConditioned.
//
// Complexity:
//   - Time O(n³). Space O(n²) pooled.
func InverseInto[T scalar.Scalar](x, dst *Mat[T]) error {
	if err := ValidateSquare(x); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := validateMatPair(opInverse, x, dst); err != nil {
		return err
	}
	n := x.buf.Primary
	a, release := scratchCopy(x)
	defer release()
	if err := kernel.Inverse(n, a, n); err != nil {
		return factorizationErrorf(opInverse, err)
	}
	copyContiguous(a, dst)
	return nil
}

// Inverse returns x⁻¹ in a new matrix.
func Inverse[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	dst, err := newLike[T](opInverse, x)
	if err != nil {
		return nil, err
	}
	if err = InverseInto(x, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Determinant returns det(x) from an LU factorization. A singular x yields 0
// without an error.
func Determinant[T scalar.Scalar](x *Mat[T]) (T, error) {
	var zero T
	if err := ValidateSquare(x); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	n := x.buf.Primary
	a, release := scratchCopy(x)
	defer release()
	return kernel.Det(n, a, n), nil
}

// autoTolerance returns eps(T)·max(m, n)·σmax.
func autoTolerance[T scalar.Scalar](m, n int, sigmaMax float64) float64 {
	return scalar.Epsilon[T]() * float64(max(m, n)) * sigmaMax
}

func checkTolerance(op string, tol float64) error {
	if tol < 0 || math.IsInf(tol, 0) {
		return fmt.Errorf("%s: tol=%g: %w", op, tol, ErrBadTolerance)
	}
	return nil
}

// Rank returns the number of singular values of x strictly greater than
// tol. A NaN tol selects eps(T)·max(rows, cols)·σmax.
func Rank[T scalar.Scalar](x *Mat[T], tol float64) (int, error) {
	if err := validateMat(x); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if err := checkTolerance(opRank, tol); err != nil {
		return 0, err
	}
	s, release, err := singularValues(opRank, x)
	if err != nil {
		return 0, err
	}
	defer release()
	if math.IsNaN(tol) {
		tol = autoTolerance[T](x.buf.Primary, x.buf.Secondary, s[0])
	}
	var rank int
	for _, sv := range s {
		if sv > tol {
			rank++
		}
	}
	return rank, nil
}

// SingularValues returns the min(rows, cols) singular values of x in
// descending order.
func SingularValues[T scalar.Scalar](x *Mat[T]) ([]float64, error) {
	s, release, err := singularValues(opSingularValues, x)
	if err != nil {
		return nil, err
	}
	defer release()
	return append([]float64(nil), s...), nil
}

// ConditionNumber returns σmax/σmin in the 2-norm. A rank-deficient x
// yields +Inf.
func ConditionNumber[T scalar.Scalar](x *Mat[T]) (float64, error) {
	s, release, err := singularValues(opCondition, x)
	if err != nil {
		return 0, err
	}
	defer release()
	lo := s[len(s)-1]
	if lo == 0 {
		return math.Inf(1), nil
	}
	return s[0] / lo, nil
}

// PseudoInverseInto writes the Moore-Penrose pseudo-inverse of the m×n
// matrix x into the n×m matrix dst. Singular values at or below
// eps(T)·max(m, n)·σmax are treated as zero.
func PseudoInverseInto[T scalar.Scalar](x, dst *Mat[T]) error {
	if err := validateMat(x); err != nil {
		return matrixErrorf(opPseudoInverse, err)
	}
	if err := validateMat(dst); err != nil {
		return matrixErrorf(opPseudoInverse, err)
	}
	m, n := x.buf.Primary, x.buf.Secondary
	if dst.buf.Primary != n {
		return mismatchf(opPseudoInverse, "rows", dst.buf.Primary, n)
	}
	if dst.buf.Secondary != m {
		return mismatchf(opPseudoInverse, "cols", dst.buf.Secondary, m)
	}
	a, releaseA := scratchCopy(x)
	defer releaseA()
	d, releaseD := scratch.Get[T](n * m)
	defer releaseD()
	if err := kernel.PseudoInverse(m, n, a, m, math.NaN(), d, n); err != nil {
		return factorizationErrorf(opPseudoInverse, err)
	}
	copyContiguous(d, dst)
	return nil
}

// PseudoInverse returns the n×m pseudo-inverse of the m×n matrix x.
func PseudoInverse[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	dst := &Mat[T]{buf: strided.Make[T](x.buf.Secondary, x.buf.Primary)}
	if err := PseudoInverseInto(x, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Cholesky returns the lower-triangular L with x = L·Lᴴ. Only the lower
// triangle of x is read.
func Cholesky[T scalar.Scalar](x *Mat[T]) (*Mat[T], error) {
	if err := ValidateSquare(x); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	l := x.Clone()
	n := l.buf.Primary
	if err := kernel.Cholesky(n, l.buf.Data, n); err != nil {
		return nil, factorizationErrorf(opCholesky, err)
	}
	return l, nil
}

// EigenSym returns the ascending eigenvalues of the real symmetric matrix x
// and the matching orthonormal eigenvectors, one per column. x must be
// symmetric within a tolerance scaled by its largest element; complex
// matrices are rejected with ErrUnsupportedKind.
func EigenSym[T scalar.Scalar](x *Mat[T]) ([]float64, *Mat[T], error) {
	if err := ValidateSquare(x); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	if scalar.IsComplex[T]() {
		return nil, nil, matrixErrorf(opEigenSym, ErrUnsupportedKind)
	}
	big, _ := x.maxAbs()
	tol := 64 * scalar.Epsilon[T]() * math.Max(1, big)
	if err := ValidateSymmetric(x, tol); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	vecs := x.Clone()
	n := vecs.buf.Primary
	w := make([]float64, n)
	if err := kernel.EigenSym(n, vecs.buf.Data, n, w); err != nil {
		return nil, nil, factorizationErrorf(opEigenSym, err)
	}
	return w, vecs, nil
}

func (m *Mat[T]) maxAbs() (float64, error) {
	if err := validateMat(m); err != nil {
		return 0, err
	}
	var best float64
	for j := 0; j < m.buf.Secondary; j++ {
		for _, v := range m.buf.Line(j) {
			best = math.Max(best, scalar.Abs(v))
		}
	}
	return best, nil
}

// Trace returns Σ x[i,i] of a square matrix.
func Trace[T scalar.Scalar](x *Mat[T]) (T, error) {
	var acc T
	if err := ValidateSquare(x); err != nil {
		return acc, matrixErrorf(opTrace, err)
	}
	for _, v := range x.DiagonalValues() {
		acc += v
	}
	return acc, nil
}

// Symmetrize replaces the square matrix m with (m + mᴴ)/2, which is exactly
// symmetric (Hermitian for complex kinds).
func (m *Mat[T]) Symmetrize() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSymmetrize, err)
	}
	n, s := m.buf.Primary, m.buf.Stride
	d := m.buf.Data
	half := scalar.FromFloat[T](0.5)
	var i, j int
	for j = 0; j < n; j++ {
		d[j*s+j] = scalar.FromFloat[T](scalar.Re(d[j*s+j]))
		for i = j + 1; i < n; i++ {
			avg := half * (d[j*s+i] + scalar.Conj(d[i*s+j]))
			d[j*s+i] = avg
			d[i*s+j] = scalar.Conj(avg)
		}
	}
	return nil
}

// RowSums returns the vector of Σ_j x[i,j].
func RowSums[T scalar.Scalar](x *Mat[T]) (*Vec[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := &Vec[T]{buf: strided.Make[T](1, x.buf.Primary)}
	var j int
	for j = 0; j < x.buf.Secondary; j++ {
		for i, v := range x.buf.Line(j) {
			out.buf.Data[i] += v
		}
	}
	return out, nil
}

// ColSums returns the vector of Σ_i x[i,j].
func ColSums[T scalar.Scalar](x *Mat[T]) (*Vec[T], error) {
	if err := validateMat(x); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := &Vec[T]{buf: strided.Make[T](1, x.buf.Secondary)}
	var j int
	for j = 0; j < x.buf.Secondary; j++ {
		var acc T
		for _, v := range x.buf.Line(j) {
			acc += v
		}
		out.buf.Data[j] = acc
	}
	return out, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol·|b|.
func EqualApprox[T scalar.Scalar](a, b *Mat[T], rtol, atol float64) (bool, error) {
	if err := validateMat(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := validateMat(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for _, tol := range [...]float64{rtol, atol} {
		if math.IsNaN(tol) {
			return false, fmt.Errorf("%s: tol=NaN: %w", opEqual, ErrBadTolerance)
		}
		if err := checkTolerance(opEqual, tol); err != nil {
			return false, err
		}
	}
	if !a.buf.SameShape(b.buf.Layout) {
		return false, nil
	}
	var i, j int
	for j = 0; j < a.buf.Secondary; j++ {
		la, lb := a.buf.Line(j), b.buf.Line(j)
		for i = range la {
			if !(scalar.Abs(la[i]-lb[i]) <= atol+rtol*scalar.Abs(lb[i])) {
				return false, nil
			}
		}
	}
	return true, nil
}
