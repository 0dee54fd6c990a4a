// SPDX-License-Identifier: MIT

package strided

import "errors"

// Error kinds. Every sentinel error in this module unwraps to exactly one of
// these, so callers can branch on the category with errors.Is.
var (
	// ErrInvalidArgument: empty operand, shape mismatch, bad layout, negative
	// weight, non-square input to a square-only operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRange: index or window bounds outside the parent extent.
	ErrRange = errors.New("out of range")

	// ErrInsufficientData: empty sequence, non-positive effective sample
	// count, near-zero variance before a moment ratio.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNumerical: factorization failure (singular, not positive definite,
	// no convergence).
	ErrNumerical = errors.New("numerical failure")
)

// Layout errors.
var (
	// ErrEmpty is returned when a primary or secondary extent is zero.
	ErrEmpty = NewError(ErrInvalidArgument, "strided: empty extent")

	// ErrNegativeExtent is returned for a negative extent or stride.
	ErrNegativeExtent = NewError(ErrInvalidArgument, "strided: negative extent")

	// ErrBadStride is returned when the stride is smaller than the primary extent.
	ErrBadStride = NewError(ErrInvalidArgument, "strided: stride smaller than primary extent")

	// ErrBadLength is returned when the storage length does not equal
	// Stride*(Secondary-1)+Primary.
	ErrBadLength = NewError(ErrInvalidArgument, "strided: storage length does not match layout")

	// ErrOutOfRange is returned when an index or window leaves the extent.
	ErrOutOfRange = NewError(ErrRange, "strided: index out of range")
)

// kindError is a sentinel that belongs to one error kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewError returns a new sentinel error with text msg that matches kind
// under errors.Is. Use it at package level only.
func NewError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Kind returns the error kind err belongs to, or nil if it belongs to none.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidArgument, ErrRange, ErrInsufficientData, ErrNumerical} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
