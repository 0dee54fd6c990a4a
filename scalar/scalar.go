// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the set of element kinds a Vec or Mat may hold.
type Scalar interface {
	float32 | float64 | complex128
}

// Real is the subset of Scalar with an ordering.
type Real interface {
	float32 | float64
}

// Kind tags a concrete element type at runtime.
type Kind uint8

const (
	// Invalid is never returned for a Scalar instantiation.
	Invalid Kind = iota
	Float32
	Float64
	Complex128
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// Machine epsilons of the underlying real formats.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// KindOf reports the Kind of T.
func KindOf[T Scalar]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex128:
		return Complex128
	}
	return Invalid
}

// IsComplex reports whether T is a complex kind.
func IsComplex[T Scalar]() bool { return KindOf[T]() == Complex128 }

// Epsilon returns the machine epsilon of T's real component format.
func Epsilon[T Scalar]() float64 {
	if KindOf[T]() == Float32 {
		return Epsilon32
	}
	return Epsilon64
}

// FromFloat converts a float64 into T (imaginary part zero for complex T).
func FromFloat[T Scalar](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}
	return z
}

// FromComplex converts c into T. Real kinds keep only the real part.
func FromComplex[T Scalar](c complex128) T {
	var z T
	switch p := any(&z).(type) {
	case *float32:
		*p = float32(real(c))
	case *float64:
		*p = real(c)
	case *complex128:
		*p = c
	}
	return z
}

// ToComplex widens v to complex128.
func ToComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}
	return 0
}

// Re returns the real part of v as float64.
func Re[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex128:
		return real(x)
	}
	return 0
}

// Im returns the imaginary part of v (zero for real kinds).
func Im[T Scalar](v T) float64 {
	if x, ok := any(v).(complex128); ok {
		return imag(x)
	}
	return 0
}

// Conj returns the complex conjugate of v; real kinds are returned as is.
func Conj[T Scalar](v T) T {
	if x, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(x)).(T)
	}
	return v
}

// Abs returns |v|.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// AbsSq returns |v|² without taking a square root.
func AbsSq[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		f := float64(x)
		return f * f
	case float64:
		return x * x
	case complex128:
		re, im := real(x), imag(x)
		return re*re + im*im
	}
	return 0
}

// IsNaN reports whether any component of v is NaN.
func IsNaN[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return math.IsNaN(float64(x))
	case float64:
		return math.IsNaN(x)
	case complex128:
		return cmplx.IsNaN(x)
	}
	return false
}

// IsFinite reports whether every component of v is finite.
func IsFinite[T Scalar](v T) bool {
	re, im := Re(v), Im(v)
	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
