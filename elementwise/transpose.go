// SPDX-License-Identifier: MIT

package elementwise

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/strided"
)

// Transpose writes dst(s, p) = x(p, s), conjugating when conj is set.
// dst must have Primary == x.Secondary and Secondary == x.Primary and must
// not share storage with x.
//
// The outer loop walks x's columns and the inner loop its rows, so reads are
// sequential and writes step by dst.Stride.
func Transpose[T scalar.Scalar](x, dst strided.Buffer[T], conj bool) {
	if dst.Primary != x.Secondary || dst.Secondary != x.Primary {
		panic("elementwise: transpose shape mismatch")
	}
	var p, s int
	if conj {
		if xv, ok := any(x.Data).([]complex128); ok {
			dv := any(dst.Data).([]complex128)
			for s = 0; s < x.Secondary; s++ {
				src := xv[s*x.Stride : s*x.Stride+x.Primary]
				for p = range src {
					dv[p*dst.Stride+s] = complex(real(src[p]), -imag(src[p]))
				}
			}
			return
		}
	}
	for s = 0; s < x.Secondary; s++ {
		src := x.Line(s)
		for p = range src {
			dst.Data[p*dst.Stride+s] = src[p]
		}
	}
}

// TransposeSquareInPlace swaps (p, s) with (s, p) for every pair above the
// diagonal. With conj set it also conjugates, which makes it the in-place
// conjugate transpose; the diagonal is conjugated in its own pass.
func TransposeSquareInPlace[T scalar.Scalar](b strided.Buffer[T], conj bool) {
	if b.Primary != b.Secondary {
		panic("elementwise: in-place transpose of non-square buffer")
	}
	n := b.Primary
	var i, j int
	if cv, ok := any(b.Data).([]complex128); ok && conj {
		for j = 0; j < n; j++ {
			for i = 0; i < j; i++ {
				u, l := j*b.Stride+i, i*b.Stride+j
				cv[u], cv[l] = complex(real(cv[l]), -imag(cv[l])), complex(real(cv[u]), -imag(cv[u]))
			}
			d := j*b.Stride + j
			cv[d] = complex(real(cv[d]), -imag(cv[d]))
		}
		return
	}
	for j = 0; j < n; j++ {
		for i = 0; i < j; i++ {
			u, l := j*b.Stride+i, i*b.Stride+j
			b.Data[u], b.Data[l] = b.Data[l], b.Data[u]
		}
	}
}
