// SPDX-License-Identifier: MIT

package strided

// Buffer pairs a Layout with the storage it describes. The zero value is an
// empty buffer. Buffers are small values; copying one copies the descriptor,
// never the storage.
type Buffer[T any] struct {
	Layout
	Data []T
}

// Make allocates a contiguous buffer of primary×secondary elements.
// Extents must be positive; callers validate first.
func Make[T any](primary, secondary int) Buffer[T] {
	return Buffer[T]{
		Layout: Layout{Primary: primary, Secondary: secondary, Stride: primary},
		Data:   make([]T, primary*secondary),
	}
}

// Wrap validates l against data and returns a buffer that aliases data.
func Wrap[T any](l Layout, data []T) (Buffer[T], error) {
	if err := l.Validate(len(data)); err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{Layout: l, Data: data}, nil
}

// At returns element (p, s) without bounds checks beyond the slice's own.
func (b Buffer[T]) At(p, s int) T { return b.Data[s*b.Stride+p] }

// Set writes element (p, s).
func (b Buffer[T]) Set(p, s int, v T) { b.Data[s*b.Stride+p] = v }

// Line returns the contiguous primary run at secondary position s.
func (b Buffer[T]) Line(s int) []T {
	off := s * b.Stride
	return b.Data[off : off+b.Primary : off+b.Primary]
}

// Flat returns all elements as one slice. Only valid when IsContiguous.
func (b Buffer[T]) Flat() []T {
	n := b.Len()
	return b.Data[:n:n]
}

// Window returns the sub-block at (p0, s0) with extents (np, ns). The window
// shares storage with b. Bounds must have been checked with CheckWindow.
func (b Buffer[T]) Window(p0, s0, np, ns int) Buffer[T] {
	off := s0*b.Stride + p0
	end := off + b.Stride*(ns-1) + np
	return Buffer[T]{
		Layout: Layout{Primary: np, Secondary: ns, Stride: b.Stride},
		Data:   b.Data[off:end:end],
	}
}

// Fill sets every logical element to v, leaving stride gaps untouched.
func (b Buffer[T]) Fill(v T) {
	if b.IsEmpty() {
		return
	}
	if b.IsContiguous() {
		flat := b.Flat()
		for i := range flat {
			flat[i] = v
		}
		return
	}
	var p, s int
	for s = 0; s < b.Secondary; s++ {
		off := s * b.Stride
		for p = 0; p < b.Primary; p++ {
			b.Data[off+p] = v
		}
	}
}

// CopyFrom copies src's elements into b. Shapes must match.
func (b Buffer[T]) CopyFrom(src Buffer[T]) {
	if b.IsContiguous() && src.IsContiguous() {
		copy(b.Flat(), src.Flat())
		return
	}
	var s int
	if b.Primary == 1 {
		for s = 0; s < b.Secondary; s++ {
			b.Data[s*b.Stride] = src.Data[s*src.Stride]
		}
		return
	}
	for s = 0; s < b.Secondary; s++ {
		copy(b.Line(s), src.Line(s))
	}
}

// Clone returns a contiguous copy of b.
func (b Buffer[T]) Clone() Buffer[T] {
	if b.IsEmpty() {
		return Buffer[T]{}
	}
	out := Make[T](b.Primary, b.Secondary)
	out.CopyFrom(b)
	return out
}
