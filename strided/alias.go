// SPDX-License-Identifier: MIT

package strided

import "unsafe"

// Overlap classifies how two buffers share storage.
type Overlap uint8

const (
	// Disjoint buffers never touch the same memory.
	Disjoint Overlap = iota
	// Identical buffers start at the same address with the same layout, so
	// element i of one is element i of the other.
	Identical
	// Partial buffers share memory without being identical. Element-by-element
	// writes into one may clobber reads from the other.
	Partial
)

// String implements fmt.Stringer.
func (o Overlap) String() string {
	switch o {
	case Disjoint:
		return "disjoint"
	case Identical:
		return "identical"
	default:
		return "partial"
	}
}

// Relate reports how a and b share storage. The test is conservative: two
// views whose address ranges intersect are Partial even when their element
// sets interleave without touching.
func Relate[T, U any](a Buffer[T], b Buffer[U]) Overlap {
	if len(a.Data) == 0 || len(b.Data) == 0 {
		return Disjoint
	}
	aLo, aHi := addrRange(a.Data)
	bLo, bHi := addrRange(b.Data)
	if aHi <= bLo || bHi <= aLo {
		return Disjoint
	}
	if aLo == bLo && a.Layout == b.Layout && unsafe.Sizeof(a.Data[0]) == unsafe.Sizeof(b.Data[0]) {
		return Identical
	}
	return Partial
}

func addrRange[T any](s []T) (lo, hi uintptr) {
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	hi = lo + uintptr(len(s))*unsafe.Sizeof(s[0])
	return lo, hi
}
