// SPDX-License-Identifier: MIT

package strided

import "fmt"

// Layout maps a (primary, secondary) index pair to a storage offset.
type Layout struct {
	Primary   int // contiguous extent
	Secondary int // extent along Stride
	Stride    int // storage step between consecutive secondary positions
}

// Len returns the number of logical elements.
func (l Layout) Len() int { return l.Primary * l.Secondary }

// IsEmpty reports whether the layout addresses no elements.
func (l Layout) IsEmpty() bool { return l.Primary <= 0 || l.Secondary <= 0 }

// Required returns the exact storage length the layout needs.
func (l Layout) Required() int {
	if l.IsEmpty() {
		return 0
	}
	return l.Stride*(l.Secondary-1) + l.Primary
}

// IsContiguous reports whether the logical elements occupy storage without
// gaps, so the whole buffer can be processed as one flat span.
func (l Layout) IsContiguous() bool {
	return l.Stride == l.Primary || l.Secondary == 1
}

// Offset returns the storage index of element (p, s). It does not check bounds.
func (l Layout) Offset(p, s int) int { return s*l.Stride + p }

// SameShape reports whether both layouts have equal extents (strides may differ).
func (l Layout) SameShape(o Layout) bool {
	return l.Primary == o.Primary && l.Secondary == o.Secondary
}

// Validate checks the layout invariants against a storage length.
// Extents are checked before strides, strides before length.
func (l Layout) Validate(storage int) error {
	if l.Primary < 0 || l.Secondary < 0 || l.Stride < 0 {
		return fmt.Errorf("layout %dx%d stride %d: %w", l.Primary, l.Secondary, l.Stride, ErrNegativeExtent)
	}
	if l.IsEmpty() {
		return fmt.Errorf("layout %dx%d: %w", l.Primary, l.Secondary, ErrEmpty)
	}
	if l.Stride < l.Primary {
		return fmt.Errorf("layout stride %d < %d: %w", l.Stride, l.Primary, ErrBadStride)
	}
	if want := l.Required(); storage != want {
		return fmt.Errorf("layout wants %d elements, storage has %d: %w", want, storage, ErrBadLength)
	}

	return nil
}

// CheckIndex verifies 0 <= p < Primary and 0 <= s < Secondary.
func (l Layout) CheckIndex(p, s int) error {
	if p < 0 || p >= l.Primary || s < 0 || s >= l.Secondary {
		return fmt.Errorf("index (%d,%d) in %dx%d: %w", p, s, l.Primary, l.Secondary, ErrOutOfRange)
	}
	return nil
}

// CheckWindow verifies that the block starting at (p0, s0) with extents
// (np, ns) lies inside the layout. Non-positive extents are ErrEmpty;
// anything outside is ErrOutOfRange.
func (l Layout) CheckWindow(p0, s0, np, ns int) error {
	if np <= 0 || ns <= 0 {
		return fmt.Errorf("window %dx%d: %w", np, ns, ErrEmpty)
	}
	if p0 < 0 || s0 < 0 || p0+np > l.Primary || s0+ns > l.Secondary {
		return fmt.Errorf("window (%d,%d)+%dx%d in %dx%d: %w",
			p0, s0, np, ns, l.Primary, l.Secondary, ErrOutOfRange)
	}
	return nil
}
