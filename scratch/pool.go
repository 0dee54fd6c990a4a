// SPDX-License-Identifier: MIT

package scratch

import (
	"math/bits"
	"sync"
)

// Elem is the set of element types the pools serve.
type Elem interface {
	float32 | float64 | complex128 | int
}

// maxClass bounds pooled slices at 1<<maxClass elements. Larger requests are
// plain allocations that the garbage collector reclaims.
const maxClass = 26

// registry holds one sync.Pool per size class for a single element type.
type registry[T Elem] struct {
	mu    sync.RWMutex
	pools map[int]*sync.Pool
}

func newRegistry[T Elem]() *registry[T] {
	return &registry[T]{pools: make(map[int]*sync.Pool)}
}

var (
	float32s    = newRegistry[float32]()
	float64s    = newRegistry[float64]()
	complex128s = newRegistry[complex128]()
	ints        = newRegistry[int]()
)

func registryFor[T Elem]() *registry[T] {
	var (
		z T
		r any
	)
	switch any(z).(type) {
	case float32:
		r = float32s
	case float64:
		r = float64s
	case complex128:
		r = complex128s
	case int:
		r = ints
	}
	return r.(*registry[T])
}

// pool returns the pool for class c, creating it on first use.
func (r *registry[T]) pool(c int) *sync.Pool {
	r.mu.RLock()
	p, ok := r.pools[c]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok = r.pools[c]; ok {
		return p
	}
	size := 1 << c
	p = &sync.Pool{
		New: func() any {
			s := make([]T, size)
			return &s
		},
	}
	r.pools[c] = p

	return p
}

// class returns the smallest c with 1<<c >= n.
func class(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get returns a zeroed slice of length n and the function that returns it to
// its pool. n must be non-negative.
func Get[T Elem](n int) ([]T, func()) {
	if n < 0 {
		panic("scratch: negative length")
	}
	c := class(n)
	if c > maxClass {
		return make([]T, n), func() {}
	}

	p := registryFor[T]().pool(c)
	sp := p.Get().(*[]T)
	s := (*sp)[:n]
	clear(s)

	released := false
	return s, func() {
		if released {
			return
		}
		released = true
		p.Put(sp)
	}
}

// Get2 acquires two slices at once and releases both together.
func Get2[T Elem](n, m int) ([]T, []T, func()) {
	a, ra := Get[T](n)
	b, rb := Get[T](m)
	return a, b, func() {
		rb()
		ra()
	}
}
