// SPDX-License-Identifier: MIT

// Package scratch hands out temporary slices from size-classed pools.
//
// Multi-step algorithms (conjugated GEMV operands, LAPACK workspaces,
// singular-vector storage for pseudo-inverses, deviation panels for
// covariance) need short-lived buffers. Each acquisition is scoped:
//
//	buf, release := scratch.Get[float64](n)
//	defer release()
//
// Slices are rounded up to the next power of two internally, so a pool
// serves every request of the same class. Returned slices are zeroed and
// have exactly the requested length. Releasing twice is a no-op; using a
// slice after release is a bug.
//
// All functions are safe for concurrent use.
package scratch
