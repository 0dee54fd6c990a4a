// SPDX-License-Identifier: MIT

// Package strided describes how a logical two-level extent maps onto a flat
// storage slice, and carries the error taxonomy shared by the numeric
// packages of this module.
//
// A Layout has a primary (contiguous) extent, a secondary extent, and a
// stride between consecutive secondary positions:
//
//	element (p, s) lives at Data[s*Stride + p]
//	len(Data) == Stride*(Secondary-1) + Primary
//	Stride >= Primary
//
// A column-major matrix is Layout{Primary: rows, Secondary: cols}. A vector
// of n elements with element step k is Layout{Primary: 1, Secondary: n,
// Stride: k}. Views (windows) share the parent's storage; writes through a
// view are visible through the parent.
//
// Concurrent mutation of buffers that share storage is the caller's
// responsibility. Nothing here locks.
package strided
