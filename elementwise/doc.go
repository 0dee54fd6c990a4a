// SPDX-License-Identifier: MIT

// Package elementwise holds the strided loop kernels shared by vectors and
// matrices.
//
// Every kernel takes strided.Buffer operands of identical shape and picks
// one of three traversal modes once per call:
//
//   - flat:    every operand is contiguous; one pass over Len() elements.
//   - strided: every operand is a vector layout (Primary == 1); one pass
//     with per-operand increments.
//   - columns: otherwise; outer loop over secondary positions (columns),
//     inner loop over the contiguous primary run (rows).
//
// The column-major nesting matches the storage order, so reads and writes
// stay sequential for padded matrices too.
//
// float64 spans with unit increments go through github.com/cwbudde/algo-vecmath,
// which selects a SIMD implementation for the running CPU.
//
// Kernels do not validate. Shape agreement, emptiness, and aliasing are the
// caller's contract (package matrix checks them); a shape mismatch here
// panics, like the vecmath block functions do.
package elementwise
