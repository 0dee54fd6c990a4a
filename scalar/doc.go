// SPDX-License-Identifier: MIT

// Package scalar defines the element kinds shared by every numeric package
// in this module and a handful of kind-aware helpers.
//
// Three kinds are supported, each as a distinct generic instantiation:
//
//   - float32    (real single precision)
//   - float64    (real double precision)
//   - complex128 (complex double precision)
//
// The constraint is exact (no ~T terms): kind-specific kernels dispatch with
// a type switch on the concrete slice type, and named types would silently
// fall through those switches.
//
// Helpers here are intended for scalar code paths (reductions, options,
// error messages). Hot loops dispatch once per slice instead of once per
// element; see package elementwise.
package scalar
