// SPDX-License-Identifier: MIT

// Package interop converts matrix.Mat and matrix.Vec to and from the dense
// types of gonum (mat.Dense, mat.VecDense, mat.CDense) and gorgonia
// (tensor.Dense).
//
// Every conversion copies. gonum and gorgonia store row-major, so a shared
// backing array is impossible without a transpose; the copy also keeps
// views of the source from aliasing the result.
//
// Conversions reject nil and empty inputs with the matrix error kinds, and
// tensors of the wrong rank or dtype with ErrTensorRank and ErrDtype.
package interop
