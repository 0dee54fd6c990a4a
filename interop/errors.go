// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"github.com/katalvlaran/linalg/strided"
)

var (
	// ErrDtype is returned when a tensor's element type is not the requested one.
	ErrDtype = strided.NewError(strided.ErrInvalidArgument, "interop: tensor dtype mismatch")

	// ErrTensorRank is returned for tensors that are not 1-D (vectors) or
	// 2-D (matrices).
	ErrTensorRank = strided.NewError(strided.ErrInvalidArgument, "interop: unsupported tensor rank")
)

const (
	opDenseOf    = "DenseOf"
	opFromMatrix = "FromMatrix"
	opVecDenseOf = "VecDenseOf"
	opFromVector = "FromVector"
	opCDenseOf   = "CDenseOf"
	opFromCMat   = "FromCMatrix"
	opTensorOf   = "TensorOf"
	opFromTensor = "FromTensor"
)

func interopErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
