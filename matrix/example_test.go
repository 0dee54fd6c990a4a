// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMat_Submatrix shows that views share storage with their parent.
func ExampleMat_Submatrix() {
	m, _ := matrix.MatFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	sub, _ := m.Submatrix(1, 1, 2, 2)
	_ = sub.ScaleInPlace(10)

	fmt.Println(m)
	// Output:
	// Mat[float64 3×3]
	//   1   2   3
	//   4  50  60
	//   7  80  90
}

// ExampleTranspose transposes a 2×3 matrix.
func ExampleTranspose() {
	m, _ := matrix.MatFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	t, _ := matrix.Transpose(m)
	fmt.Println(t.ToRows())
	// Output:
	// [[1 4] [2 5] [3 6]]
}

// ExampleRank counts singular values above a tolerance.
func ExampleRank() {
	d, _ := matrix.Diag(1.0, 1, 2)
	lo, _ := matrix.Rank(d, 0.999)
	hi, _ := matrix.Rank(d, 1.001)
	auto, _ := matrix.Rank(d, math.NaN())
	fmt.Println(lo, hi, auto)
	// Output:
	// 3 1 3
}

// ExampleMulVecOp multiplies by a conjugate transpose without forming it.
func ExampleMulVecOp() {
	a, _ := matrix.MatFromRows([][]complex128{{1, 1i}, {0, 2}})
	x, _ := matrix.VecFrom([]complex128{1, 1})
	y, _ := matrix.MulVecOp(matrix.ConjTrans, a, x)
	for _, v := range y.All() {
		fmt.Println(real(v)+0, imag(v)+0)
	}
	// Output:
	// 1 0
	// 2 -1
}
