// SPDX-License-Identifier: MIT
package colsketch_test

import (
	"fmt"

	"github.com/katalvlaran/lvsketch/colsketch"
	"github.com/katalvlaran/lvsketch/matrix"
)

// Column 2 repeats column 0, so the second pick goes to column 1.
func ExampleSketcher_Compute() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 0},
		{1, 1, 1},
	})
	res, err := colsketch.New(colsketch.WithMaxColumns(2)).Compute(a, []string{"x", "y", "x_copy"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Names)
	fmt.Printf("%.3f\n", res.Correlations)
	// Output:
	// [x y]
	// [0.945 0.982]
}
