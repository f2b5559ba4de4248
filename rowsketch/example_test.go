// SPDX-License-Identifier: MIT
package rowsketch_test

import (
	"fmt"

	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/katalvlaran/lvsketch/rowsketch"
)

func ExampleSketcher_Compute() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{0.0, 0.0},
		{0.1, 0.0},
		{5.0, 5.0},
		{0.0, 0.1},
		{5.1, 5.0},
	})
	res, err := rowsketch.New(rowsketch.WithRadius(1)).Compute(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.ExemplarRows, res.Members, res.Frequencies())
	// Output:
	// [0 2] [[0 1 3] [2 4]] [3 2]
}

func ExampleAutoRadius() {
	fmt.Printf("%.4f %.4f\n", rowsketch.AutoRadius(3), rowsketch.AutoRadius(100))
	// Output:
	// 0.1077 1.8185
}
