// SPDX-License-Identifier: MIT

package rowsketch

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsketch/matrix"
	"gonum.org/v1/gonum/mat"
)

// project maps the rows of a into d dimensions with a Gaussian matrix whose
// entries are N(0, 1/d), which preserves squared distances in expectation.
// Missing cells enter the projection as 0.
func project(a *matrix.Dense, d int, rng *rand.Rand) (*matrix.Dense, error) {
	filled, err := matrix.ReplaceInfNaN(a, 0)
	if err != nil {
		return nil, err
	}
	src, err := matrix.ToGonum(filled)
	if err != nil {
		return nil, err
	}
	n := a.Cols()
	scale := 1 / math.Sqrt(float64(d))
	weights := make([]float64, n*d)
	for i := range weights {
		weights[i] = rng.NormFloat64() * scale
	}

	var out mat.Dense
	out.Mul(src, mat.NewDense(n, d, weights))

	return matrix.FromGonum(&out)
}
