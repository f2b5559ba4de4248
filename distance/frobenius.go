// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Frobenius returns the cosine similarity x·y / (‖x‖·‖y‖) between two
// flattened distance vectors. It is the quality score of a sketch: 1 means the
// sketch preserves the row-distance structure up to scale.
//
// The denominator is sqrt(‖x‖²·‖y‖²), which makes Frobenius(x, x) exactly 1.
// Returns NaN for unequal lengths, empty input or a zero vector.
// Complexity: O(len(x)).
func Frobenius(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	den := math.Sqrt(floats.Dot(x, x) * floats.Dot(y, y))
	if den == 0 {
		return math.NaN()
	}

	return floats.Dot(x, y) / den
}
