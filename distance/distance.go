// SPDX-License-Identifier: MIT

package distance

import "math"

// SquaredDistance returns the NaN-aware squared Euclidean distance between a
// and b: Σ (a_j − b_j)² over positions where both values are present, scaled
// by len/n_valid to extrapolate the missing dimensions.
//
// Returns NaN when no position is present in both vectors or when the lengths
// differ. Callers accumulating distances must skip NaN, never count it as 0.
//
// Complexity: O(len(a)), no allocations.
func SquaredDistance(a, b []float64) float64 {
	return SquaredDistanceBounded(a, b, math.Inf(1), 0)
}

// SquaredDistanceBounded is SquaredDistance with two extra rules used on the
// row-sketch hot path:
//
//   - Early exit: once the unscaled partial sum exceeds limit, the partial sum
//     is returned as is. It is already > limit, which is all a threshold test needs.
//   - Coverage: when n_valid < minValid·len the result is NaN, treating a pair
//     with too few shared dimensions as incomparable. minValid = 0 keeps only
//     the n_valid == 0 rule.
//
// Complexity: O(len(a)) worst case, no allocations.
func SquaredDistanceBounded(a, b []float64, limit, minValid float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	var (
		sum, d float64
		valid  int
	)
	for j := range a {
		if math.IsNaN(a[j]) || math.IsNaN(b[j]) {
			continue
		}
		d = a[j] - b[j]
		sum += d * d
		valid++
		if sum > limit {
			return sum
		}
	}
	if valid == 0 || float64(valid) < minValid*float64(len(a)) {
		return math.NaN()
	}

	return sum * float64(len(a)) / float64(valid)
}
