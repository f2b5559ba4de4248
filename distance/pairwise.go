// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsketch/matrix"
)

// NumPairs returns n(n−1)/2, the length of a pairwise distance vector over n rows.
func NumPairs(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// PairIndex returns the slot of the unordered row pair {i, j}, i != j.
// Layout: for i = 1..n−1, for j = 0..i−1, slots are consecutive.
func PairIndex(i, j int) int {
	if i < j {
		i, j = j, i
	}

	return i*(i-1)/2 + j
}

// Pairwise accumulates into dst the per-column squared distances between every
// row pair, summed over cols. A missing cell skips that column's term for the
// affected pairs. dst is overwritten, not added to.
//
// Errors:
//   - ErrLength when len(dst) != NumPairs(m.Rows()); matrix.ErrOutOfRange for a bad column.
//
// Complexity:
//   - Time O(len(cols)·rows²/2), Space O(rows) scratch for one column.
func Pairwise(m *matrix.Dense, cols []int, dst []float64) error {
	if err := checkPairs(m, dst); err != nil {
		return distanceErrorf(methodPairwise, err)
	}
	for ij := range dst {
		dst[ij] = 0
	}
	for _, col := range cols {
		if err := AddColumn(m, col, dst, dst); err != nil {
			return distanceErrorf(methodPairwise, err)
		}
	}

	return nil
}

// AddColumn writes dst[ij] = base[ij] + d_ij(col) for every row pair, where
// d_ij is the squared difference on a single column. When either cell is
// missing the slot keeps base[ij]. base and dst may alias.
//
// Errors:
//   - ErrLength (base or dst), matrix.ErrOutOfRange for col.
//
// Complexity:
//   - Time O(rows²/2), Space O(rows).
func AddColumn(m *matrix.Dense, col int, base, dst []float64) error {
	if err := checkPairs(m, dst); err != nil {
		return distanceErrorf(methodAddColumn, err)
	}
	if len(base) != len(dst) {
		return distanceErrorf(methodAddColumn, fmt.Errorf("base %d, dst %d: %w", len(base), len(dst), ErrLength))
	}
	values, err := m.Col(col)
	if err != nil {
		return distanceErrorf(methodAddColumn, err)
	}

	var (
		i, j, ij int
		vi, d    float64
	)
	for i = 1; i < len(values); i++ {
		vi = values[i]
		for j = 0; j < i; j++ {
			if math.IsNaN(vi) || math.IsNaN(values[j]) {
				dst[ij] = base[ij]
			} else {
				d = vi - values[j]
				dst[ij] = base[ij] + d*d
			}
			ij++
		}
	}

	return nil
}

func checkPairs(m *matrix.Dense, dst []float64) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	if want := NumPairs(m.Rows()); len(dst) != want {
		return fmt.Errorf("got %d slots, want %d: %w", len(dst), want, ErrLength)
	}

	return nil
}
