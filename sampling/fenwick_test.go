// SPDX-License-Identifier: MIT
package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFenwick_SearchAndUpdate(t *testing.T) {
	f := newFenwick([]float64{1, 0, 2, 3, 0})
	require.Equal(t, 6.0, f.total())

	// Prefix sums: 1, 1, 3, 6, 6.
	require.Equal(t, 0, f.search(0))
	require.Equal(t, 0, f.search(0.99))
	require.Equal(t, 2, f.search(1), "zero-mass slot 1 is skipped")
	require.Equal(t, 3, f.search(3.5))
	require.Equal(t, 5, f.search(6), "r >= total overshoots")

	f.add(2, -2)
	require.Equal(t, 4.0, f.total())
	require.Equal(t, 3, f.search(1))
}

func TestNearestLive(t *testing.T) {
	mass := []float64{0, 2, 0, 0}
	require.Equal(t, 1, nearestLive(mass, 4))
	require.Equal(t, 1, nearestLive(mass, 0))
}
