// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 2},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "element [%d,%d] of a new Dense must be 0", i, j)

				return true
			})
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, got.ToRows())

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, slow.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	for name, m := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		tr, err := matrix.Transpose(m)
		require.NoError(t, err, name)
		require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows(), name)
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGram checks AᵀA against Transpose+Mul and exact symmetry.
func TestGram(t *testing.T) {
	t.Parallel()
	a := randomDense(t, 7, 4, 11)

	g, err := matrix.Gram(a)
	require.NoError(t, err)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	ref, err := matrix.Mul(at, a)
	require.NoError(t, err)

	ok, err := matrix.AllClose(g, ref, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			gij, _ := g.At(i, j)
			gji, _ := g.At(j, i)
			require.Equal(t, gij, gji, "Gram must be bitwise symmetric")
		}
	}

	slow, err := matrix.Gram(hide{a})
	require.NoError(t, err)
	require.Equal(t, g.ToRows(), slow.ToRows())
}

func TestZeros(t *testing.T) {
	z, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.ToRows())

	_, err = matrix.NewDense(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
