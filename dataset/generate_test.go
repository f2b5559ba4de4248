// SPDX-License-Identifier: MIT
package dataset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/stretchr/testify/require"
)

func TestGenerate_AllKinds(t *testing.T) {
	t.Parallel()
	for _, kind := range dataset.Kinds {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()
			src, err := dataset.Generate(kind, 50, 6)
			require.NoError(t, err)
			require.Equal(t, 50, src.NumRows())
			require.Equal(t, 6, src.NumCols())
			src.Data().Do(func(_, _ int, v float64) bool {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				return true
			})
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := dataset.Generate(dataset.KindCluster, 20, 5, dataset.WithSeed(9))
	require.NoError(t, err)
	b, err := dataset.Generate(dataset.KindCluster, 20, 5, dataset.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	ok, err := matrix.AllClose(a.Data(), b.Data(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGenerate_PlantedRows(t *testing.T) {
	t.Parallel()
	src, err := dataset.Generate(dataset.KindOutlier, 10, 5)
	require.NoError(t, err)
	row, _ := src.Data().Row(0)
	require.Equal(t, 6.0, row[3])
	require.Equal(t, -6.0, row[4])

	src, err = dataset.Generate(dataset.KindInlier2D, 10, 2)
	require.NoError(t, err)
	row, _ = src.Data().Row(0)
	require.Equal(t, []float64{0, 0}, row)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	_, err := dataset.Generate("grid", 10, 10)
	require.ErrorIs(t, err, dataset.ErrUnknownKind)
	_, err = dataset.Generate(dataset.KindDonut, 10, 4)
	require.ErrorIs(t, err, dataset.ErrShape)
	_, err = dataset.Generate(dataset.KindSwiss, 0, 4)
	require.ErrorIs(t, err, dataset.ErrShape)

	k, err := dataset.ParseKind("swiss")
	require.NoError(t, err)
	require.Equal(t, dataset.KindSwiss, k)
	_, err = dataset.ParseKind("Swiss")
	require.ErrorIs(t, err, dataset.ErrUnknownKind)

	require.Panics(t, func() { dataset.WithRand(nil) })
}
