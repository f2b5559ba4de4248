// SPDX-License-Identifier: MIT
package dataset_test

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	tab := dataset.Table{
		Labels: []string{"x", dataset.FrequencyLabel},
		Rows:   [][]float64{{0.5, 3}, {math.NaN(), 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, tab))
	require.Equal(t, "x,frequencies\n0.5,3\n,1\n", buf.String())

	back, err := dataset.ReadCSV(&buf)
	require.NoError(t, err)
	v, _ := back.Data().At(1, 0)
	require.True(t, math.IsNaN(v), "empty field reads back as missing")
	require.Equal(t, 1, tab.Column(dataset.FrequencyLabel))
	require.Equal(t, -1, tab.Column("nope"))
}

func TestWriteCSV_Invalid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.ErrorIs(t, dataset.WriteCSV(&buf, dataset.Table{}), dataset.ErrEmpty)

	ragged := dataset.Table{Labels: []string{"a", "b"}, Rows: [][]float64{{1}}}
	require.ErrorIs(t, dataset.WriteCSV(&buf, ragged), dataset.ErrRagged)
}

func TestWriteCSVFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")
	tab := dataset.Table{Labels: []string{"a"}, Rows: [][]float64{{1}, {2}}}
	require.NoError(t, dataset.WriteCSVFile(path, tab))

	src, err := dataset.OpenCSV(path)
	require.NoError(t, err)
	require.Equal(t, 2, src.NumRows())
}

func TestSelectLabelsAndBounds(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"c", "a", "V5"}, dataset.SelectLabels([]string{"a", "b", "c"}, []int{2, 0, 4}))

	lo, hi, err := dataset.SelectBounds([]float64{0, 1, 2}, []float64{10, 11, 12}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, lo)
	require.Equal(t, []float64{12, 10}, hi)

	_, _, err = dataset.SelectBounds([]float64{0}, []float64{1}, []int{3})
	require.ErrorIs(t, err, dataset.ErrRagged)
}
