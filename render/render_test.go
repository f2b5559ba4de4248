// SPDX-License-Identifier: MIT
package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/render"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func sketchTable() dataset.Table {
	return dataset.Table{
		Labels: []string{"a", "b", dataset.FrequencyLabel},
		Rows: [][]float64{
			{0, 1, 5},
			{1, 0, 1},
			{math.NaN(), 2, 3},
		},
	}
}

func TestScatter_Defaults(t *testing.T) {
	t.Parallel()
	p, err := render.Scatter(sketchTable(), render.WithTitle("row sketch"))
	require.NoError(t, err)
	require.Equal(t, "a", p.X.Label.Text)
	require.Equal(t, "b", p.Y.Label.Text)
	require.Equal(t, "row sketch", p.Title.Text)
}

func TestScatter_Errors(t *testing.T) {
	t.Parallel()
	_, err := render.Scatter(sketchTable(), render.WithX("zz"))
	require.ErrorIs(t, err, render.ErrColumn)
	_, err = render.Scatter(sketchTable(), render.WithWeight("zz"))
	require.ErrorIs(t, err, render.ErrColumn)

	empty := dataset.Table{Labels: []string{"a", "b"}, Rows: [][]float64{{math.NaN(), 1}}}
	_, err = render.Scatter(empty)
	require.ErrorIs(t, err, render.ErrNoPoints)

	_, err = render.Scatter(dataset.Table{})
	require.ErrorIs(t, err, dataset.ErrEmpty)

	require.Panics(t, func() { render.WithColor(nil) })
}

func TestSave(t *testing.T) {
	t.Parallel()
	p, err := render.Scatter(sketchTable(), render.WithWeight(""))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, render.Save(p, path, 4*vg.Inch, 3*vg.Inch))
		st, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, st.Size())
	}

	require.ErrorIs(t, render.Save(p, filepath.Join(dir, "out.txt"), vg.Inch, vg.Inch), render.ErrFormat)
}
