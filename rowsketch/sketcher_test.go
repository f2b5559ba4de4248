// SPDX-License-Identifier: MIT
package rowsketch_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/katalvlaran/lvsketch/rowsketch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// threeClusters puts perRow rows around each of (0,0,0), (10,10,10) and
// (20,20,20), interleaved, with distinct offsets below 0.01.
func threeClusters(t *testing.T, perCluster int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, 0, 3*perCluster)
	for k := 0; k < perCluster; k++ {
		for c := 0; c < 3; c++ {
			v := 10*float64(c) + 0.001*float64(k)
			rows = append(rows, []float64{v, v, v})
		}
	}
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func requireComplete(t *testing.T, res *rowsketch.Result, m int) {
	t.Helper()
	var all []int
	for e, members := range res.Members {
		require.NotEmpty(t, members)
		require.Equal(t, res.ExemplarRows[e], members[0])
		require.True(t, sort.IntsAreSorted(members), "members in discovery order")
		all = append(all, members...)
	}
	sort.Ints(all)
	want := make([]int, m)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, all)
	require.Equal(t, 0, res.ExemplarRows[0])
}

func TestCompute_BigRadiusSwallowsAll(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFrom([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
		{1.0, 0.0, 0.5},
	})
	require.NoError(t, err)

	res, err := rowsketch.New(rowsketch.WithRadius(10)).Compute(a)
	require.NoError(t, err)
	require.Len(t, res.Exemplars, 1)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, res.Members)
	require.Equal(t, []int{4}, res.Frequencies())
	require.Equal(t, []float64{0.1, 0.2, 0.3}, res.Exemplars[0])
	require.Equal(t, 100.0, res.Delta)
}

func TestCompute_RadiusMonotone(t *testing.T) {
	t.Parallel()
	a := threeClusters(t, 7)
	radii := []float64{1e-9, 0.1, 1, 3, 100}
	want := []int{21, 3, 3, 3, 1}
	prev := math.MaxInt
	for i, r := range radii {
		res, err := rowsketch.New(rowsketch.WithRadius(r), rowsketch.WithSeed(5)).Compute(a)
		require.NoError(t, err)
		requireComplete(t, res, a.Rows())
		require.Len(t, res.Exemplars, want[i], "radius %g", r)
		require.LessOrEqual(t, len(res.Exemplars), prev)
		prev = len(res.Exemplars)
	}
}

func TestCompute_CompleteOnGeneratedData(t *testing.T) {
	t.Parallel()
	src, err := dataset.Generate(dataset.KindCluster, 200, 6, dataset.WithNormalize(true))
	require.NoError(t, err)
	for _, r := range []float64{0, 0.05, 0.2, 0.5} {
		res, err := rowsketch.New(rowsketch.WithRadius(r)).Compute(src.Data())
		require.NoError(t, err)
		requireComplete(t, res, src.NumRows())
	}
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()
	src, err := dataset.Generate(dataset.KindDonut, 150, 5, dataset.WithNormalize(true))
	require.NoError(t, err)

	sk := rowsketch.New(rowsketch.WithRadius(0.3), rowsketch.WithSeed(11))
	a, err := sk.Compute(src.Data())
	require.NoError(t, err)
	b, err := sk.Compute(src.Data())
	require.NoError(t, err)
	require.Equal(t, a.Members, b.Members)

	c, err := rowsketch.New(rowsketch.WithRadius(0.3), rowsketch.WithRand(rand.New(rand.NewSource(11)))).
		Compute(src.Data())
	require.NoError(t, err)
	require.Equal(t, a.Members, c.Members)
}

func TestCompute_MissingRows(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	a, err := matrix.NewDenseFrom([][]float64{
		{0, 0, 0},
		{nan, nan, nan},
		{0, 0, 0},
		{0, nan, nan},
	})
	require.NoError(t, err)

	res, err := rowsketch.New(rowsketch.WithRadius(1)).Compute(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2, 3}, {1}}, res.Members, "an all-missing row opens its own exemplar")

	res, err = rowsketch.New(rowsketch.WithRadius(1), rowsketch.WithMinValidFraction(0.5)).Compute(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}, {3}}, res.Members, "one shared dimension of three is too few")
}

func TestCompute_RejectsInf(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFrom([][]float64{{0, 1}, {math.Inf(1), 0}})
	require.NoError(t, err)
	_, err = rowsketch.New().Compute(a)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = rowsketch.New().Compute(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCompute_Projection(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, 40)
	for i := range rows {
		rows[i] = make([]float64, 60)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
	}
	a, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	res, err := rowsketch.New(rowsketch.WithMaxDimensions(8)).Compute(a)
	require.NoError(t, err)
	require.Equal(t, 8, res.Dimensions)
	require.InDelta(t, rowsketch.AutoRadius(60), res.Radius, 0)
	requireComplete(t, res, 40)
	for e, ex := range res.Exemplars {
		require.Equal(t, rows[res.ExemplarRows[e]], ex, "exemplars keep the input values")
	}

	res, err = rowsketch.New(rowsketch.WithMaxDimensions(100)).Compute(a)
	require.NoError(t, err)
	require.Equal(t, 60, res.Dimensions, "narrow inputs are not projected")
}

func TestAutoRadius(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 0.5/math.Cbrt(100), rowsketch.AutoRadius(3), 1e-15)
	require.InDelta(t, 0.10772, rowsketch.AutoRadius(3), 1e-5)

	d := 100.0
	want := 0.5 * math.Sqrt(d/6-1.744*math.Sqrt(7*d/180))
	require.InDelta(t, want, rowsketch.AutoRadius(100), 1e-15)
}

func TestTable(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDenseFrom([][]float64{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)
	res, err := rowsketch.New(rowsketch.WithRadius(0.5)).Compute(a)
	require.NoError(t, err)

	tab, err := res.Table([]string{"x", "y"}, []float64{10, 0}, []float64{20, 2})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", dataset.FrequencyLabel}, tab.Labels)
	require.Equal(t, [][]float64{{10, 2, 2}, {20, 0, 1}}, tab.Rows)

	_, err = res.Table(nil, []float64{0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCompute_Logs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	a := threeClusters(t, 2)
	_, err := rowsketch.New(rowsketch.WithRadius(1), rowsketch.WithLogger(zerolog.New(&buf))).Compute(a)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"exemplars":3`)
}

func TestOptionsPanic(t *testing.T) {
	require.Panics(t, func() { rowsketch.WithRadius(math.NaN()) })
	require.Panics(t, func() { rowsketch.WithRand(nil) })
	require.Panics(t, func() { rowsketch.WithMinValidFraction(2) })
	require.Panics(t, func() { rowsketch.WithMaxDimensions(-1) })
}
