// SPDX-License-Identifier: MIT

package rowsketch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsketch/distance"
	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/rs/zerolog"
)

const methodCompute = "Compute"

// Sketcher clusters rows online into balls around exemplar rows.
// It holds configuration only; concurrent Compute calls are safe unless the
// Sketcher was built WithRand.
type Sketcher struct {
	radius   float64
	seed     int64
	rng      *rand.Rand
	minValid float64
	maxDims  int
	log      zerolog.Logger
}

// New returns a Sketcher with an automatic radius and DefaultSeed.
func New(opts ...Option) *Sketcher {
	s := &Sketcher{seed: DefaultSeed, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Result is a row sketch.
//   - Exemplars[e] is a copy of input row ExemplarRows[e].
//   - Members[e] lists the rows assigned to exemplar e in input order; it
//     starts with ExemplarRows[e]. Every row appears in exactly one list.
//   - Radius and Delta = Radius² are the thresholds actually used.
//   - Dimensions is the width rows were compared in (< Cols when projected).
type Result struct {
	Exemplars    [][]float64
	ExemplarRows []int
	Members      [][]int
	Radius       float64
	Delta        float64
	Dimensions   int
}

// Frequencies returns the member count of every exemplar.
func (r *Result) Frequencies() []int {
	out := make([]int, len(r.Members))
	for e, members := range r.Members {
		out[e] = len(members)
	}

	return out
}

// Compute makes one pass over the rows of a.
//
// Implementation:
//   - Row 0 becomes exemplar 0.
//   - For every later row, the current exemplars are visited in a fresh
//     random order. The scan stops at the first exemplar closer than Delta
//     (squared NaN-aware distance); otherwise the closest seen is kept.
//   - A row closer than Delta joins that exemplar, else it becomes a new one.
//
// Pairs with no comparable dimension (see WithMinValidFraction) are skipped,
// so a row of missing values always opens its own exemplar. With
// WithMaxDimensions the projection is drawn from the same per-call source
// before the pass; the automatic radius always uses the input width.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrNaNInf for an infinite cell.
//
// Complexity:
//   - Time O(m·E·n) for E exemplars, Space O(E·n).
func (s *Sketcher) Compute(a matrix.Matrix) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("rowsketch: %s: %w", methodCompute, err)
	}
	src, err := matrix.AsDense(a)
	if err != nil {
		return nil, fmt.Errorf("rowsketch: %s: %w", methodCompute, err)
	}
	var inf error
	src.Do(func(i, j int, v float64) bool {
		if math.IsInf(v, 0) {
			inf = fmt.Errorf("cell (%d,%d): %w", i, j, matrix.ErrNaNInf)
			return false
		}
		return true
	})
	if inf != nil {
		return nil, fmt.Errorf("rowsketch: %s: %w", methodCompute, inf)
	}

	m, n := src.Shape()
	res := &Result{Radius: s.radius}
	if res.Radius <= 0 {
		res.Radius = AutoRadius(n)
	}
	res.Delta = res.Radius * res.Radius

	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(s.seed))
	}
	work := src
	if s.maxDims > 0 && n > s.maxDims {
		if work, err = project(src, s.maxDims, rng); err != nil {
			return nil, fmt.Errorf("rowsketch: %s: %w", methodCompute, err)
		}
		s.log.Debug().Int("from", n).Int("to", s.maxDims).Msg("rowsketch: rows projected")
	}
	res.Dimensions = work.Cols()

	res.addExemplar(src, 0)
	order := make([]int, 0, 16)
	var row []float64
	for i := 1; i < m; i++ {
		row = work.RowView(i)
		order = order[:0]
		for e := range res.ExemplarRows {
			order = append(order, e)
		}
		rng.Shuffle(len(order), func(x, y int) { order[x], order[y] = order[y], order[x] })

		nearest, best := -1, math.Inf(1)
		for _, e := range order {
			d := distance.SquaredDistanceBounded(work.RowView(res.ExemplarRows[e]), row, res.Delta, s.minValid)
			if math.IsNaN(d) {
				continue
			}
			if d < best {
				nearest, best = e, d
			}
			if best < res.Delta {
				break
			}
		}
		if nearest >= 0 && best < res.Delta {
			res.Members[nearest] = append(res.Members[nearest], i)
		} else {
			res.addExemplar(src, i)
		}
	}

	s.log.Info().
		Int("rows", m).
		Int("exemplars", len(res.Exemplars)).
		Float64("radius", res.Radius).
		Msg("row sketch computed")

	return res, nil
}

func (r *Result) addExemplar(src *matrix.Dense, i int) {
	r.Exemplars = append(r.Exemplars, append([]float64(nil), src.RowView(i)...))
	r.ExemplarRows = append(r.ExemplarRows, i)
	r.Members = append(r.Members, []int{i})
}
