// SPDX-License-Identifier: MIT

package colsketch

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/distance"
	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Sketcher selects, greedily, the columns whose row-pair distances best
// track the distances over all columns.
//
// A Sketcher owns the O(rows²) distance buffers and reuses them across
// rounds and calls; Compute calls on one Sketcher are serialized.
type Sketcher struct {
	maxColumns     int
	maxCorrelation float64
	exclude        map[string]struct{}
	workers        int
	log            zerolog.Logger

	mu       sync.Mutex
	target   []float64
	selected []float64
	cand     [][]float64 // one per worker
	scores   []float64
}

// New returns a Sketcher with one worker and no exclusions.
func New(opts ...Option) *Sketcher {
	s := &Sketcher{
		exclude: make(map[string]struct{}),
		workers: 1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Result lists the selected columns in selection order.
// Correlations[t] is the best correlation of the round that accepted Columns[t].
type Result struct {
	Columns      []int
	Correlations []float64
	Names        []string
}

// Correlation returns the correlation reached by the last accepted column,
// or NaN when nothing was selected.
func (r *Result) Correlation() float64 {
	if len(r.Correlations) == 0 {
		return math.NaN()
	}

	return r.Correlations[len(r.Correlations)-1]
}

// Compute runs greedy forward selection over the columns of a.
//
// Implementation:
//   - Stage 1: target = row-pair distances summed over every column; the
//     exclusion list only restricts candidacy.
//   - Stage 2: each round scores every remaining candidate k by
//     Frobenius(target, selected + d(k)) and keeps the highest; ties go to the
//     lowest column index and NaN scores never win.
//   - Stage 3: the pick is accepted unless its score is below the previous
//     round's. Selection stops before a round once MaxColumns columns are
//     chosen or the last score exceeded MaxCorrelation.
//
// names label the columns (missing entries fall back to dataset.DefaultLabel)
// and drive the exclusion list. Missing cells skip their distance terms.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrConfig for fewer than two rows or no candidate.
//
// Complexity:
//   - Time O(s·n·m²/2) for s selected columns, Space O((2+workers)·m²/2).
func (s *Sketcher) Compute(a matrix.Matrix, names []string) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, colErrorf(methodCompute, err)
	}
	src, err := matrix.AsDense(a)
	if err != nil {
		return nil, colErrorf(methodCompute, err)
	}
	m, n := src.Shape()
	if m < 2 {
		return nil, colErrorf(methodCompute, fmt.Errorf("%d rows, need at least 2: %w", m, ErrConfig))
	}
	candidates := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if _, skip := s.exclude[label(names, j)]; !skip {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 0 {
		return nil, colErrorf(methodCompute, fmt.Errorf("every column is excluded: %w", ErrConfig))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(distance.NumPairs(m))

	all := make([]int, n)
	for j := range all {
		all[j] = j
	}
	if err = distance.Pairwise(src, all, s.target); err != nil {
		return nil, colErrorf(methodCompute, err)
	}

	res := &Result{}
	chosen := make([]bool, n)
	remaining := make([]int, 0, len(candidates))
	prevBest := 0.0
	for {
		if s.maxColumns > 0 && len(res.Columns) >= s.maxColumns {
			break
		}
		if s.maxCorrelation > 0 && len(res.Columns) > 0 && prevBest > s.maxCorrelation {
			break
		}
		remaining = remaining[:0]
		for _, j := range candidates {
			if !chosen[j] {
				remaining = append(remaining, j)
			}
		}
		if len(remaining) == 0 {
			break
		}

		if err = s.score(src, remaining); err != nil {
			return nil, colErrorf(methodCompute, err)
		}
		best, bestR := -1, math.NaN()
		for t, r := range s.scores[:len(remaining)] {
			if math.IsNaN(r) {
				continue
			}
			if best < 0 || r > bestR {
				best, bestR = remaining[t], r
			}
		}
		if best < 0 || bestR < prevBest {
			break
		}

		if err = distance.AddColumn(src, best, s.selected, s.selected); err != nil {
			return nil, colErrorf(methodCompute, err)
		}
		chosen[best] = true
		res.Columns = append(res.Columns, best)
		res.Correlations = append(res.Correlations, bestR)
		prevBest = bestR
		s.log.Debug().Int("round", len(res.Columns)).Int("column", best).
			Str("name", label(names, best)).Float64("correlation", bestR).Msg("colsketch: column accepted")
	}
	res.Names = dataset.SelectLabels(padNames(names, n), res.Columns)

	if len(res.Columns) == 0 {
		s.log.Warn().Msg("colsketch: no column carries distance information")
	}
	s.log.Info().
		Ints("columns", res.Columns).
		Strs("names", res.Names).
		Float64("correlation", res.Correlation()).
		Msg("column sketch computed")

	return res, nil
}

// reset sizes the scratch buffers for pairs slots, reusing their storage.
func (s *Sketcher) reset(pairs int) {
	s.target = grow(s.target, pairs)
	s.selected = grow(s.selected, pairs)
	if len(s.cand) != s.workers {
		s.cand = make([][]float64, s.workers)
	}
	for w := range s.cand {
		s.cand[w] = grow(s.cand[w], pairs)
	}
}

// score fills s.scores[t] with the correlation of candidate remaining[t].
func (s *Sketcher) score(a *matrix.Dense, remaining []int) error {
	s.scores = grow(s.scores, len(remaining))
	workers := min(s.workers, len(remaining))
	if workers <= 1 {
		return s.scoreStripe(a, remaining, 0, 1, s.cand[0])
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error { return s.scoreStripe(a, remaining, w, workers, s.cand[w]) })
	}

	return g.Wait()
}

func (s *Sketcher) scoreStripe(a *matrix.Dense, remaining []int, from, step int, buf []float64) error {
	for t := from; t < len(remaining); t += step {
		if err := distance.AddColumn(a, remaining[t], s.selected, buf); err != nil {
			return err
		}
		s.scores[t] = distance.Frobenius(s.target, buf)
	}

	return nil
}

// grow returns buf resized to n and zeroed.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}

	return buf
}

func label(names []string, j int) string {
	if j < len(names) && names[j] != "" {
		return names[j]
	}

	return dataset.DefaultLabel(j)
}

func padNames(names []string, n int) []string {
	out := make([]string, n)
	for j := range out {
		out[j] = label(names, j)
	}

	return out
}
