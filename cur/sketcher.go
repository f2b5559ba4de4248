// SPDX-License-Identifier: MIT

package cur

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/lvsketch/distance"
	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/katalvlaran/lvsketch/sampling"
	"github.com/rs/zerolog"
)

// checkTolerance bounds the debug-level C·U·R vs A comparison.
const checkTolerance = 1e-9

// Sketcher computes CUR decompositions A ≈ C·U·R from norm-proportional
// row and column samples. The Sketcher owns the Gram SVD buffers and reuses
// them across calls; Compute serializes on an internal mutex.
type Sketcher struct {
	mu sync.Mutex

	// Gram SVD scratch, c×c, allocated on the first Compute.
	gramU, gramV *matrix.Dense
	gramD        []float64

	rows, cols, rank int
	seed             int64
	rng              *rand.Rand
	sampling         []sampling.Option
	core             Core
	tol              float64
	log              zerolog.Logger
}

// New returns a Sketcher. WithRows and WithCols are required before Compute.
func New(opts ...Option) *Sketcher {
	s := &Sketcher{
		seed: DefaultSeed,
		core: CoreIntersection,
		tol:  DefaultRankTolerance,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Result is one CUR sketch of an m×n matrix.
//   - RowPicks (len r) and ColPicks (len c) are in draw order.
//   - C is m×c, U is c×r, R is r×n.
//   - Rank is the effective rank used for U (≤ the requested k).
//   - Correlation compares row-pair distances on all columns with those on
//     ColPicks (distance.Frobenius).
//   - Unconverged counts Gram singular values whose QR iteration hit the cap.
type Result struct {
	RowPicks    []int
	ColPicks    []int
	C, U, R     *matrix.Dense
	Rank        int
	Correlation float64
	Unconverged int
}

// Compute sketches a.
//
// Implementation:
//   - Stage 1: validate r, c, k against a's shape (ErrConfig, nothing computed).
//   - Stage 2: NaN-aware row/column sums of squares; p = rows/total, q = cols/total.
//   - Stage 3: sample c columns from q, then r rows from p, with one source per call.
//   - Stage 4: C[:,t] = A[:,j_t]/sqrt(c·q[j_t]); R[t,:] = A[i_t,:]/sqrt(r·p[i_t]);
//     Ψ = rows i_t of C with R's scaling.
//   - Stage 5: SVD of the Gram matrix (ΨᵀΨ or CᵀC) into the sketcher's
//     buffers; shrink k while D[k-1] is zero (or at most tol·D_0).
//   - Stage 6: Φ = Σ_{t<k} v_t v_tᵀ / D_t, which must stay finite; U = Φ·Ψᵀ.
//   - Stage 7: quality = Frobenius(pairs on all columns, pairs on ColPicks).
//
// Missing cells count as 0 in the factors and the sampling masses; the
// quality score uses NaN-aware distances on the original values.
//
// Errors:
//   - ErrConfig; sampling.ErrStarvation when fewer than r rows (c columns)
//     carry mass; matrix.ErrNaNInf for infinite cells or an overflowing Φ.
//
// Complexity:
//   - Time O(m·n + m·c² + c³ + c·m²/2), Space O(m·c + r·n + m²/2).
func (s *Sketcher) Compute(a matrix.Matrix) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	m, n := a.Rows(), a.Cols()
	r, c, k := s.rows, s.cols, s.rank
	if r <= 0 || c <= 0 || r > m || c > n {
		return nil, curErrorf(methodCompute, fmt.Errorf("r=%d c=%d for a %dx%d matrix: %w", r, c, m, n, ErrConfig))
	}
	if k == 0 {
		k = min(r, c)
	}
	if k > min(r, c) {
		return nil, curErrorf(methodCompute, fmt.Errorf("rank %d exceeds min(r=%d, c=%d): %w", k, r, c, ErrConfig))
	}

	rowSS, colSS, total, err := matrix.SumsOfSquares(a)
	if err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	if total == 0 {
		return nil, curErrorf(methodCompute, fmt.Errorf("matrix has zero norm: %w", ErrConfig))
	}
	p := make([]float64, m)
	q := make([]float64, n)
	for i := range rowSS {
		p[i] = rowSS[i] / total
	}
	for j := range colSS {
		q[j] = colSS[j] / total
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(s.seed))
	}
	colPicks, err := sampling.Sample(rng, q, c, s.sampling...)
	if err != nil {
		return nil, curErrorf(methodCompute, fmt.Errorf("columns: %w", err))
	}
	rowPicks, err := sampling.Sample(rng, p, r, s.sampling...)
	if err != nil {
		return nil, curErrorf(methodCompute, fmt.Errorf("rows: %w", err))
	}

	res := &Result{RowPicks: rowPicks, ColPicks: colPicks}
	filled, err := matrix.ReplaceInfNaN(a, 0)
	if err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	psi, g, err := s.factors(res, filled, p, q)
	if err != nil {
		return nil, curErrorf(methodCompute, err)
	}

	if err = s.grow(c); err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	if _, res.Unconverged, err = matrix.SVDInto(g, s.gramU, s.gramV, s.gramD); err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	if res.Unconverged > 0 {
		s.log.Warn().Int("unconverged", res.Unconverged).Msg("cur: svd hit the sweep cap")
	}
	res.Rank = effectiveRank(s.gramD, k, s.tol)
	if res.Rank == 0 {
		return nil, curErrorf(methodCompute, fmt.Errorf("rank-deficient sample: %w", ErrConfig))
	}
	if res.Rank < k {
		s.log.Debug().Int("requested", k).Int("effective", res.Rank).Msg("cur: rank reduced")
	}

	if res.U, err = core(s.gramV, s.gramD, res.Rank, psi); err != nil {
		return nil, curErrorf(methodCompute, err)
	}

	orig, err := matrix.AsDense(a)
	if err != nil {
		return nil, curErrorf(methodCompute, err)
	}
	if res.Correlation, err = quality(orig, colPicks); err != nil {
		return nil, curErrorf(methodCompute, err)
	}

	// The reconstruction costs O(m·c·r + m·r·n), so it only runs for debug logs.
	if e := s.log.Debug(); e.Enabled() {
		ok, err := res.Matches(filled, checkTolerance, checkTolerance)
		e.Err(err).Bool("reconstructs", ok).Msg("cur: reconstruction check")
	}

	s.log.Info().
		Ints("col_picks", colPicks).
		Ints("row_picks", rowPicks).
		Int("rank", res.Rank).
		Float64("correlation", res.Correlation).
		Msg("cur sketch computed")

	return res, nil
}

// factors fills res.C and res.R and returns Ψ and the Gram matrix for the core.
func (s *Sketcher) factors(res *Result, a *matrix.Dense, p, q []float64) (psi, g *matrix.Dense, err error) {
	m, n := a.Shape()
	r, c := len(res.RowPicks), len(res.ColPicks)

	colScale := make([]float64, c)
	for t, j := range res.ColPicks {
		colScale[t] = 1 / math.Sqrt(float64(c)*q[j])
	}
	rowScale := make([]float64, r)
	for t, i := range res.RowPicks {
		rowScale[t] = 1 / math.Sqrt(float64(r)*p[i])
	}

	picked, err := a.Induced(indexRange(m), res.ColPicks)
	if err != nil {
		return nil, nil, err
	}
	if res.C, err = matrix.ScaleColumns(picked, colScale); err != nil {
		return nil, nil, err
	}
	if picked, err = a.Induced(res.RowPicks, indexRange(n)); err != nil {
		return nil, nil, err
	}
	if res.R, err = matrix.ScaleRows(picked, rowScale); err != nil {
		return nil, nil, err
	}
	if picked, err = res.C.Induced(res.RowPicks, indexRange(c)); err != nil {
		return nil, nil, err
	}
	if psi, err = matrix.ScaleRows(picked, rowScale); err != nil {
		return nil, nil, err
	}

	if s.core == CoreLinearTime {
		g, err = matrix.Gram(res.C)
	} else {
		g, err = matrix.Gram(psi)
	}

	return psi, g, err
}

// grow sizes the Gram SVD buffers for a c×c Gram matrix. Buffers of the
// right size are kept; SVDInto overwrites them.
func (s *Sketcher) grow(c int) error {
	if s.gramV != nil && s.gramV.Rows() == c {
		return nil
	}
	var err error
	if s.gramU, err = matrix.NewDense(c, c); err != nil {
		return err
	}
	if s.gramV, err = matrix.NewDense(c, c); err != nil {
		return err
	}
	s.gramD = make([]float64, c)

	return nil
}

// effectiveRank returns the largest k' <= k with D[k'-1] > tol·D[0].
func effectiveRank(d []float64, k int, tol float64) int {
	if len(d) == 0 || d[0] <= 0 {
		return 0
	}
	cut := tol * d[0]
	for k > 0 && !(d[k-1] > cut) {
		k--
	}

	return k
}

// core assembles U = Φ·Ψᵀ with Φ = Σ_{t<k} v_t v_tᵀ / D_t. Φ is built in
// strict mode, so an overflow surfaces as matrix.ErrNaNInf.
func core(vm *matrix.Dense, d []float64, k int, psi *matrix.Dense) (*matrix.Dense, error) {
	c := len(d)
	phi, err := matrix.NewDenseWith(c, c, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, err
	}
	v := vm.RawData()
	err = phi.Apply(func(a, b int, _ float64) float64 {
		var acc float64
		for t := 0; t < k; t++ {
			acc += v[a*c+t] * v[b*c+t] / d[t]
		}

		return acc
	})
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	psiT, err := matrix.Transpose(psi)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(phi, psiT)
}

// quality compares row-pair distances over all columns with those over picks.
func quality(a *matrix.Dense, picks []int) (float64, error) {
	pairs := distance.NumPairs(a.Rows())
	all := make([]float64, pairs)
	sel := make([]float64, pairs)
	if err := distance.Pairwise(a, indexRange(a.Cols()), all); err != nil {
		return math.NaN(), err
	}
	if err := distance.Pairwise(a, picks, sel); err != nil {
		return math.NaN(), err
	}

	return distance.Frobenius(all, sel), nil
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
