// SPDX-License-Identifier: MIT
// Package: lvsketch/cur
//
// options.go — functional options for the CUR sketcher.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Compute never panics; request/input mismatches surface as ErrConfig.
//   • Determinism is explicit: WithSeed (a fresh source per Compute call) or
//     WithRand (caller-owned source).

package cur

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsketch/sampling"
	"github.com/rs/zerolog"
)

// Core selects the Gram matrix whose pseudo-inverse forms U.
type Core int

const (
	// CoreIntersection uses G = ΨᵀΨ, Ψ being the sampled rows of C. With
	// r = m, c = n and k no larger than the numeric rank of A, C·U·R
	// reproduces A up to rounding. A positive WithRankTolerance may cut
	// components and break this.
	CoreIntersection Core = iota

	// CoreLinearTime uses G = CᵀC (Drineas, Kannan & Mahoney, LinearTimeCUR).
	CoreLinearTime
)

// String implements fmt.Stringer.
func (c Core) String() string {
	switch c {
	case CoreIntersection:
		return "intersection"
	case CoreLinearTime:
		return "linear-time"
	default:
		return "unknown"
	}
}

// ParseCore maps a configuration string to a Core.
func ParseCore(s string) (Core, bool) {
	switch s {
	case "", "intersection":
		return CoreIntersection, true
	case "linear-time", "linear":
		return CoreLinearTime, true
	default:
		return 0, false
	}
}

const (
	// DefaultSeed seeds the per-call source when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 4123

	// DefaultRankTolerance is the relative cut-off below which a Gram singular
	// value counts as zero: D_t <= tol·D_0. At 0 only values the SVD clamped
	// to exactly 0 are dropped.
	DefaultRankTolerance = 0.0
)

// Option configures a Sketcher.
type Option func(*Sketcher)

// WithRows sets r, the number of sampled rows. Panics when r <= 0.
func WithRows(r int) Option {
	if r <= 0 {
		panic("cur: WithRows: r must be > 0")
	}

	return func(s *Sketcher) { s.rows = r }
}

// WithCols sets c, the number of sampled columns. Panics when c <= 0.
func WithCols(c int) Option {
	if c <= 0 {
		panic("cur: WithCols: c must be > 0")
	}

	return func(s *Sketcher) { s.cols = c }
}

// WithRank sets the target rank k; 0 means min(r, c). Panics when k < 0.
func WithRank(k int) Option {
	if k < 0 {
		panic("cur: WithRank: k must be >= 0")
	}

	return func(s *Sketcher) { s.rank = k }
}

// WithSeed makes every Compute call draw from rand.NewSource(seed).
func WithSeed(seed int64) Option {
	return func(s *Sketcher) {
		s.seed = seed
		s.rng = nil
	}
}

// WithRand supplies a caller-owned source; successive calls advance it.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cur: WithRand(nil)")
	}

	return func(s *Sketcher) { s.rng = r }
}

// WithSampling forwards options to sampling.Sample (strategy, retry budget).
func WithSampling(opts ...sampling.Option) Option {
	return func(s *Sketcher) { s.sampling = append(s.sampling, opts...) }
}

// WithCore selects the Gram matrix used for U. Panics on an unknown core.
func WithCore(c Core) Option {
	if c != CoreIntersection && c != CoreLinearTime {
		panic("cur: WithCore: unknown core")
	}

	return func(s *Sketcher) { s.core = c }
}

// WithRankTolerance sets the relative singular value cut-off. The Gram matrix
// is built from rescaled samples, so its leading direction may come from a
// low-mass row or column; a positive tol can then discard the component that
// carries most of A. Panics unless 0 <= tol < 1.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 || tol >= 1 {
		panic("cur: WithRankTolerance: tol must be in [0,1)")
	}

	return func(s *Sketcher) { s.tol = tol }
}

// WithLogger attaches a structured logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sketcher) { s.log = l }
}
