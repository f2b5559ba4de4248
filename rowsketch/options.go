// SPDX-License-Identifier: MIT

package rowsketch

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

// DefaultSeed seeds the per-call source when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 4123

// Option configures a Sketcher. Constructors panic on meaningless input.
type Option func(*Sketcher)

// WithRadius sets the ball radius; r <= 0 selects AutoRadius. Panics on NaN or ±Inf.
func WithRadius(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		panic("rowsketch: WithRadius: radius must be finite")
	}

	return func(s *Sketcher) { s.radius = r }
}

// WithSeed makes every Compute call shuffle from rand.NewSource(seed).
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
		panic("rowsketch: WithRand(nil)")
	}

	return func(s *Sketcher) { s.rng = r }
}

// WithMinValidFraction treats a row/exemplar pair as incomparable when fewer
// than f·cols dimensions are present in both. 0 (default) only rejects pairs
// with no shared dimension. Panics outside [0,1].
func WithMinValidFraction(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("rowsketch: WithMinValidFraction: f must be in [0,1]")
	}

	return func(s *Sketcher) { s.minValid = f }
}

// WithMaxDimensions compares rows in a d-dimensional Gaussian random
// projection when the matrix has more than d columns; 0 (default) disables
// projection. Panics when d < 0.
func WithMaxDimensions(d int) Option {
	if d < 0 {
		panic("rowsketch: WithMaxDimensions: d must be >= 0")
	}

	return func(s *Sketcher) { s.maxDims = d }
}

// WithLogger attaches a structured logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sketcher) { s.log = l }
}
