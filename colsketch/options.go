// SPDX-License-Identifier: MIT
// Package: lvsketch/colsketch
//
// options.go — functional options for the column sketcher.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Without WithMaxColumns or WithMaxCorrelation, selection runs until the
//     best correlation stops improving or the candidates run out.

package colsketch

import (
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures a Sketcher.
type Option func(*Sketcher)

// WithMaxColumns caps the number of selected columns; 0 means no cap.
// Panics when n < 0.
func WithMaxColumns(n int) Option {
	if n < 0 {
		panic("colsketch: WithMaxColumns: n must be >= 0")
	}

	return func(s *Sketcher) { s.maxColumns = n }
}

// WithMaxCorrelation stops selection once a round's best correlation
// exceeds ceiling; a round that lands exactly on it is followed by another.
// 0 disables the ceiling. Panics outside [0,1].
func WithMaxCorrelation(ceiling float64) Option {
	if math.IsNaN(ceiling) || ceiling < 0 || ceiling > 1 {
		panic("colsketch: WithMaxCorrelation: ceiling must be in [0,1]")
	}

	return func(s *Sketcher) { s.maxCorrelation = ceiling }
}

// WithExclude removes columns with these names from candidacy, e.g. the
// frequencies column of a row sketch. Excluded columns still count in the
// target distances.
func WithExclude(names ...string) Option {
	return func(s *Sketcher) {
		for _, n := range names {
			s.exclude[n] = struct{}{}
		}
	}
}

// WithWorkers scores the candidates of one round on n goroutines; 0 means
// runtime.GOMAXPROCS(0). Rounds stay sequential. Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("colsketch: WithWorkers: n must be >= 0")
	}

	return func(s *Sketcher) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithLogger attaches a structured logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sketcher) { s.log = l }
}
