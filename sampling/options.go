// SPDX-License-Identifier: MIT
// Package: lvsketch/sampling
//
// options.go — functional options for Sample.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Sample itself never panics.

package sampling

// Strategy selects the draw algorithm.
type Strategy int

const (
	// Renormalize removes each picked mass from a Fenwick tree and draws from
	// the remaining mass. O(log n) per draw, never retries.
	Renormalize Strategy = iota

	// AcceptReject draws from the full mass and redraws when the pick is a
	// duplicate. Reproduces legacy picks; bounded by the retry budget.
	AcceptReject
)

// DefaultMaxRetries bounds consecutive rejected draws in AcceptReject mode.
const DefaultMaxRetries = 10000

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Renormalize:
		return "renormalize"
	case AcceptReject:
		return "accept-reject"
	default:
		return "unknown"
	}
}

// Option customizes a Sample call.
type Option func(*config)

type config struct {
	strategy   Strategy
	maxRetries int
}

func defaultConfig() config {
	return config{strategy: Renormalize, maxRetries: DefaultMaxRetries}
}

// WithStrategy picks the draw algorithm. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s != Renormalize && s != AcceptReject {
		panic("sampling: WithStrategy: unknown strategy")
	}

	return func(c *config) { c.strategy = s }
}

// WithMaxRetries sets the AcceptReject budget of consecutive rejected draws.
// Panics when n <= 0.
func WithMaxRetries(n int) Option {
	if n <= 0 {
		panic("sampling: WithMaxRetries: n must be > 0")
	}

	return func(c *config) { c.maxRetries = n }
}
