// SPDX-License-Identifier: MIT

package dataset

import "math/rand"

// DefaultSeed seeds Generate when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 123

// Option customizes OpenCSV and Generate.
// Option constructors panic on meaningless input; readers never do.
type Option func(*config)

type config struct {
	normalize bool
	rng       *rand.Rand
	seed      int64
}

func newConfig(opts ...Option) config {
	cfg := config{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// WithNormalize maps every column to [0,1] with its min/max when on.
func WithNormalize(on bool) Option {
	return func(c *config) { c.normalize = on }
}

// WithSeed seeds the generator deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand supplies the random source for Generate. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}
