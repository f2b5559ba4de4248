// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"
	"math/rand"
)

const methodSample = "Sample"

// Sample draws k distinct indices from [0, len(p)) without replacement, each
// draw proportional to the mass p[i] among the candidates still eligible.
// p need not sum to 1. The result is in draw order.
//
// Implementation:
//   - Stage 1: validate rng, k and every mass; count positive masses.
//   - Stage 2: fewer than k positive masses → ErrStarvation without drawing.
//   - Stage 3: dispatch to the configured Strategy.
//
// Errors:
//   - ErrNilRand, ErrBadCount, ErrNegativeMass, ErrStarvation.
//
// Determinism:
//   - Fully determined by the state of rng.
//
// Complexity:
//   - Renormalize: O(n + k log n). AcceptReject: O(n) per draw, retries bounded.
func Sample(rng *rand.Rand, p []float64, k int, opts ...Option) ([]int, error) {
	if rng == nil {
		return nil, samplingErrorf(methodSample, ErrNilRand)
	}
	n := len(p)
	if k < 0 || k > n {
		return nil, samplingErrorf(methodSample, fmt.Errorf("k=%d n=%d: %w", k, n, ErrBadCount))
	}
	positive := 0
	for i, v := range p {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, samplingErrorf(methodSample, fmt.Errorf("p[%d]=%v: %w", i, v, ErrNegativeMass))
		}
		if v > 0 {
			positive++
		}
	}
	if k == 0 {
		return []int{}, nil
	}
	if positive < k {
		return nil, samplingErrorf(methodSample, fmt.Errorf("%d positive masses for k=%d: %w", positive, k, ErrStarvation))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.strategy == AcceptReject {
		return acceptReject(rng, p, k, cfg.maxRetries)
	}

	return renormalize(rng, p, k), nil
}

// acceptReject repeats a full cumulative scan per draw: the first index whose
// running mass exceeds r ∈ [0, total) is accepted unless already picked, in
// which case the whole draw is repeated.
func acceptReject(rng *rand.Rand, p []float64, k, maxRetries int) ([]int, error) {
	var total float64
	for _, v := range p {
		total += v
	}
	picked := make([]bool, len(p))
	out := make([]int, 0, k)

	var (
		r, cum   float64
		j, pick  int
		rejected int
	)
	for len(out) < k {
		r = rng.Float64() * total
		cum, pick = 0, -1
		for j = 0; j < len(p); j++ {
			cum += p[j]
			if cum > r {
				pick = j

				break
			}
		}
		if pick < 0 || picked[pick] {
			rejected++
			if rejected > maxRetries {
				return nil, samplingErrorf(methodSample, fmt.Errorf("%d draws rejected after %d picks: %w", rejected, len(out), ErrStarvation))
			}

			continue
		}
		rejected = 0
		picked[pick] = true
		out = append(out, pick)
	}

	return out, nil
}

// renormalize draws from the remaining mass held in a Fenwick tree.
// The caller guarantees at least k positive masses.
func renormalize(rng *rand.Rand, p []float64, k int) []int {
	tree := newFenwick(p)
	mass := make([]float64, len(p))
	copy(mass, p)
	out := make([]int, 0, k)

	var pick int
	for len(out) < k {
		pick = tree.search(rng.Float64() * tree.total())
		if pick >= len(mass) || mass[pick] == 0 {
			// Rounding residue in the tree can land on a removed or zero slot.
			pick = nearestLive(mass, pick)
		}
		tree.add(pick, -mass[pick])
		mass[pick] = 0
		out = append(out, pick)
	}

	return out
}

// nearestLive returns the closest index to from (searching down first, since
// overshoot is the common rounding case) whose mass is still positive.
func nearestLive(mass []float64, from int) int {
	if from >= len(mass) {
		from = len(mass) - 1
	}
	for i := from; i >= 0; i-- {
		if mass[i] > 0 {
			return i
		}
	}
	for i := from + 1; i < len(mass); i++ {
		if mass[i] > 0 {
			return i
		}
	}

	return from
}
