// SPDX-License-Identifier: MIT
// Package: lvsketch/sampling
//
// errors.go — sentinel errors for the sampling package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Starvation is a runtime failure, distinct from the validation classes
//     (bad count, invalid mass), so callers can tell "bad request" from
//     "the masses cannot support this request".

package sampling

import (
	"errors"
	"fmt"
)

// ErrBadCount indicates k < 0 or k > len(p).
var ErrBadCount = errors.New("sampling: count out of range")

// ErrNegativeMass indicates a negative, NaN or infinite entry in the mass vector.
var ErrNegativeMass = errors.New("sampling: mass must be finite and non-negative")

// ErrStarvation indicates that k distinct indices could not be drawn: fewer
// than k items carry positive mass, or the accept/reject retry budget ran out.
var ErrStarvation = errors.New("sampling: remaining mass exhausted")

// ErrNilRand indicates a nil random source.
var ErrNilRand = errors.New("sampling: nil random source")

// samplingErrorf wraps err with a method tag, preserving the sentinel.
func samplingErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
