// SPDX-License-Identifier: MIT

// Package sampling draws k distinct indices from n items with probability
// proportional to a non-negative mass vector (norm-proportional sampling for
// CUR sketches).
//
// Two strategies are available:
//
//   - Renormalize (default): a Fenwick tree over the masses; every pick is
//     removed and the next draw is taken from the remaining mass. O(log n)
//     per draw and no retries.
//   - AcceptReject: the legacy scan that redraws on duplicates. It can loop
//     for a long time when the remaining mass sits on picked items, so the
//     number of consecutive rejections is capped (WithMaxRetries) and the
//     call fails with ErrStarvation past the cap.
//
// Both are deterministic for a seeded *rand.Rand.
package sampling
