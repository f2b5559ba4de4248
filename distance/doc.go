// SPDX-License-Identifier: MIT

// Package distance holds the NaN-aware distance primitives shared by the
// sketchers.
//
//   - SquaredDistance / SquaredDistanceBounded compare two rows, skipping
//     missing cells and extrapolating for them.
//   - Pairwise / AddColumn build flattened row-pair distance vectors
//     (length NumPairs(rows), slot order given by PairIndex) one column at a
//     time, so greedy selectors can grow a vector by one column without
//     recomputing it.
//   - Frobenius scores how well one distance vector tracks another.
//
// Missing data never turns into zero here: a NaN distance means "no evidence"
// and accumulation skips it.
package distance
