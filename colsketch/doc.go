// SPDX-License-Identifier: MIT

// Package colsketch picks a small set of columns that preserves the
// row-to-row distance structure of a matrix.
//
// Selection is greedy and deterministic: each round adds the column whose
// inclusion makes the row-pair distance vector most correlated (cosine, see
// distance.Frobenius) with the distance vector over all columns. Rounds stop
// at a column budget, a correlation ceiling, or when the score would drop.
// Candidates within a round can be scored in parallel with WithWorkers.
package colsketch
