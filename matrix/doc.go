// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra layer of lvsketch.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose cells may hold NaN to mark a
//     missing observation, with safe accessors (At/Set never panic) and
//     no-copy row views for distance loops.
//   - Kernels used by the sketchers: Mul, Transpose, Gram,
//     ScaleRows/ScaleColumns and ReplaceInfNaN.
//   - SVD / SVDInto, a Golub–Reinsch singular value decomposition for tall or
//     square matrices with descending, clamped singular values and a numeric rank.
//   - Column statistics: ColumnBounds, NormalizeColumns, Denormalize and
//     NaN-aware SumsOfSquares.
//   - ToGonum / FromGonum bridges to gonum.org/v1/gonum/mat.
//
// All kernels are deterministic (fixed loop orders) and return sentinel
// errors wrapped with an operation tag; use errors.Is to match them.
package matrix
