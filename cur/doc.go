// SPDX-License-Identifier: MIT

// Package cur builds CUR sketches: A ≈ C·U·R where C holds sampled columns
// of A, R holds sampled rows, and U is a small core linking them.
//
// Rows and columns are drawn without replacement with probability
// proportional to their squared norm (package sampling) and rescaled so the
// sample is an unbiased estimate of A. U is the truncated pseudo-inverse of
// a c×c Gram matrix times Ψᵀ, Ψ being the sampled rows of C. The default
// intersection core (G = ΨᵀΨ) makes the sketch exact when every row and
// column is sampled; CoreLinearTime uses G = CᵀC instead.
//
// Each Result also carries a quality score: the cosine between row-pair
// distances over all columns and over the sampled columns.
package cur
