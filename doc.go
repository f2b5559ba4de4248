// SPDX-License-Identifier: MIT

// Package lvsketch is a toolkit for sketching dense numeric matrices: reducing
// a large table to a small piece that keeps its structure.
//
// Three sketches are provided, each in its own package:
//
//	rowsketch/ — exemplar rows with member counts (one online pass, radius balls)
//	colsketch/ — greedy column subset preserving row-to-row distances
//	cur/       — CUR decomposition A ≈ C·U·R from norm-proportional samples
//
// They rest on:
//
//	matrix/    — row-major Dense matrix, kernels, Golub–Reinsch SVD, column statistics
//	sampling/  — weighted sampling without replacement
//	distance/  — NaN-aware distances, pairwise row distances, Frobenius correlation
//	dataset/   — CSV sources, sketch tables, synthetic datasets
//	render/    — scatter plots of sketch tables
//	config/    — YAML run configuration
//	metrics/   — Prometheus run metrics
//
// Missing values are NaN throughout. The lvsketch command (cmd/lvsketch)
// wires everything into a CLI.
package lvsketch
