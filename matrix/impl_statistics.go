// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the sketchers need around their core loops:
//     per-column bounds, min/max normalization to [0,1] and its inverse, and
//     NaN-aware sums of squares (CUR sampling masses).
//
// Exposed API:
//   - ColumnBounds(X)            -> (min, max)   // NaN ignored; all-NaN column → NaN bounds
//   - NormalizeColumns(X,min,max) -> Y           // (v-min)/(max-min); constant column → 0
//   - Denormalize(v,min,max)      -> v*(max-min)+min
//   - DenormalizeRow(row,min,max)               // in place, per column
//   - SumsOfSquares(X)           -> (rows, cols, total)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - NaN marks a missing cell. It is skipped by bounds and sums, and preserved by
//     (de)normalization so downstream NaN-aware distances still see it as missing.

package matrix

import (
	"fmt"
	"math"
)

const (
	opColumnBounds     = "ColumnBounds"
	opNormalizeColumns = "NormalizeColumns"
	opDenormalizeRow   = "DenormalizeRow"
	opSumsOfSquares    = "SumsOfSquares"
)

// ColumnBounds returns the per-column minimum and maximum over present cells.
//
// Behavior highlights:
//   - NaN cells are ignored; a column with no present cell gets NaN bounds.
//   - ±Inf participates like any other number.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnBounds(X Matrix) (min, max []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnBounds, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnBounds, err)
	}
	r, c := src.r, src.c
	min = make([]float64, c)
	max = make([]float64, c)
	for j := 0; j < c; j++ {
		min[j] = math.Inf(1)
		max[j] = math.Inf(-1)
	}

	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = src.data[base+j]
			if math.IsNaN(v) {
				continue
			}
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
	// Columns that never saw a value keep their ±Inf sentinels; report NaN instead.
	for j = 0; j < c; j++ {
		if min[j] > max[j] {
			min[j], max[j] = math.NaN(), math.NaN()
		}
	}

	return min, max, nil
}

// NormalizeColumns returns a copy of X with each column mapped into [0,1]:
// Y[i,j] = (X[i,j] − min[j]) / (max[j] − min[j]).
//
// Behavior highlights:
//   - A constant column (max == min) maps to 0 for every present cell.
//   - NaN cells stay NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (bounds length ≠ Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumns(X Matrix, min, max []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}
	if err := ValidateBounds(min, max, X.Cols()); err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}
	out, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	r, c := src.r, src.c
	var i, j, base int
	var v, span float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = src.data[base+j]
			span = max[j] - min[j]
			switch {
			case math.IsNaN(v):
				out.data[base+j] = v
			case span == 0 || math.IsNaN(span):
				out.data[base+j] = 0
			default:
				out.data[base+j] = (v - min[j]) / span
			}
		}
	}

	return out, nil
}

// Denormalize maps a normalized value back to the original scale.
// NaN stays NaN. Complexity: O(1).
func Denormalize(v, min, max float64) float64 {
	return v*(max-min) + min
}

// DenormalizeRow applies Denormalize to each cell of row in place.
// Errors: ErrDimensionMismatch when the bounds do not match len(row).
func DenormalizeRow(row, min, max []float64) error {
	if err := ValidateBounds(min, max, len(row)); err != nil {
		return matrixErrorf(opDenormalizeRow, err)
	}
	for j := range row {
		row[j] = Denormalize(row[j], min[j], max[j])
	}

	return nil
}

// SumsOfSquares returns Σ_j X[i,j]² per row, Σ_i X[i,j]² per column and the
// grand total. Missing (NaN) cells contribute 0; ±Inf is rejected.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (infinite cell).
//
// Complexity:
//   - Time O(r*c), Space O(r+c).
func SumsOfSquares(X Matrix) (rows, cols []float64, total float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, 0, matrixErrorf(opSumsOfSquares, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, 0, matrixErrorf(opSumsOfSquares, err)
	}
	r, c := src.r, src.c
	rows = make([]float64, r)
	cols = make([]float64, c)

	var i, j, base int
	var v, sq float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = src.data[base+j]
			if math.IsNaN(v) {
				continue
			}
			if math.IsInf(v, 0) {
				return nil, nil, 0, matrixErrorf(opSumsOfSquares, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf))
			}
			sq = v * v
			rows[i] += sq
			cols[j] += sq
		}
	}
	total = NormZero
	for i = 0; i < r; i++ {
		total += rows[i]
	}

	return rows, cols, total, nil
}
