// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use ReplaceInfNaN to turn missing cells into an explicit value before SVD,
//     which rejects non-finite input.

package matrix

// ---------- Constructors ----------

// AsDense returns m itself when it is a *Dense, otherwise a Dense copy.
// Callers that only read may use the result directly; callers that write
// should Clone first, since the *Dense case aliases m.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return asDense(m)
}

// ---------- Element-wise ----------

// ScaleColumns returns out[i,j] = m[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func ScaleColumns(m Matrix, scale []float64) (*Dense, error) { return ewScaleCols(m, scale) }

// ScaleRows returns out[i,j] = m[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func ScaleRows(m Matrix, scale []float64) (*Dense, error) { return ewScaleRows(m, scale) }

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by val (finite).
// Policy: val must be finite; otherwise ErrNaNInf is returned.
// Time: O(r*c). Space: O(r*c).
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) { return ewReplaceInfNaN(m, val) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is close only to NaN (two missing cells agree).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests
//     (e.g. C·U·R against A, U·diag(D)·Vᵀ against A).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Decompositions ----------

// Reconstruct returns U·diag(D)·Vᵀ for an SVD result, truncated to the first
// k singular triplets (k ≤ 0 or k > len(D) means all).
// Complexity: O(m·n·k).
func (r *SVDResult) Reconstruct(k int) (*Dense, error) {
	if r == nil || r.U == nil || r.V == nil {
		return nil, matrixErrorf(opSVD, ErrNilMatrix)
	}
	n := len(r.D)
	if k <= 0 || k > n {
		k = n
	}
	m := r.U.r
	out, err := NewDense(m, r.V.r)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	cols := r.V.r
	var i, j, t int
	var acc float64
	for i = 0; i < m; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for t = 0; t < k; t++ {
				acc += r.U.data[i*n+t] * r.D[t] * r.V.data[j*n+t]
			}
			out.data[i*cols+j] = acc
		}
	}

	return out, nil
}
