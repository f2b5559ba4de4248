// SPDX-License-Identifier: MIT

// Package matrix - singular value decomposition (Golub–Reinsch).
//
// Purpose:
//   - Factor a tall or square m×n matrix A (m ≥ n) as A = U·diag(D)·Vᵀ.
//   - Serve the CUR core (pseudo-inverse of a small Gram matrix) and any caller
//     that needs a numerically stable rank estimate.
//
// Algorithm outline (Golub & Reinsch, Num. Math. 14, 1970):
//   - Stage 1: Householder reduction to upper-bidiagonal form; the diagonal is
//     kept in d and the super-diagonal in a scratch vector rv1.
//   - Stage 2: accumulate right-hand transforms into V, then left-hand transforms into U.
//   - Stage 3: implicit-shift QR sweeps on the bidiagonal, at most SVDMaxSweeps
//     per singular value; hitting the cap is recorded, not fatal.
//   - Stage 4: flip negative values (negating the matching V column), sort
//     descending with U/V columns, clamp values below SVDEpsilon to 0 and count the rank.
//
// AI-Hints:
//   - Use SVD for a fresh result; use SVDInto to reuse U/V/D buffers across calls.
//   - Inputs are never mutated. NaN/Inf inputs are rejected (ErrNaNInf).

package matrix

import (
	"fmt"
	"math"
)

const (
	// SVDMaxSweeps bounds the number of QR sweeps per singular value.
	SVDMaxSweeps = 30

	// SVDEpsilon is the clamp threshold: singular values below it become exactly 0.
	SVDEpsilon = 1e-15
)

// SVDResult holds A = U·diag(D)·Vᵀ for an m×n input.
//   - U is m×n with orthonormal columns (for columns whose D entry is non-zero).
//   - V is n×n orthogonal.
//   - D holds n non-negative singular values in descending order.
//   - Rank counts the strictly positive entries of D after clamping.
//   - Unconverged counts singular values whose QR iteration hit SVDMaxSweeps.
type SVDResult struct {
	U           *Dense
	V           *Dense
	D           []float64
	Rank        int
	Unconverged int
}

// SVD computes the singular value decomposition of a (m ≥ n).
//
// Errors:
//   - ErrNilMatrix, ErrWideMatrix (m < n), ErrNaNInf (non-finite input).
//
// Complexity:
//   - Time O(m·n² + n³) per sweep set, Space O(m·n + n²).
func SVD(a Matrix) (*SVDResult, error) {
	if err := ValidateTallOrSquare(a); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	m, n := a.Rows(), a.Cols()
	u, _ := NewDense(m, n)
	v, _ := NewDense(n, n)
	res := &SVDResult{U: u, V: v, D: make([]float64, n)}

	var err error
	res.Rank, res.Unconverged, err = svdDecompose(a, u, v, res.D)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	return res, nil
}

// SVDInto decomposes a into caller-owned buffers and returns the numeric rank
// and the number of singular values whose QR iteration hit SVDMaxSweeps.
// u must be m×n, v must be n×n and len(d) must equal n.
//
// A wide input (m < n) yields ErrWideMatrix, leaving the buffers untouched.
//
// Complexity: as SVD, without allocating U, V or D.
func SVDInto(a Matrix, u, v *Dense, d []float64) (rank, unconverged int, err error) {
	if err = ValidateTallOrSquare(a); err != nil {
		return 0, 0, matrixErrorf(opSVD, err)
	}
	m, n := a.Rows(), a.Cols()
	if err = ValidateNotNil(u); err != nil {
		return 0, 0, matrixErrorf(opSVD, fmt.Errorf("u: %w", err))
	}
	if err = ValidateNotNil(v); err != nil {
		return 0, 0, matrixErrorf(opSVD, fmt.Errorf("v: %w", err))
	}
	if u.r != m || u.c != n || v.r != n || v.c != n {
		return 0, 0, matrixErrorf(opSVD, ErrDimensionMismatch)
	}
	if err = ValidateVecLen(d, n); err != nil {
		return 0, 0, matrixErrorf(opSVD, fmt.Errorf("d: %w", err))
	}

	if rank, unconverged, err = svdDecompose(a, u, v, d); err != nil {
		return 0, 0, matrixErrorf(opSVD, err)
	}

	return rank, unconverged, nil
}

// svdDecompose runs Golub–Reinsch on validated shapes. u receives a copy of a
// and is transformed in place; v is overwritten; d receives the values.
func svdDecompose(a Matrix, ud, vd *Dense, d []float64) (rank, unconverged int, err error) {
	m, n := a.Rows(), a.Cols()

	// Copy A into U (row-major, stride n) and reject non-finite cells.
	src, err := asDense(a)
	if err != nil {
		return 0, 0, err
	}
	for idx, val := range src.data {
		if isNonFinite(val) {
			return 0, 0, fmt.Errorf("cell (%d,%d): %w", idx/n, idx%n, ErrNaNInf)
		}
	}
	u, v := ud.data, vd.data
	copy(u, src.data)
	for idx := range v {
		v[idx] = 0
	}

	rv1 := make([]float64, n)
	var (
		i, j, k, l, its, nm         int
		anorm, c, f, g, h, s, scale float64
		x, y, z                     float64
	)

	// Stage 1: Householder reduction to bidiagonal form.
	for i = 0; i < n; i++ {
		l = i + 1
		rv1[i] = scale * g
		g, s, scale = 0, 0, 0
		for k = i; k < m; k++ {
			scale += math.Abs(u[k*n+i])
		}
		if scale != 0 {
			for k = i; k < m; k++ {
				u[k*n+i] /= scale
				s += u[k*n+i] * u[k*n+i]
			}
			f = u[i*n+i]
			g = -math.Copysign(math.Sqrt(s), f)
			h = f*g - s
			u[i*n+i] = f - g
			for j = l; j < n; j++ {
				s = 0
				for k = i; k < m; k++ {
					s += u[k*n+i] * u[k*n+j]
				}
				f = s / h
				for k = i; k < m; k++ {
					u[k*n+j] += f * u[k*n+i]
				}
			}
			for k = i; k < m; k++ {
				u[k*n+i] *= scale
			}
		}
		d[i] = scale * g

		g, s, scale = 0, 0, 0
		if i < n-1 {
			for k = l; k < n; k++ {
				scale += math.Abs(u[i*n+k])
			}
			if scale != 0 {
				for k = l; k < n; k++ {
					u[i*n+k] /= scale
					s += u[i*n+k] * u[i*n+k]
				}
				f = u[i*n+l]
				g = -math.Copysign(math.Sqrt(s), f)
				h = f*g - s
				u[i*n+l] = f - g
				for k = l; k < n; k++ {
					rv1[k] = u[i*n+k] / h
				}
				for j = l; j < m; j++ {
					s = 0
					for k = l; k < n; k++ {
						s += u[j*n+k] * u[i*n+k]
					}
					for k = l; k < n; k++ {
						u[j*n+k] += s * rv1[k]
					}
				}
				for k = l; k < n; k++ {
					u[i*n+k] *= scale
				}
			}
		}
		anorm = math.Max(anorm, math.Abs(d[i])+math.Abs(rv1[i]))
	}

	// Stage 2a: accumulation of right-hand transformations.
	for i = n - 1; i >= 0; i-- {
		if i < n-1 {
			if g != 0 {
				// Double division avoids possible underflow.
				for j = l; j < n; j++ {
					v[j*n+i] = (u[i*n+j] / u[i*n+l]) / g
				}
				for j = l; j < n; j++ {
					s = 0
					for k = l; k < n; k++ {
						s += u[i*n+k] * v[k*n+j]
					}
					for k = l; k < n; k++ {
						v[k*n+j] += s * v[k*n+i]
					}
				}
			}
			for j = l; j < n; j++ {
				v[i*n+j] = 0
				v[j*n+i] = 0
			}
		}
		v[i*n+i] = 1
		g = rv1[i]
		l = i
	}

	// Stage 2b: accumulation of left-hand transformations (m ≥ n, so min(m,n) = n).
	for i = n - 1; i >= 0; i-- {
		l = i + 1
		g = d[i]
		for j = l; j < n; j++ {
			u[i*n+j] = 0
		}
		if g != 0 {
			g = 1 / g
			for j = l; j < n; j++ {
				s = 0
				for k = l; k < m; k++ {
					s += u[k*n+i] * u[k*n+j]
				}
				f = (s / u[i*n+i]) * g
				for k = i; k < m; k++ {
					u[k*n+j] += f * u[k*n+i]
				}
			}
			for j = i; j < m; j++ {
				u[j*n+i] *= g
			}
		} else {
			for j = i; j < m; j++ {
				u[j*n+i] = 0
			}
		}
		u[i*n+i]++
	}

	// Stage 3: diagonalization of the bidiagonal form.
	var split bool
	for k = n - 1; k >= 0; k-- {
		for its = 1; its <= SVDMaxSweeps; its++ {
			// Test for splitting. rv1[0] is always 0, so l = 0 terminates the scan.
			split = false
			for l = k; l >= 0; l-- {
				nm = l - 1
				if l == 0 || math.Abs(rv1[l])+anorm == anorm {
					split = true
					break
				}
				if math.Abs(d[nm])+anorm == anorm {
					break
				}
			}

			// Cancellation of rv1[l] when d[l-1] is negligible.
			if !split {
				c, s = 0, 1
				for i = l; i <= k; i++ {
					f = s * rv1[i]
					rv1[i] = c * rv1[i]
					if math.Abs(f)+anorm == anorm {
						break
					}
					g = d[i]
					h = pythag(f, g)
					d[i] = h
					c = g / h
					s = -f / h
					givensCols(u, m, n, nm, i, c, s)
				}
			}

			// Test for convergence.
			z = d[k]
			if l == k {
				if z < 0 {
					d[k] = -z
					for j = 0; j < n; j++ {
						v[j*n+k] = -v[j*n+k]
					}
				}

				break
			}
			if its == SVDMaxSweeps {
				unconverged++

				break
			}

			// Shift from the bottom 2×2 minor.
			x = d[l]
			nm = k - 1
			y = d[nm]
			g = rv1[nm]
			h = rv1[k]
			f = 0.5 * (((g+z)/h)*((g-z)/y) + y/h - h/y)
			g = pythag(f, 1)
			f = x - (z/x)*z + (h/x)*(y/(f+math.Copysign(g, f))-h)

			// Next QR transformation.
			c, s = 1, 1
			for j = l; j <= nm; j++ {
				i = j + 1
				g = rv1[i]
				y = d[i]
				h = s * g
				g = c * g
				z = pythag(f, h)
				rv1[j] = z
				c = f / z
				s = h / z
				f = x*c + g*s
				g = g*c - x*s
				h = y * s
				y *= c
				givensCols(v, n, n, j, i, c, s)
				z = pythag(f, h)
				d[j] = z
				// Rotation can be arbitrary if z is zero.
				if z != 0 {
					c = f / z
					s = h / z
				}
				f = c*g + s*y
				x = c*y - s*g
				givensCols(u, m, n, j, i, c, s)
			}
			rv1[l] = 0
			rv1[k] = f
			d[k] = x
		}
	}

	sortSingular(d, u, m, v, n)

	for i = 0; i < n; i++ {
		if d[i] < SVDEpsilon {
			d[i] = 0
		}
		if d[i] > 0 {
			rank++
		}
	}

	return rank, unconverged, nil
}

// givensCols applies a plane rotation to columns p and q of a rows×stride
// row-major buffer: (x, y) → (x·c + y·s, y·c − x·s).
func givensCols(buf []float64, rows, stride, p, q int, c, s float64) {
	var x, y float64
	for r := 0; r < rows; r++ {
		x = buf[r*stride+p]
		y = buf[r*stride+q]
		buf[r*stride+p] = x*c + y*s
		buf[r*stride+q] = y*c - x*s
	}
}

// pythag returns sqrt(a²+b²) without destructive overflow or underflow.
// The larger magnitude is factored out and the Moler–Morrison iteration
// refines it, so the result never squares a large operand.
func pythag(a, b float64) float64 {
	absA, absB := math.Abs(a), math.Abs(b)
	p := math.Max(absA, absB)
	if p == 0 {
		return 0
	}
	q := math.Min(absA, absB) / p
	r := q * q
	var t, s, w float64
	for {
		t = 4 + r
		if t == 4 {
			break
		}
		s = r / t
		w = 1 + 2*s
		p *= w
		q = s / w
		r *= q * q
	}

	return p
}

// sortSingular orders d descending (NaN last) with a Knuth-gap shell sort,
// swapping the matching columns of U (m rows) and V (n rows).
// Stable enough for SVD output and allocation-free.
func sortSingular(d, u []float64, m int, v []float64, n int) {
	gap := 1
	for gap <= n {
		gap = 3*gap + 1
	}
	var i, j, ip int
	for gap > 2 {
		gap /= 3
		for j = 0; j < n-gap; j++ {
			for i = j; i >= 0; i -= gap {
				ip = i + gap
				if !(d[i] < d[ip] || math.IsNaN(d[i])) {
					break
				}
				d[i], d[ip] = d[ip], d[i]
				swapCols(u, m, n, i, ip)
				swapCols(v, n, n, i, ip)
			}
		}
	}
}

// swapCols exchanges columns p and q over all rows of a row-major buffer.
func swapCols(buf []float64, rows, stride, p, q int) {
	for r := 0; r < rows; r++ {
		buf[r*stride+p], buf[r*stride+q] = buf[r*stride+q], buf[r*stride+p]
	}
}
