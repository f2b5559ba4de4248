// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for the Golub–Reinsch SVD.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"
)

type SVDSuite struct {
	suite.Suite
}

func TestSVDSuite(t *testing.T) {
	suite.Run(t, new(SVDSuite))
}

// requireOrthonormalCols asserts QᵀQ ≈ I over the first k columns.
func requireOrthonormalCols(t *testing.T, q *matrix.Dense, k int, tol float64) {
	t.Helper()
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			var dot float64
			for i := 0; i < q.Rows(); i++ {
				x, _ := q.At(i, a)
				y, _ := q.At(i, b)
				dot += x * y
			}
			want := 0.0
			if a == b {
				want = 1
			}
			require.InDeltaf(t, want, dot, tol, "column pair (%d,%d)", a, b)
		}
	}
}

func (s *SVDSuite) TestReconstructsTallMatrix() {
	t := s.T()
	a := randomDense(t, 9, 5, 2024)

	res, err := matrix.SVD(a)
	s.Require().NoError(err)
	s.Equal(5, res.Rank)
	s.Zero(res.Unconverged)

	back, err := res.Reconstruct(0)
	s.Require().NoError(err)
	ok, err := matrix.AllClose(back, a, 1e-10, 1e-10)
	s.Require().NoError(err)
	s.True(ok, "U·diag(D)·Vᵀ must reproduce A")

	requireOrthonormalCols(t, res.U, 5, 1e-10)
	requireOrthonormalCols(t, res.V, 5, 1e-10)
}

func (s *SVDSuite) TestValuesSortedAndNonNegative() {
	a := randomDense(s.T(), 12, 6, 7)
	res, err := matrix.SVD(a)
	s.Require().NoError(err)

	s.True(sort.SliceIsSorted(res.D, func(i, j int) bool { return res.D[i] > res.D[j] }))
	for _, d := range res.D {
		s.GreaterOrEqual(d, 0.0)
	}
}

// TestMatchesGonum uses gonum's LAPACK-backed SVD as an independent oracle.
func (s *SVDSuite) TestMatchesGonum() {
	a := randomDense(s.T(), 10, 4, 99)
	res, err := matrix.SVD(a)
	s.Require().NoError(err)

	g, err := matrix.ToGonum(a)
	s.Require().NoError(err)
	var oracle mat.SVD
	s.Require().True(oracle.Factorize(g, mat.SVDThin))
	want := oracle.Values(nil)

	s.Require().Len(res.D, len(want))
	for i := range want {
		s.InDelta(want[i], res.D[i], 1e-10)
	}
}

// TestRankDeficient uses a 4×3 matrix with an empty column: rank 2, last value exactly 0.
func (s *SVDSuite) TestRankDeficient() {
	a := MustFrom(s.T(), [][]float64{
		{1, 2, 0},
		{3, 4, 0},
		{5, 6, 0},
		{7, 8, 0},
	})
	res, err := matrix.SVD(a)
	s.Require().NoError(err)
	s.Equal(2, res.Rank)
	s.Zero(res.D[2])

	back, err := res.Reconstruct(res.Rank)
	s.Require().NoError(err)
	ok, _ := matrix.AllClose(back, a, 1e-10, 1e-10)
	s.True(ok, "truncation to the numeric rank loses nothing")
}

func (s *SVDSuite) TestZeroMatrix() {
	res, err := matrix.SVD(MustDense(s.T(), 3, 2))
	s.Require().NoError(err)
	s.Equal(0, res.Rank)
	s.Equal([]float64{0, 0}, res.D)
}

func (s *SVDSuite) TestSingleColumn() {
	a := MustFrom(s.T(), [][]float64{{3}, {4}})
	res, err := matrix.SVD(a)
	s.Require().NoError(err)
	s.Equal(1, res.Rank)
	s.InDelta(5.0, res.D[0], 1e-14)
}

func (s *SVDSuite) TestWideAndInvalidInput() {
	wide := MustDense(s.T(), 2, 3)
	_, err := matrix.SVD(wide)
	s.ErrorIs(err, matrix.ErrWideMatrix)

	u, v := MustDense(s.T(), 2, 3), MustDense(s.T(), 3, 3)
	rank, _, err := matrix.SVDInto(wide, u, v, make([]float64, 3))
	s.ErrorIs(err, matrix.ErrWideMatrix)
	s.Zero(rank)

	withNaN := MustFrom(s.T(), [][]float64{{1, 2}, {math.NaN(), 3}})
	_, err = matrix.SVD(withNaN)
	s.ErrorIs(err, matrix.ErrNaNInf)

	_, err = matrix.SVD(nil)
	s.ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *SVDSuite) TestSVDIntoReusesBuffers() {
	t := s.T()
	a := randomDense(t, 6, 3, 1)
	u, v := MustDense(t, 6, 3), MustDense(t, 3, 3)
	d := make([]float64, 3)

	rank, unconverged, err := matrix.SVDInto(a, u, v, d)
	s.Require().NoError(err)
	s.Equal(3, rank)
	s.Zero(unconverged)

	ref, err := matrix.SVD(a)
	s.Require().NoError(err)
	s.Equal(ref.D, d)
	s.Equal(ref.U.ToRows(), u.ToRows())

	_, _, err = matrix.SVDInto(a, MustDense(t, 5, 3), v, d)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.SVDInto(a, u, v, make([]float64, 2))
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
}

// TestInputUntouched ensures a is never mutated, including through the fallback path.
func (s *SVDSuite) TestInputUntouched() {
	a := randomDense(s.T(), 5, 5, 3)
	before := a.ToRows()
	_, err := matrix.SVD(hide{a})
	s.Require().NoError(err)
	s.Equal(before, a.ToRows())
}

// TestSymmetricGram mirrors the CUR core: SVD of a PSD Gram matrix gives V == U.
func (s *SVDSuite) TestSymmetricGram() {
	x := randomDense(s.T(), 8, 3, 17)
	g, err := matrix.Gram(x)
	s.Require().NoError(err)
	res, err := matrix.SVD(g)
	s.Require().NoError(err)
	ok, _ := matrix.AllClose(res.U, res.V, 1e-8, 1e-8)
	s.True(ok)
}
