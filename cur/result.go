// SPDX-License-Identifier: MIT

package cur

import (
	"fmt"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/matrix"
)

// Reconstruct returns the m×n approximation C·U·R.
func (r *Result) Reconstruct() (*matrix.Dense, error) {
	cu, err := matrix.Mul(r.C, r.U)
	if err != nil {
		return nil, fmt.Errorf("cur: Reconstruct: %w", err)
	}
	out, err := matrix.Mul(cu, r.R)
	if err != nil {
		return nil, fmt.Errorf("cur: Reconstruct: %w", err)
	}

	return out, nil
}

// Matches reports whether C·U·R agrees with a elementwise within
// atol + rtol·|a|. Missing cells of a count as 0, as they do in the factors.
func (r *Result) Matches(a matrix.Matrix, rtol, atol float64) (bool, error) {
	approx, err := r.Reconstruct()
	if err != nil {
		return false, err
	}
	filled, err := matrix.ReplaceInfNaN(a, 0)
	if err != nil {
		return false, fmt.Errorf("cur: Matches: %w", err)
	}
	ok, err := matrix.AllClose(approx, filled, rtol, atol)
	if err != nil {
		return false, fmt.Errorf("cur: Matches: %w", err)
	}

	return ok, nil
}

// Table returns the sketch artifact: the sampled rows × sampled columns of a,
// in draw order. When min and max are non-nil, values are mapped back to the
// original scale with matrix.Denormalize; names label the columns.
func (r *Result) Table(a *matrix.Dense, names []string, min, max []float64) (dataset.Table, error) {
	sub, err := a.Induced(r.RowPicks, r.ColPicks)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("cur: Table: %w", err)
	}
	labels := dataset.SelectLabels(names, r.ColPicks)
	rows := sub.ToRows()
	if min != nil || max != nil {
		pmin, pmax, err := dataset.SelectBounds(min, max, r.ColPicks)
		if err != nil {
			return dataset.Table{}, fmt.Errorf("cur: Table: %w", err)
		}
		for _, row := range rows {
			if err = matrix.DenormalizeRow(row, pmin, pmax); err != nil {
				return dataset.Table{}, fmt.Errorf("cur: Table: %w", err)
			}
		}
	}

	return dataset.Table{Labels: labels, Rows: rows}, nil
}
