// SPDX-License-Identifier: MIT

package colsketch

import (
	"fmt"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/matrix"
)

// Table returns every row of a restricted to the selected columns, in
// selection order. Non-nil bounds map values back to the original scale.
func (r *Result) Table(a *matrix.Dense, min, max []float64) (dataset.Table, error) {
	if len(r.Columns) == 0 {
		return dataset.Table{}, colErrorf(methodTable, fmt.Errorf("no column selected: %w", dataset.ErrEmpty))
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return dataset.Table{}, colErrorf(methodTable, err)
	}
	rows := make([]int, a.Rows())
	for i := range rows {
		rows[i] = i
	}
	sub, err := a.Induced(rows, r.Columns)
	if err != nil {
		return dataset.Table{}, colErrorf(methodTable, err)
	}
	out := sub.ToRows()
	if min != nil || max != nil {
		pmin, pmax, err := dataset.SelectBounds(min, max, r.Columns)
		if err != nil {
			return dataset.Table{}, colErrorf(methodTable, err)
		}
		for _, row := range out {
			if err = matrix.DenormalizeRow(row, pmin, pmax); err != nil {
				return dataset.Table{}, colErrorf(methodTable, err)
			}
		}
	}
	labels := append([]string(nil), r.Names...)

	return dataset.Table{Labels: labels, Rows: out}, nil
}
