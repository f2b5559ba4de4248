// SPDX-License-Identifier: MIT

package rowsketch

import (
	"fmt"

	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/matrix"
)

// Table returns the exemplars with a trailing dataset.FrequencyLabel column.
// Non-nil bounds map values back to the original scale.
func (r *Result) Table(names []string, min, max []float64) (dataset.Table, error) {
	if len(r.Exemplars) == 0 {
		return dataset.Table{}, fmt.Errorf("rowsketch: Table: %w", dataset.ErrEmpty)
	}
	n := len(r.Exemplars[0])
	cols := make([]int, n)
	for j := range cols {
		cols[j] = j
	}
	labels := append(dataset.SelectLabels(names, cols), dataset.FrequencyLabel)

	freq := r.Frequencies()
	rows := make([][]float64, len(r.Exemplars))
	for e, ex := range r.Exemplars {
		row := make([]float64, n+1)
		copy(row, ex)
		if min != nil || max != nil {
			if err := matrix.DenormalizeRow(row[:n], min, max); err != nil {
				return dataset.Table{}, fmt.Errorf("rowsketch: Table: %w", err)
			}
		}
		row[n] = float64(freq[e])
		rows[e] = row
	}

	return dataset.Table{Labels: labels, Rows: rows}, nil
}
