// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strconv"
)

// FrequencyLabel names the member-count column a row sketch appends.
const FrequencyLabel = "frequencies"

// DefaultLabel returns the generated name of column j ("V1", "V2", ...).
func DefaultLabel(j int) string { return "V" + strconv.Itoa(j+1) }

// SelectLabels returns names[idx] for every idx, falling back to DefaultLabel
// when names is too short.
func SelectLabels(names []string, idx []int) []string {
	out := make([]string, len(idx))
	for t, j := range idx {
		if j >= 0 && j < len(names) {
			out[t] = names[j]
		} else {
			out[t] = DefaultLabel(j)
		}
	}

	return out
}

// SelectBounds picks per-column bounds for the listed columns.
func SelectBounds(min, max []float64, idx []int) (pmin, pmax []float64, err error) {
	if len(min) != len(max) {
		return nil, nil, fmt.Errorf("bounds: min %d, max %d: %w", len(min), len(max), ErrRagged)
	}
	pmin = make([]float64, len(idx))
	pmax = make([]float64, len(idx))
	for t, j := range idx {
		if j < 0 || j >= len(min) {
			return nil, nil, fmt.Errorf("bounds: column %d of %d: %w", j, len(min), ErrRagged)
		}
		pmin[t], pmax[t] = min[j], max[j]
	}

	return pmin, pmax, nil
}
