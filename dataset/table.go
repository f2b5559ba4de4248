// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Table is a sketch artifact ready to serialize: a header of labels and the
// data rows underneath, values already on the original scale.
type Table struct {
	Labels []string
	Rows   [][]float64
}

// Validate checks that every row is as wide as the header.
func (t Table) Validate() error {
	if len(t.Labels) == 0 {
		return fmt.Errorf("table: %w", ErrEmpty)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Labels) {
			return fmt.Errorf("table row %d has %d values, want %d: %w", i, len(row), len(t.Labels), ErrRagged)
		}
	}

	return nil
}

// Column returns the index of label, or -1.
func (t Table) Column(label string) int {
	for j, l := range t.Labels {
		if l == label {
			return j
		}
	}

	return -1
}

// WriteCSV writes t as comma-separated text: the header line, then one line
// per row. Missing values are written as empty fields so OpenCSV reads them
// back as missing.
func WriteCSV(w io.Writer, t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Labels); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.Labels))
	for i, row := range t.Rows {
		for j, v := range row {
			record[j] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile creates (or truncates) path and writes t into it.
func WriteCSVFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, t)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
