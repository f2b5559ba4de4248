// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/lvsketch/matrix"
)

// Source is a numeric table the sketchers read from.
//
// Data returns the working matrix: normalized to [0,1] per column when the
// source was opened with normalization, raw otherwise. ColumnBounds always
// reports the raw per-column bounds, so sketches can be mapped back with
// matrix.Denormalize.
type Source interface {
	Data() *matrix.Dense
	ColumnNames() []string
	NumRows() int
	NumCols() int
	ColumnBounds() (min, max []float64)
	Normalized() bool
}

// MemorySource is a Source over an in-memory matrix.
type MemorySource struct {
	data       *matrix.Dense
	names      []string
	min, max   []float64
	normalized bool
}

var _ Source = (*MemorySource)(nil)

// NewMemorySource wraps m. Missing names are filled with DefaultLabel.
// With WithNormalize(true) the data is normalized; m itself is never changed.
func NewMemorySource(m *matrix.Dense, names []string, opts ...Option) (*MemorySource, error) {
	if m == nil {
		return nil, fmt.Errorf("memory source: %w", matrix.ErrNilMatrix)
	}
	cfg := newConfig(opts...)

	return newMemorySource(m.Clone().(*matrix.Dense), names, cfg.normalize)
}

func newMemorySource(m *matrix.Dense, names []string, normalize bool) (*MemorySource, error) {
	min, max, err := matrix.ColumnBounds(m)
	if err != nil {
		return nil, err
	}
	labels := make([]string, m.Cols())
	for j := range labels {
		if j < len(names) && names[j] != "" {
			labels[j] = names[j]
		} else {
			labels[j] = DefaultLabel(j)
		}
	}
	src := &MemorySource{data: m, names: labels, min: min, max: max, normalized: normalize}
	if normalize {
		if src.data, err = matrix.NormalizeColumns(m, min, max); err != nil {
			return nil, err
		}
	}

	return src, nil
}

func (s *MemorySource) Data() *matrix.Dense   { return s.data }
func (s *MemorySource) ColumnNames() []string { return s.names }
func (s *MemorySource) NumRows() int          { return s.data.Rows() }
func (s *MemorySource) NumCols() int          { return s.data.Cols() }
func (s *MemorySource) Normalized() bool      { return s.normalized }

func (s *MemorySource) ColumnBounds() (min, max []float64) { return s.min, s.max }

// OpenCSV reads a strict CSV file: one header record of labels, then
// comma-separated numeric records of the same width. The file is memory
// mapped read-only and released before OpenCSV returns.
//
// Behavior highlights:
//   - Fields are trimmed; a field that does not parse as a number is missing (NaN).
//   - Blank lines are skipped.
//   - Bounds ignore missing cells; constant columns normalize to 0.
//
// Errors:
//   - ErrEmpty (no header), ErrNoRows, ErrRagged (record width differs from the header),
//     wrapped os and mmap errors.
func OpenCSV(path string, opts ...Option) (src *MemorySource, err error) {
	cfg := newConfig(opts...)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() {
		if uerr := mm.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("unmap %s: %w", path, uerr)
		}
	}()

	names, rows, err := parseCSV(bytes.NewReader(mm))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return newMemorySource(m, names, cfg.normalize)
}

// ReadCSV parses CSV text from r with the same rules as OpenCSV.
func ReadCSV(r io.Reader, opts ...Option) (*MemorySource, error) {
	cfg := newConfig(opts...)
	names, rows, err := parseCSV(r)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, err
	}

	return newMemorySource(m, names, cfg.normalize)
}

func parseCSV(r io.Reader) ([]string, [][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmpty
	}
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", err)
	}
	names := make([]string, len(header))
	for j, h := range header {
		names[j] = strings.TrimSpace(h)
	}

	var rows [][]float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, nil, fmt.Errorf("record %d has %d fields, want %d: %w", line, len(rec), len(names), ErrRagged)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", line, err)
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			row[j] = parseCell(field)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoRows
	}

	return names, rows, nil
}

func parseCell(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}
