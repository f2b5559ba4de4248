// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the lvsketch binary and
// loads it from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Sketch kinds.
const (
	KindRow = "row"
	KindCol = "col"
	KindCUR = "cur"
)

// Config is one sketch run.
type Config struct {
	Kind      string        `yaml:"kind"`      // row, col or cur
	Input     string        `yaml:"input"`     // CSV file to read
	Normalize bool          `yaml:"normalize"` // min/max-normalize columns first
	Output    string        `yaml:"output"`    // CSV file for the sketch; empty means stdout
	Seed      int64         `yaml:"seed"`
	Row       RowConfig     `yaml:"row"`
	Column    ColumnConfig  `yaml:"column"`
	CUR       CURConfig     `yaml:"cur"`
	Plot      PlotConfig    `yaml:"plot"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Log       LogConfig     `yaml:"log"`
}

// RowConfig configures the row sketch.
type RowConfig struct {
	Radius           float64 `yaml:"radius"`             // <= 0 picks the radius from the column count
	MinValidFraction float64 `yaml:"min_valid_fraction"` // share of dimensions two rows must both have
	MaxDimensions    int     `yaml:"max_dimensions"`     // random projection width; 0 disables
}

// ColumnConfig configures the column sketch.
type ColumnConfig struct {
	Count          int      `yaml:"count"`           // column budget; 0 means no budget
	MaxCorrelation float64  `yaml:"max_correlation"` // stop once reached; 0 disables
	Exclude        []string `yaml:"exclude"`         // column names never selected
	Workers        int      `yaml:"workers"`         // 0 means GOMAXPROCS
}

// CURConfig configures the CUR sketch.
type CURConfig struct {
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
	Rank int    `yaml:"rank"` // 0 means min(rows, cols)
	Core string `yaml:"core"` // intersection or linear-time
}

// PlotConfig optionally renders the sketch.
type PlotConfig struct {
	Path string `yaml:"path"` // image file; empty disables plotting
	X    string `yaml:"x"`
	Y    string `yaml:"y"`
}

// MetricsConfig optionally dumps run metrics.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile path; empty disables
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Kind:      KindRow,
		Normalize: true,
		Seed:      4123,
		Column:    ColumnConfig{Exclude: []string{"frequencies"}, Workers: 1},
		CUR:       CURConfig{Core: "intersection"},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field; the first violation is returned wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch c.Kind {
	case KindRow, KindCol, KindCUR:
	default:
		return invalidf("kind must be row, col or cur, got %q", c.Kind)
	}
	if err := c.Row.validate(); err != nil {
		return err
	}
	if err := c.Column.validate(); err != nil {
		return err
	}
	if err := c.CUR.validate(c.Kind == KindCUR); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return invalidf("log.format must be console or json, got %q", c.Log.Format)
	}

	return nil
}

func (r RowConfig) validate() error {
	if math.IsNaN(r.Radius) || math.IsInf(r.Radius, 0) {
		return invalidf("row.radius must be finite")
	}
	if !(r.MinValidFraction >= 0 && r.MinValidFraction <= 1) {
		return invalidf("row.min_valid_fraction must be in [0,1], got %g", r.MinValidFraction)
	}
	if r.MaxDimensions < 0 {
		return invalidf("row.max_dimensions cannot be negative, got %d", r.MaxDimensions)
	}

	return nil
}

func (c ColumnConfig) validate() error {
	if c.Count < 0 {
		return invalidf("column.count cannot be negative, got %d", c.Count)
	}
	if !(c.MaxCorrelation >= 0 && c.MaxCorrelation <= 1) {
		return invalidf("column.max_correlation must be in [0,1], got %g", c.MaxCorrelation)
	}
	if c.Workers < 0 {
		return invalidf("column.workers cannot be negative, got %d", c.Workers)
	}

	return nil
}

func (c CURConfig) validate(required bool) error {
	if c.Rows < 0 || c.Cols < 0 || c.Rank < 0 {
		return invalidf("cur.rows, cur.cols and cur.rank cannot be negative")
	}
	if required && (c.Rows == 0 || c.Cols == 0) {
		return invalidf("cur.rows and cur.cols are required for a cur sketch")
	}
	if c.Rank > 0 && c.Rows > 0 && c.Cols > 0 && c.Rank > min(c.Rows, c.Cols) {
		return invalidf("cur.rank %d exceeds min(cur.rows, cur.cols)", c.Rank)
	}
	switch c.Core {
	case "", "intersection", "linear", "linear-time":
	default:
		return invalidf("cur.core must be intersection or linear-time, got %q", c.Core)
	}

	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
