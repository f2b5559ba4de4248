// SPDX-License-Identifier: MIT

// Package render draws sketch tables as scatter plots with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsketch/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrColumn is returned when a requested column is not in the table.
	ErrColumn = errors.New("render: unknown column")

	// ErrNoPoints is returned when no row has both coordinates present.
	ErrNoPoints = errors.New("render: nothing to plot")

	// ErrFormat is returned by Save for an unsupported file extension.
	ErrFormat = errors.New("render: unsupported format")
)

const (
	minGlyph = 2.0
	maxGlyph = 9.0
)

// Option customizes Scatter.
type Option func(*config)

type config struct {
	x, y, weight string
	title        string
	color        color.Color
}

// WithX plots the named column on the horizontal axis (default: first column).
func WithX(label string) Option { return func(c *config) { c.x = label } }

// WithY plots the named column on the vertical axis (default: second column).
func WithY(label string) Option { return func(c *config) { c.y = label } }

// WithWeight scales glyphs by the named column. It defaults to
// dataset.FrequencyLabel when the table has one; "" after that disables it.
func WithWeight(label string) Option { return func(c *config) { c.weight = label } }

// WithTitle sets the plot title.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithColor sets the glyph color. Panics on nil.
func WithColor(col color.Color) Option {
	if col == nil {
		panic("render: WithColor(nil)")
	}

	return func(c *config) { c.color = col }
}

// Scatter plots two columns of t against each other. Rows missing either
// coordinate are left out; glyph area follows the weight column.
func Scatter(t dataset.Table, opts ...Option) (*plot.Plot, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	cfg := config{color: color.RGBA{R: 31, G: 119, B: 180, A: 255}}
	data := dataLabels(t.Labels)
	if len(data) > 0 {
		cfg.x = data[0]
		cfg.y = data[0]
	}
	if len(data) > 1 {
		cfg.y = data[1]
	}
	if t.Column(dataset.FrequencyLabel) >= 0 {
		cfg.weight = dataset.FrequencyLabel
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	xi, yi, wi := t.Column(cfg.x), t.Column(cfg.y), -1
	if xi < 0 || yi < 0 {
		return nil, fmt.Errorf("render: x=%q y=%q: %w", cfg.x, cfg.y, ErrColumn)
	}
	if cfg.weight != "" {
		if wi = t.Column(cfg.weight); wi < 0 {
			return nil, fmt.Errorf("render: weight=%q: %w", cfg.weight, ErrColumn)
		}
	}

	pts := make(plotter.XYs, 0, len(t.Rows))
	weights := make([]float64, 0, len(t.Rows))
	maxW := 0.0
	for _, row := range t.Rows {
		x, y := row[xi], row[yi]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		w := 1.0
		if wi >= 0 && row[wi] > 0 && !math.IsInf(row[wi], 0) {
			w = row[wi]
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		weights = append(weights, w)
		maxW = math.Max(maxW, w)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("render: %w", ErrNoPoints)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = cfg.x
	p.Y.Label.Text = cfg.y

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	sc.GlyphStyle.Color = cfg.color
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		g := sc.GlyphStyle
		g.Radius = vg.Points(glyphRadius(weights[i], maxW))
		return g
	}
	p.Add(sc, plotter.NewGrid())

	return p, nil
}

// glyphRadius maps w in (0, maxW] so glyph area grows linearly with weight.
func glyphRadius(w, maxW float64) float64 {
	if maxW <= 0 {
		return minGlyph
	}

	return minGlyph + (maxGlyph-minGlyph)*math.Sqrt(w/maxW)
}

func dataLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != dataset.FrequencyLabel {
			out = append(out, l)
		}
	}

	return out
}

// Save writes p to path; the extension picks the format (png, jpg, jpeg,
// svg, pdf, eps, tif, tiff).
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".svg", ".pdf", ".eps", ".tif", ".tiff":
	default:
		return fmt.Errorf("render: %s: %w", path, ErrFormat)
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
