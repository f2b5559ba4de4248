// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvsketch/colsketch"
	"github.com/katalvlaran/lvsketch/config"
	"github.com/katalvlaran/lvsketch/cur"
	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/katalvlaran/lvsketch/render"
	"github.com/katalvlaran/lvsketch/rowsketch"
	"gonum.org/v1/plot/vg"
)

const plotSize = 6 * vg.Inch

var errNoInput = errors.New("no input file: use --input or the config file")

// outcome is what a sketch run reports besides its table.
type outcome struct {
	table       dataset.Table
	rows, cols  int
	correlation float64
}

// sketch runs one sketch of the configured input and writes its artifacts.
func (a *app) sketch(kind string) (err error) {
	a.cfg.Kind = kind
	defer func() {
		if err != nil {
			a.metrics.Fail(kind)
			a.flushMetrics()
		}
	}()
	if err = a.cfg.Validate(); err != nil {
		return err
	}
	if a.cfg.Input == "" {
		return errNoInput
	}

	src, err := dataset.OpenCSV(a.cfg.Input, dataset.WithNormalize(a.cfg.Normalize))
	if err != nil {
		return err
	}
	a.log.Info().Str("input", a.cfg.Input).Int("rows", src.NumRows()).Int("cols", src.NumCols()).
		Bool("normalized", src.Normalized()).Msg("input loaded")

	start := time.Now()
	var res outcome
	switch kind {
	case config.KindRow:
		res, err = a.rowSketch(src)
	case config.KindCol:
		res, err = a.colSketch(src)
	case config.KindCUR:
		res, err = a.curSketch(src)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	a.log.Info().Str("kind", kind).Int64("cpu_ms", elapsed.Milliseconds()).
		Int("out_rows", res.rows).Int("out_cols", res.cols).Msg("sketch done")

	if err = a.writeTable(res.table); err != nil {
		return err
	}
	if err = a.plot(kind, res.table); err != nil {
		return err
	}
	a.metrics.Observe(kind, elapsed, src.NumRows(), src.NumCols(), res.rows, res.cols, res.correlation)

	return a.flushMetrics()
}

// bounds returns the raw column bounds when the data was normalized.
func bounds(src dataset.Source) (min, max []float64) {
	if !src.Normalized() {
		return nil, nil
	}

	return src.ColumnBounds()
}

func (a *app) rowSketch(src dataset.Source) (outcome, error) {
	sk := rowsketch.New(
		rowsketch.WithRadius(a.cfg.Row.Radius),
		rowsketch.WithMinValidFraction(a.cfg.Row.MinValidFraction),
		rowsketch.WithMaxDimensions(a.cfg.Row.MaxDimensions),
		rowsketch.WithSeed(a.cfg.Seed),
		rowsketch.WithLogger(a.log),
	)
	res, err := sk.Compute(src.Data())
	if err != nil {
		return outcome{}, err
	}
	lo, hi := bounds(src)
	tab, err := res.Table(src.ColumnNames(), lo, hi)
	if err != nil {
		return outcome{}, err
	}

	return outcome{table: tab, rows: len(res.Exemplars), cols: src.NumCols(), correlation: math.NaN()}, nil
}

func (a *app) colSketch(src dataset.Source) (outcome, error) {
	sk := colsketch.New(
		colsketch.WithMaxColumns(a.cfg.Column.Count),
		colsketch.WithMaxCorrelation(a.cfg.Column.MaxCorrelation),
		colsketch.WithExclude(a.cfg.Column.Exclude...),
		colsketch.WithWorkers(a.cfg.Column.Workers),
		colsketch.WithLogger(a.log),
	)
	res, err := sk.Compute(src.Data(), src.ColumnNames())
	if err != nil {
		return outcome{}, err
	}
	lo, hi := bounds(src)
	tab, err := res.Table(src.Data(), lo, hi)
	if err != nil {
		return outcome{}, err
	}

	return outcome{table: tab, rows: src.NumRows(), cols: len(res.Columns), correlation: res.Correlation()}, nil
}

func (a *app) curSketch(src dataset.Source) (outcome, error) {
	core, ok := cur.ParseCore(a.cfg.CUR.Core)
	if !ok {
		return outcome{}, fmt.Errorf("core %q: %w", a.cfg.CUR.Core, config.ErrInvalid)
	}
	sk := cur.New(
		cur.WithRows(a.cfg.CUR.Rows),
		cur.WithCols(a.cfg.CUR.Cols),
		cur.WithRank(a.cfg.CUR.Rank),
		cur.WithCore(core),
		cur.WithSeed(a.cfg.Seed),
		cur.WithLogger(a.log),
	)
	res, err := sk.Compute(src.Data())
	if err != nil {
		return outcome{}, err
	}
	lo, hi := bounds(src)
	tab, err := res.Table(src.Data(), src.ColumnNames(), lo, hi)
	if err != nil {
		return outcome{}, err
	}

	return outcome{table: tab, rows: len(res.RowPicks), cols: len(res.ColPicks), correlation: res.Correlation}, nil
}

func (a *app) writeTable(t dataset.Table) error {
	if a.cfg.Output == "" {
		return dataset.WriteCSV(a.out, t)
	}
	if err := dataset.WriteCSVFile(a.cfg.Output, t); err != nil {
		return err
	}
	a.log.Info().Str("output", a.cfg.Output).Int("rows", len(t.Rows)).Msg("sketch written")

	return nil
}

func (a *app) plot(kind string, t dataset.Table) error {
	if a.cfg.Plot.Path == "" {
		return nil
	}
	opts := []render.Option{render.WithTitle(kind + " sketch")}
	if a.cfg.Plot.X != "" {
		opts = append(opts, render.WithX(a.cfg.Plot.X))
	}
	if a.cfg.Plot.Y != "" {
		opts = append(opts, render.WithY(a.cfg.Plot.Y))
	}
	p, err := render.Scatter(t, opts...)
	if err != nil {
		return err
	}
	if err = render.Save(p, a.cfg.Plot.Path, plotSize, plotSize); err != nil {
		return err
	}
	a.log.Info().Str("plot", a.cfg.Plot.Path).Msg("plot written")

	return nil
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}

	return a.metrics.WriteTextfile(a.cfg.Metrics.Textfile)
}

// generate writes a synthetic dataset on the raw scale.
func (a *app) generate(kind dataset.Kind, rows, cols int) error {
	src, err := dataset.Generate(kind, rows, cols, dataset.WithSeed(a.cfg.Seed))
	if err != nil {
		return err
	}
	a.log.Info().Str("kind", string(kind)).Int("rows", rows).Int("cols", cols).Msg("dataset generated")

	return a.writeTable(dataset.Table{Labels: src.ColumnNames(), Rows: src.Data().ToRows()})
}
