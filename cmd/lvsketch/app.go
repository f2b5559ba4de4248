// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvsketch/config"
	"github.com/katalvlaran/lvsketch/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgPath string
	flags   *config.Config // flag values; only changed flags override the file
	cfg     *config.Config // effective configuration
	runID   string
	log     zerolog.Logger
	metrics *metrics.Registry

	in          io.Reader
	out, errOut io.Writer
}

func newApp() *app {
	return &app{
		flags:   config.Default(),
		cfg:     config.Default(),
		log:     zerolog.Nop(),
		metrics: metrics.NewRegistry(),
	}
}

// overrides copies one flag value from src into dst.
var overrides = map[string]func(dst, src *config.Config){
	"input":            func(d, s *config.Config) { d.Input = s.Input },
	"normalize":        func(d, s *config.Config) { d.Normalize = s.Normalize },
	"output":           func(d, s *config.Config) { d.Output = s.Output },
	"seed":             func(d, s *config.Config) { d.Seed = s.Seed },
	"plot":             func(d, s *config.Config) { d.Plot.Path = s.Plot.Path },
	"plot-x":           func(d, s *config.Config) { d.Plot.X = s.Plot.X },
	"plot-y":           func(d, s *config.Config) { d.Plot.Y = s.Plot.Y },
	"metrics-textfile": func(d, s *config.Config) { d.Metrics.Textfile = s.Metrics.Textfile },
	"log-level":        func(d, s *config.Config) { d.Log.Level = s.Log.Level },
	"log-format":       func(d, s *config.Config) { d.Log.Format = s.Log.Format },
	"radius":           func(d, s *config.Config) { d.Row.Radius = s.Row.Radius },
	"min-valid":        func(d, s *config.Config) { d.Row.MinValidFraction = s.Row.MinValidFraction },
	"max-dims":         func(d, s *config.Config) { d.Row.MaxDimensions = s.Row.MaxDimensions },
	"count":            func(d, s *config.Config) { d.Column.Count = s.Column.Count },
	"max-correlation":  func(d, s *config.Config) { d.Column.MaxCorrelation = s.Column.MaxCorrelation },
	"exclude":          func(d, s *config.Config) { d.Column.Exclude = s.Column.Exclude },
	"workers":          func(d, s *config.Config) { d.Column.Workers = s.Column.Workers },
	"rows":             func(d, s *config.Config) { d.CUR.Rows = s.CUR.Rows },
	"cols":             func(d, s *config.Config) { d.CUR.Cols = s.CUR.Cols },
	"rank":             func(d, s *config.Config) { d.CUR.Rank = s.CUR.Rank },
	"core":             func(d, s *config.Config) { d.CUR.Core = s.CUR.Core },
}

// prepare resolves the effective configuration and the run logger.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	a.in, a.out, a.errOut = cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg := config.Default()
	if a.cfgPath != "" {
		loaded, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(cfg, a.flags)
		}
	})
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.errOut)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.log = logger.With().Str("run_id", a.runID).Logger()
	log.Logger = a.log

	return nil
}

// newLogger builds a console or JSON logger at the configured level.
func newLogger(c config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if c.Level != "" {
		parsed, err := zerolog.ParseLevel(c.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", c.Level, config.ErrInvalid)
		}
		level = parsed
	}
	if c.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// interactiveInput reports whether r is a terminal.
func interactiveInput(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
