// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsketch/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, config.KindRow, cfg.Kind)
	require.Equal(t, []string{"frequencies"}, cfg.Column.Exclude)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	body := `
kind: cur
input: data.csv
seed: 7
cur:
  rows: 10
  cols: 4
  core: linear-time
plot:
  path: out.png
log:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.KindCUR, cfg.Kind)
	require.Equal(t, "data.csv", cfg.Input)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 10, cfg.CUR.Rows)
	require.Equal(t, "linear-time", cfg.CUR.Core)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Normalize, "unset keys keep their defaults")

	_, err = config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	t.Parallel()
	_, err := config.Parse([]byte("kind: row\nradius: 3\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := map[string]func(c *config.Config){
		"kind":            func(c *config.Config) { c.Kind = "rowcol" },
		"min valid":       func(c *config.Config) { c.Row.MinValidFraction = 1.5 },
		"max dims":        func(c *config.Config) { c.Row.MaxDimensions = -1 },
		"column count":    func(c *config.Config) { c.Column.Count = -3 },
		"max correlation": func(c *config.Config) { c.Column.MaxCorrelation = 2 },
		"workers":         func(c *config.Config) { c.Column.Workers = -1 },
		"cur required":    func(c *config.Config) { c.Kind = config.KindCUR },
		"cur rank": func(c *config.Config) {
			c.Kind = config.KindCUR
			c.CUR = config.CURConfig{Rows: 2, Cols: 3, Rank: 3}
		},
		"cur core":   func(c *config.Config) { c.CUR.Core = "svd" },
		"log format": func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalid, name)
	}
}
