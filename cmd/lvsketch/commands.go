// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/lvsketch/config"
	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/spf13/cobra"
)

const version = "v0.3.0"

func newRootCmd() *cobra.Command {
	a := newApp()
	f := a.flags

	root := &cobra.Command{
		Use:     "lvsketch",
		Short:   "Row, column and CUR sketches of numeric CSV matrices",
		Version: version,
		Long: `lvsketch reduces a matrix to a small representative piece:

  row  exemplar rows with member counts (balls of a given radius)
  col  a column subset preserving the row-to-row distances
  cur  sampled columns C, rows R and a core U with A ≈ C·U·R

Run without a subcommand in a terminal to be prompted for each setting.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactiveInput(a.in) {
				return cmd.Help()
			}
			return a.interactive()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML run configuration; flags override it")
	pf.StringVar(&f.Input, "input", f.Input, "input CSV file (header + numeric records)")
	pf.BoolVar(&f.Normalize, "normalize", f.Normalize, "normalize columns to [0,1] before sketching")
	pf.StringVar(&f.Output, "output", f.Output, "output CSV file (default stdout)")
	pf.Int64Var(&f.Seed, "seed", f.Seed, "random seed")
	pf.StringVar(&f.Plot.Path, "plot", f.Plot.Path, "write a scatter plot of the sketch (png, svg, pdf)")
	pf.StringVar(&f.Plot.X, "plot-x", f.Plot.X, "plot x column (default first)")
	pf.StringVar(&f.Plot.Y, "plot-y", f.Plot.Y, "plot y column (default second)")
	pf.StringVar(&f.Metrics.Textfile, "metrics-textfile", f.Metrics.Textfile, "write Prometheus metrics to this file")
	pf.StringVar(&f.Log.Level, "log-level", f.Log.Level, "log level (debug, info, warn, error)")
	pf.StringVar(&f.Log.Format, "log-format", f.Log.Format, "log format (console, json)")

	root.AddCommand(newRowCmd(a), newColCmd(a), newCURCmd(a), newGenerateCmd(a))

	return root
}

func newRowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Cluster rows into exemplars with member counts",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return a.sketch(config.KindRow) },
	}
	f := a.flags
	cmd.Flags().Float64Var(&f.Row.Radius, "radius", f.Row.Radius, "ball radius; 0 picks one from the column count")
	cmd.Flags().Float64Var(&f.Row.MinValidFraction, "min-valid", f.Row.MinValidFraction, "share of dimensions two rows must both have")
	cmd.Flags().IntVar(&f.Row.MaxDimensions, "max-dims", f.Row.MaxDimensions, "project wider inputs to this many dimensions; 0 disables")

	return cmd
}

func newColCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "col",
		Short: "Select the columns that best preserve row distances",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return a.sketch(config.KindCol) },
	}
	f := a.flags
	cmd.Flags().IntVar(&f.Column.Count, "count", f.Column.Count, "number of columns to select; 0 means no limit")
	cmd.Flags().Float64Var(&f.Column.MaxCorrelation, "max-correlation", f.Column.MaxCorrelation, "stop once this correlation is reached; 0 disables")
	cmd.Flags().StringSliceVar(&f.Column.Exclude, "exclude", f.Column.Exclude, "column names never selected")
	cmd.Flags().IntVar(&f.Column.Workers, "workers", f.Column.Workers, "goroutines scoring candidates; 0 means GOMAXPROCS")

	return cmd
}

func newCURCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cur",
		Short: "Compute a CUR decomposition from sampled rows and columns",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return a.sketch(config.KindCUR) },
	}
	f := a.flags
	cmd.Flags().IntVar(&f.CUR.Rows, "rows", f.CUR.Rows, "number of sampled rows")
	cmd.Flags().IntVar(&f.CUR.Cols, "cols", f.CUR.Cols, "number of sampled columns")
	cmd.Flags().IntVar(&f.CUR.Rank, "rank", f.CUR.Rank, "rank of the core; 0 means min(rows, cols)")
	cmd.Flags().StringVar(&f.CUR.Core, "core", f.CUR.Core, "core matrix: intersection or linear-time")

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind       string
		rows, cols int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic dataset (cluster, donut, outlier, outlier2D, inlier2D, swiss)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			k, err := dataset.ParseKind(kind)
			if err != nil {
				return err
			}
			return a.generate(k, rows, cols)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(dataset.KindCluster), "dataset kind")
	cmd.Flags().IntVar(&rows, "rows", 1000, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 10, "number of columns")

	return cmd
}
