// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsketch/config"
	"github.com/katalvlaran/lvsketch/dataset"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CLISuite struct {
	suite.Suite
	dir   string
	input string
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.input = filepath.Join(s.dir, "cluster.csv")
	_, _, err := s.run("generate", "--kind", "cluster", "--rows", "60", "--cols", "5", "--output", s.input)
	s.Require().NoError(err)
}

// run executes one lvsketch invocation with JSON logs.
func (s *CLISuite) run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(""))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-format", "json"))
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func (s *CLISuite) open(path string) *dataset.MemorySource {
	src, err := dataset.OpenCSV(path)
	s.Require().NoError(err)

	return src
}

func (s *CLISuite) TestGenerate() {
	src := s.open(s.input)
	s.Require().Equal(60, src.NumRows())
	s.Require().Equal(5, src.NumCols())
}

func (s *CLISuite) TestRowSketch() {
	out := filepath.Join(s.dir, "row.csv")
	_, logs, err := s.run("row", "--input", s.input, "--radius", "0.3", "--output", out)
	s.Require().NoError(err)
	s.Require().Contains(logs, `"run_id"`)
	s.Require().Contains(logs, `"cpu_ms"`)

	src := s.open(out)
	names := src.ColumnNames()
	s.Require().Equal(dataset.FrequencyLabel, names[len(names)-1])
	freq, err := src.Data().Col(len(names) - 1)
	s.Require().NoError(err)
	total := 0.0
	for _, f := range freq {
		total += f
	}
	s.Require().Equal(60.0, total, "every row is counted once")
}

func (s *CLISuite) TestColSketchToStdout() {
	stdout, _, err := s.run("col", "--input", s.input, "--count", "2", "--workers", "2")
	s.Require().NoError(err)

	src, err := dataset.ReadCSV(strings.NewReader(stdout))
	s.Require().NoError(err)
	s.Require().Equal(2, src.NumCols())
	s.Require().Equal(60, src.NumRows())
}

func (s *CLISuite) TestCURSketchWithArtifacts() {
	out := filepath.Join(s.dir, "cur.csv")
	png := filepath.Join(s.dir, "cur.png")
	prom := filepath.Join(s.dir, "lvsketch.prom")
	_, _, err := s.run("cur", "--input", s.input, "--rows", "10", "--cols", "3",
		"--output", out, "--plot", png, "--metrics-textfile", prom)
	s.Require().NoError(err)

	src := s.open(out)
	s.Require().Equal(10, src.NumRows())
	s.Require().Equal(3, src.NumCols())

	_, err = os.Stat(png)
	s.Require().NoError(err)
	body, err := os.ReadFile(prom)
	s.Require().NoError(err)
	s.Require().Contains(string(body), `lvsketch_runs_total{kind="cur",status="ok"} 1`)
	s.Require().Contains(string(body), `lvsketch_output_rows{kind="cur"} 10`)
}

func (s *CLISuite) TestConfigFileWithFlagOverride() {
	cfgPath := filepath.Join(s.dir, "run.yaml")
	body := "input: " + s.input + "\ncolumn:\n  count: 3\n"
	s.Require().NoError(os.WriteFile(cfgPath, []byte(body), 0o600))

	stdout, _, err := s.run("col", "--config", cfgPath, "--count", "1")
	s.Require().NoError(err)
	src, err := dataset.ReadCSV(strings.NewReader(stdout))
	s.Require().NoError(err)
	s.Require().Equal(1, src.NumCols(), "the flag wins over the file")

	stdout, _, err = s.run("col", "--config", cfgPath)
	s.Require().NoError(err)
	src, err = dataset.ReadCSV(strings.NewReader(stdout))
	s.Require().NoError(err)
	s.Require().Equal(3, src.NumCols())
}

func (s *CLISuite) TestErrors() {
	prom := filepath.Join(s.dir, "fail.prom")
	_, _, err := s.run("cur", "--input", s.input, "--metrics-textfile", prom)
	s.Require().ErrorIs(err, config.ErrInvalid)
	body, rerr := os.ReadFile(prom)
	s.Require().NoError(rerr)
	s.Require().Contains(string(body), `lvsketch_runs_total{kind="cur",status="error"} 1`)

	_, _, err = s.run("row")
	s.Require().ErrorIs(err, errNoInput)

	_, _, err = s.run("generate", "--kind", "grid")
	s.Require().ErrorIs(err, dataset.ErrUnknownKind)

	_, _, err = s.run("row", "--input", s.input, "--log-level", "loud")
	s.Require().ErrorIs(err, config.ErrInvalid)
}

func (s *CLISuite) TestRootWithoutTerminalPrintsHelp() {
	stdout, _, err := s.run()
	s.Require().NoError(err)
	s.Require().Contains(stdout, "lvsketch reduces a matrix")
}

func (s *CLISuite) TestInteractive() {
	a := newApp()
	var out bytes.Buffer
	a.in = strings.NewReader(s.input + "\nyes\ncol\n2\n")
	a.out = &out

	s.Require().NoError(a.interactive())
	s.Require().Contains(out.String(), "Enter number of sketch columns desired")
	_, table, found := strings.Cut(out.String(), "desired\n")
	s.Require().True(found)
	src, err := dataset.ReadCSV(strings.NewReader(table))
	s.Require().NoError(err)
	s.Require().Equal(2, src.NumCols())

	a = newApp()
	a.in = strings.NewReader(s.input + "\nno\nrowcol\n")
	a.out = &out
	s.Require().ErrorIs(a.interactive(), config.ErrInvalid)

	a = newApp()
	a.in = strings.NewReader(s.input + "\n")
	a.out = &out
	s.Require().ErrorIs(a.interactive(), errNoAnswer)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"shown"`)
}
