// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsketch/config"
)

var errNoAnswer = errors.New("input closed before every question was answered")

// prompter asks one question per line.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errNoAnswer
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

func (p prompter) askInt(question string) (int, error) {
	s, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number: %w", s, config.ErrInvalid)
	}

	return v, nil
}

// interactive collects the run settings question by question, then sketches.
func (a *app) interactive() error {
	p := prompter{sc: bufio.NewScanner(a.in), out: a.out}

	input, err := p.ask("Enter input file name")
	if err != nil {
		return err
	}
	a.cfg.Input = input

	norm, err := p.ask(`Normalize columns to [0, 1] interval? ("yes", "no")`)
	if err != nil {
		return err
	}
	a.cfg.Normalize = strings.EqualFold(norm, "yes") || strings.EqualFold(norm, "y")

	kind, err := p.ask("Enter type of sketch (row, col, cur)")
	if err != nil {
		return err
	}
	kind = strings.ToLower(kind)

	switch kind {
	case config.KindRow:
		s, err := p.ask("Enter radius of enclosing balls (0 means the program chooses)")
		if err != nil {
			return err
		}
		if a.cfg.Row.Radius, err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("radius %q: %w", s, config.ErrInvalid)
		}
	case config.KindCol:
		if a.cfg.Column.Count, err = p.askInt("Enter number of sketch columns desired"); err != nil {
			return err
		}
	case config.KindCUR:
		if a.cfg.CUR.Rows, err = p.askInt("Enter number of sketch rows"); err != nil {
			return err
		}
		if a.cfg.CUR.Cols, err = p.askInt("Enter number of sketch cols"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("sketch type %q: %w", kind, config.ErrInvalid)
	}

	return a.sketch(kind)
}
