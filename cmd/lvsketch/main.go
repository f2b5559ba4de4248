// SPDX-License-Identifier: MIT

// Command lvsketch computes row, column and CUR sketches of CSV matrices.
//
// Usage:
//
//	lvsketch row --input data.csv --radius 0.2
//	lvsketch col --input data.csv --count 5 --output colsketch.csv
//	lvsketch cur --input data.csv --rows 100 --cols 10 --plot cur.png
//	lvsketch generate --kind swiss --rows 1000 --cols 100 --output swiss.csv
//
// Run without a subcommand in a terminal to be prompted for each setting.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
