// SPDX-License-Identifier: MIT

// Package dataset moves numeric tables in and out of the sketchers.
//
// OpenCSV and ReadCSV load strict comma-separated files (header of labels,
// numeric records, unparsable cells read as missing) into a Source, with
// optional per-column min/max normalization. Table and WriteCSV carry sketch
// artifacts back out. Generate draws the synthetic datasets used to exercise
// the sketchers: clusters, rings, planted outliers and a swiss roll.
package dataset
