// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmpty is returned for a file or table with no header.
	ErrEmpty = errors.New("dataset: empty input")

	// ErrRagged is returned when a record (or bounds vector) does not match
	// the header width.
	ErrRagged = errors.New("dataset: ragged record")

	// ErrNoRows is returned for a CSV file holding a header and no records.
	ErrNoRows = errors.New("dataset: no data records")

	// ErrUnknownKind is returned by Generate for an unsupported dataset kind.
	ErrUnknownKind = errors.New("dataset: unknown kind")

	// ErrShape is returned by Generate when rows or cols are too small for
	// the requested kind.
	ErrShape = errors.New("dataset: shape too small")
)
