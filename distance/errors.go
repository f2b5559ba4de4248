// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
)

// ErrLength indicates a distance buffer whose length does not match NumPairs(rows).
var ErrLength = errors.New("distance: buffer length mismatch")

const (
	methodPairwise  = "Pairwise"
	methodAddColumn = "AddColumn"
)

func distanceErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
