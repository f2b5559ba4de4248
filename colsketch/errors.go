// SPDX-License-Identifier: MIT

package colsketch

import (
	"errors"
	"fmt"
)

// ErrConfig reports an input the sketcher cannot work with: fewer than two
// rows, or no candidate column left after exclusion.
var ErrConfig = errors.New("colsketch: invalid configuration")

const (
	methodCompute = "Compute"
	methodTable   = "Table"
)

func colErrorf(method string, err error) error {
	return fmt.Errorf("colsketch: %s: %w", method, err)
}
