// SPDX-License-Identifier: MIT

package cur

import (
	"errors"
	"fmt"
)

// ErrConfig reports a request the input cannot satisfy: r > m, c > n,
// k > min(r, c), non-positive counts, an all-zero matrix or a sample whose
// Gram matrix has no positive singular value. Nothing is computed.
var ErrConfig = errors.New("cur: invalid configuration")

const methodCompute = "Compute"

func curErrorf(method string, err error) error {
	return fmt.Errorf("cur: %s: %w", method, err)
}
