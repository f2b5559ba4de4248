// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsketch/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultPolicy_StoresMissing verifies the documented default: NaN and Inf
// are stored as-is.
func TestDefaultPolicy_StoresMissing(t *testing.T) {
	require.False(t, matrix.DefaultValidateNaNInf)
	m, err := matrix.NewDenseWith(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(1)))
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	loose, err := matrix.NewDenseWith(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}
