package otp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_WithinRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, Min)
		require.LessOrEqual(t, code, Max)
	}
}

func TestGenerate_SixDigits(t *testing.T) {
	code, err := Generate()
	require.NoError(t, err)
	// Range excludes leading zeros by construction.
	require.True(t, code >= 100000 && code <= 999999)
}
