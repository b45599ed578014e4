package handler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAccountName(t *testing.T) {
	require.Equal(t, "wanderer", normalizeAccountName("Wanderer"))
	require.Equal(t, "wanderer", normalizeAccountName("WANDERER"))

	// NFC: decomposed e + combining acute collapses to the precomposed form.
	require.Equal(t, normalizeAccountName("rémy"), normalizeAccountName("rémy"))
}

func TestValidAccountName(t *testing.T) {
	valid := []string{"abc", "wanderer_01", "a_b_c", "x234567890123456"}
	for _, name := range valid {
		require.True(t, validAccountName(name), "expected %q valid", name)
	}

	invalid := []string{
		"",
		"ab",                 // too short
		"x2345678901234567",  // 17 bytes
		"has space",
		"semi;colon",
		"dash-name",
	}
	for _, name := range invalid {
		require.False(t, validAccountName(name), "expected %q invalid", name)
	}
}

func TestFinite(t *testing.T) {
	require.True(t, finite(0))
	require.True(t, finite(-123.45))
	require.False(t, finite(math.NaN()))
	require.False(t, finite(math.Inf(1)))
	require.False(t, finite(math.Inf(-1)))
}
