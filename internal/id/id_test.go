package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAccountID(t *testing.T) {
	assert.Equal(t, "A000001", FormatAccountID(1))
	assert.Equal(t, "A000142", FormatAccountID(142))
}

func TestParseAccountID(t *testing.T) {
	seq, err := ParseAccountID("A000042")
	require.NoError(t, err)
	assert.Equal(t, 42, seq)
}

func TestParseAccountID_Invalid(t *testing.T) {
	for _, s := range []string{"", "A1", "B000001", "A00000x", "A0000001", "Checking"} {
		_, err := ParseAccountID(s)
		assert.Error(t, err, "ParseAccountID(%q)", s)
	}
}

func TestIsAccountID(t *testing.T) {
	assert.True(t, IsAccountID("A000001"))
	assert.False(t, IsAccountID("Savings"))
	assert.False(t, IsAccountID("P000001"))
}
