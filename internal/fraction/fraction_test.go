package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10/4", "2.5"},
		{"0/5", "0"},
		{"100/100", "1"},
		{"-2500/100", "-25"},
		{"1/8", "0.125"},
		{"250000/100000000", "0.0025"},
	}
	for _, tt := range tests {
		got := Decode(tt.in)
		assert.True(t, got.Valid, "Decode(%q) should be valid", tt.in)
		assert.Equal(t, tt.want, got.Decimal.String(), "Decode(%q)", tt.in)
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{"", "10", "10/0", "abc/5", "5/xyz", "/", "10/"} {
		got := Decode(in)
		assert.False(t, got.Valid, "Decode(%q) should be null", in)
	}
}

func TestDecodeOrZero(t *testing.T) {
	assert.Equal(t, "2.5", DecodeOrZero("10/4").String())
	assert.True(t, DecodeOrZero("10/0").IsZero())
	assert.True(t, DecodeOrZero("garbage").IsZero())
}
