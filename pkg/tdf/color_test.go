package tdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{"black", 0, "#000000"},
		{"white", 16777215, "#ffffff"},
		{"red", 16711680, "#ff0000"},
		{"zero padded", 255, "#0000ff"},
		{"alpha bits masked off", 0xFF00FF00, "#00ff00"},
		{"negative has no colour", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorToHex(tt.value))
		})
	}
}
