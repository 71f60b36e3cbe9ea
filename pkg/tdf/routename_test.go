package tdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRouteName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RouteNameParts
	}{
		{
			name:     "title subtitle and badge",
			input:    "A|B||C",
			expected: RouteNameParts{Title: "A", Subtitle: "B", Badge: "C"},
		},
		{
			name:     "title only",
			input:    "A",
			expected: RouteNameParts{Title: "A"},
		},
		{
			name:     "title and subtitle",
			input:    "Line 1|Airport Branch",
			expected: RouteNameParts{Title: "Line 1", Subtitle: "Airport Branch"},
		},
		{
			name:     "title and badge without subtitle",
			input:    "Line 1||Express",
			expected: RouteNameParts{Title: "Line 1", Badge: "Express"},
		},
		{
			name:     "empty name",
			input:    "",
			expected: RouteNameParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitRouteName(tt.input))
		})
	}
}
