package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotSupersedes(t *testing.T) {
	tests := []struct {
		name         string
		sequence     int64
		lastSequence int64
		expected     bool
	}{
		{"newer snapshot applies", 10, 5, true},
		{"equal sequence is stale", 5, 5, false},
		{"older snapshot is stale", 3, 5, false},
		{"first ever import applies", 1, 0, true},
		{"server without sequences always applies", 0, 99, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, SnapshotSupersedes(test.sequence, test.lastSequence))
		})
	}
}
