package tdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDwellTicks(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int64
		expected string
	}{
		{"half second", 10, "0.5"},
		{"one and a half seconds", 30, "1.5"},
		{"whole seconds trim the dot", 40, "2"},
		{"zero", 0, "0"},
		{"sub tick precision kept", 1, "0.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDwellTicks(tt.ticks))
		})
	}
}

func TestStopDisplayKey(t *testing.T) {
	stop := Stop{Order: 3, PlatformRef: "p1", StationRef: "s1"}

	assert.Equal(t, "p1-s1-3", stop.DisplayKey())
}

func TestRouteOrderedStops(t *testing.T) {
	route := Route{
		Stops: []Stop{
			{Order: 20, StationRef: "c"},
			{Order: 0, StationRef: "a"},
			{Order: 7, StationRef: "b"},
		},
	}

	ordered := route.OrderedStops()

	assert.Equal(t, []string{"a", "b", "c"}, []string{
		ordered[0].StationRef, ordered[1].StationRef, ordered[2].StationRef,
	})

	// The route itself is untouched
	assert.Equal(t, "c", route.Stops[0].StationRef)
}
