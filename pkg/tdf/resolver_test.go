package tdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolver() *Resolver {
	return NewResolver(
		[]*Station{
			{PrimaryIdentifier: "station-x", Name: "Central"},
			{PrimaryIdentifier: "station-y", Name: "Harbour"},
		},
		[]*Platform{
			{PrimaryIdentifier: "platform-1", Name: "1", StationRef: "station-x"},
			{PrimaryIdentifier: "platform-orphan", Name: "9", StationRef: "station-missing"},
		},
	)
}

func TestResolverStation(t *testing.T) {
	resolver := testResolver()

	tests := []struct {
		name     string
		stop     Stop
		expected string
	}{
		{"direct station reference", Stop{StationRef: "station-y"}, "station-y"},
		{"via platform owner", Stop{PlatformRef: "platform-1"}, "station-x"},
		{"direct reference beats platform", Stop{StationRef: "station-y", PlatformRef: "platform-1"}, "station-y"},
		{"unknown references", Stop{StationRef: "nope", PlatformRef: "nope"}, ""},
		{"platform with missing owner", Stop{PlatformRef: "platform-orphan"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.StationIdentity(tt.stop))
		})
	}
}

func TestResolverStationLabel(t *testing.T) {
	resolver := testResolver()

	tests := []struct {
		name     string
		stop     Stop
		expected string
	}{
		{"resolved station name", Stop{StationRef: "station-x"}, "Central"},
		{"embedded name fallback", Stop{StationRef: "nope", StationName: "Ghost Town"}, "Ghost Town"},
		{"unknown placeholder", Stop{}, UnknownStationLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.StationLabel(tt.stop))
		})
	}
}

func TestResolverPlatformLabel(t *testing.T) {
	resolver := testResolver()

	assert.Equal(t, "1", resolver.PlatformLabel(Stop{PlatformRef: "platform-1"}))
	assert.Equal(t, PlaceholderLabel, resolver.PlatformLabel(Stop{PlatformRef: "nope"}))
	assert.Equal(t, PlaceholderLabel, resolver.PlatformLabel(Stop{}))
}
