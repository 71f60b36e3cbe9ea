package mapsnapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackmap/trackmap/pkg/tdf"
)

const testSnapshotJSON = `{
	"sequence": 42,
	"dimension": "overworld",
	"routes": [
		{
			"id": "line1-up",
			"name": "Line 1|City Loop||EXP",
			"color": 1087508,
			"type": "metro",
			"depot_id": "depot-east",
			"stops": [
				{"order": 0, "platform_id": "p1", "station_id": "s1", "station_name": "Central", "dwell_ticks": 100},
				{"order": 1, "platform_id": "p2", "station_id": "s2", "station_name": "Harbour", "dwell_ticks": 60}
			],
			"paths": [
				{"id": "path-a", "label": "up", "is_primary": true, "points": [{"x": 10, "y": 64, "z": -5}]}
			]
		}
	],
	"stations": [
		{"id": "s1", "name": "Central", "color": 255, "zone": 1, "bounds": {"min_x": 0, "min_z": 0, "max_x": 10, "max_z": 20}}
	],
	"platforms": [
		{"id": "p1", "name": "1", "station_id": "s1", "dwell_ticks": 100, "route_ids": ["line1-up"]}
	],
	"depots": [
		{"id": "depot-east", "name": "East Depot", "color": 16711680, "route_ids": ["line1-up"]}
	]
}`

func TestDecode(t *testing.T) {
	snapshot, err := Decode(strings.NewReader(testSnapshotJSON))
	require.NoError(t, err)

	assert.Equal(t, int64(42), snapshot.Sequence)
	assert.Equal(t, "overworld", snapshot.Dimension)
	require.Len(t, snapshot.Routes, 1)
	require.Len(t, snapshot.Routes[0].Stops, 2)
	assert.Equal(t, "Harbour", snapshot.Routes[0].Stops[1].StationName)
	require.Len(t, snapshot.Stations, 1)
	require.NotNil(t, snapshot.Stations[0].Bounds)
	assert.Equal(t, 20.0, snapshot.Stations[0].Bounds.MaxZ)
}

func TestConverter(t *testing.T) {
	snapshot, err := Decode(strings.NewReader(testSnapshotJSON))
	require.NoError(t, err)

	converter := NewConverter("emerald", "overworld", &tdf.DataSource{
		OriginalFormat: "mapsnapshot",
		Provider:       "emerald",
	})

	route := converter.Route(snapshot.Routes[0])
	assert.Equal(t, "emerald-overworld-line1-up", route.PrimaryIdentifier)
	assert.Equal(t, "Line 1", route.Title())
	assert.Equal(t, tdf.TransportMode(tdf.TransportModeMetro), route.TransportMode)
	assert.Equal(t, "emerald-overworld-depot-east", route.DepotRef)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, "emerald-overworld-p1", route.Stops[0].PlatformRef)
	assert.Equal(t, "emerald-overworld-s1", route.Stops[0].StationRef)
	require.NotNil(t, route.Geometry)
	require.Len(t, route.Geometry.Paths, 1)
	assert.True(t, route.Geometry.Paths[0].IsPrimary)

	station := converter.Station(snapshot.Stations[0])
	assert.Equal(t, "emerald-overworld-s1", station.PrimaryIdentifier)
	require.NotNil(t, station.Bounds)
	assert.Equal(t, tdf.Point{X: 5, Z: 10}, station.Bounds.Midpoint())

	platform := converter.Platform(snapshot.Platforms[0])
	assert.Equal(t, "emerald-overworld-s1", platform.StationRef)
	assert.Equal(t, []string{"emerald-overworld-line1-up"}, platform.RouteRefs)

	depot := converter.Depot(snapshot.Depots[0])
	assert.Equal(t, "East Depot", depot.Name)
	assert.Nil(t, depot.Bounds)
}

func TestConverterUnlinkedStop(t *testing.T) {
	converter := NewConverter("emerald", "overworld", nil)

	route := converter.Route(SnapshotRoute{
		ID:   "shuttle",
		Name: "Shuttle",
		Stops: []SnapshotStop{
			{Order: 0, StationName: "Waypoint", DwellTicks: 40},
			{Order: 1, PlatformID: "p9", StationID: "s9"},
		},
	})

	require.Len(t, route.Stops, 2)

	// a stop without linked game objects keeps empty refs
	assert.Empty(t, route.Stops[0].PlatformRef)
	assert.Empty(t, route.Stops[0].StationRef)
	assert.Equal(t, "Waypoint", route.Stops[0].StationName)

	assert.Equal(t, "emerald-overworld-p9", route.Stops[1].PlatformRef)
	assert.Equal(t, "emerald-overworld-s9", route.Stops[1].StationRef)
}

func TestParseTransportMode(t *testing.T) {
	tests := []struct {
		value    string
		expected tdf.TransportMode
	}{
		{"train", tdf.TransportModeTrain},
		{"Metro", tdf.TransportModeMetro},
		{" subway ", tdf.TransportModeMetro},
		{"HIGH_SPEED", tdf.TransportModeHighSpeed},
		{"ferry", tdf.TransportModeBoat},
		{"hovercraft", tdf.TransportModeUnknown},
		{"", tdf.TransportModeUnknown},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseTransportMode(test.value))
		})
	}
}
