package mapsnapshot

import (
	"encoding/json"
	"io"
)

// Snapshot is the full map dump a game server exposes for one dimension.
type Snapshot struct {
	// Sequence increases monotonically with every dump the server produces.
	Sequence  int64  `json:"sequence"`
	Dimension string `json:"dimension"`

	Routes    []SnapshotRoute    `json:"routes"`
	Stations  []SnapshotStation  `json:"stations"`
	Platforms []SnapshotPlatform `json:"platforms"`
	Depots    []SnapshotDepot    `json:"depots"`
}

type SnapshotRoute struct {
	ID string `json:"id"`

	// Name is the composite "title|subtitle||badge" display name.
	Name  string `json:"name"`
	Color int64  `json:"color"`
	Type  string `json:"type"`

	DepotID string `json:"depot_id"`

	Stops []SnapshotStop `json:"stops"`
	Paths []SnapshotPath `json:"paths"`

	// Points is raw geometry for servers that do not expose per-direction
	// paths.
	Points []SnapshotPoint `json:"points"`
}

type SnapshotStop struct {
	Order       int    `json:"order"`
	PlatformID  string `json:"platform_id"`
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	DwellTicks  int64  `json:"dwell_ticks"`
}

type SnapshotPath struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	IsPrimary bool            `json:"is_primary"`
	Points    []SnapshotPoint `json:"points"`
}

type SnapshotPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type SnapshotStation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color int64  `json:"color"`
	Zone  int    `json:"zone"`

	Bounds *SnapshotBounds `json:"bounds"`
}

type SnapshotBounds struct {
	MinX float64 `json:"min_x"`
	MinZ float64 `json:"min_z"`
	MaxX float64 `json:"max_x"`
	MaxZ float64 `json:"max_z"`
}

type SnapshotPlatform struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StationID  string `json:"station_id"`
	DwellTicks int64  `json:"dwell_ticks"`

	RouteIDs []string `json:"route_ids"`
}

type SnapshotDepot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color int64  `json:"color"`

	Bounds *SnapshotBounds `json:"bounds"`

	RouteIDs []string `json:"route_ids"`
}

func Decode(reader io.Reader) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(reader).Decode(&snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
