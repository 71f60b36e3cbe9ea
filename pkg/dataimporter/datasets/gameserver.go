package datasets

import "time"

// GameServer is one registered in-game railway server whose map endpoint we
// pull snapshots from.
type GameServer struct {
	Identifier string `yaml:"Identifier"`
	Name       string `yaml:"Name"`

	// Endpoint is the base URL of the map HTTP endpoint exposed by the game
	// server.
	Endpoint string `yaml:"Endpoint"`

	Dimensions []string `yaml:"Dimensions"`

	Provider Provider `yaml:"Provider"`
}

type Provider struct {
	Name    string `yaml:"Name"`
	Website string `yaml:"Website"`
}

// ImportRun records one applied snapshot so stale snapshots can be detected
// and skipped.
type ImportRun struct {
	GameServerRef string
	Dimension     string

	// Sequence is the game server's monotonically increasing snapshot
	// counter.
	Sequence int64

	// CreationDateTime must be a real date for the TTL index to apply.
	CreationDateTime time.Time

	RouteCount    int
	StationCount  int
	PlatformCount int
	DepotCount    int
}
