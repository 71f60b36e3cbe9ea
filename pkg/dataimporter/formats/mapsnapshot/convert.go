package mapsnapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/trackmap/trackmap/pkg/tdf"
)

var transportModeNames = map[string]tdf.TransportMode{
	"train":      tdf.TransportModeTrain,
	"metro":      tdf.TransportModeMetro,
	"subway":     tdf.TransportModeMetro,
	"light_rail": tdf.TransportModeLightRail,
	"tram":       tdf.TransportModeLightRail,
	"high_speed": tdf.TransportModeHighSpeed,
	"boat":       tdf.TransportModeBoat,
	"ferry":      tdf.TransportModeBoat,
	"cable_car":  tdf.TransportModeCableCar,
	"airplane":   tdf.TransportModeAirplane,
	"plane":      tdf.TransportModeAirplane,
}

// ParseTransportMode maps a game server route type string onto a transport
// mode, falling back to UNKNOWN for anything unrecognised.
func ParseTransportMode(value string) tdf.TransportMode {
	if mode, ok := transportModeNames[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mode
	}

	return tdf.TransportModeUnknown
}

// PrimaryIdentifier namespaces a raw game object id with the server and
// dimension it came from, keeping identifiers unique across servers.
func PrimaryIdentifier(gameServerRef string, dimension string, id string) string {
	return fmt.Sprintf("%s-%s-%s", gameServerRef, dimension, id)
}

// Converter turns snapshot records into trackmap records for one game server
// and dimension.
type Converter struct {
	GameServerRef string
	Dimension     string
	DataSource    *tdf.DataSource

	now string
}

func NewConverter(gameServerRef string, dimension string, datasource *tdf.DataSource) *Converter {
	return &Converter{
		GameServerRef: gameServerRef,
		Dimension:     dimension,
		DataSource:    datasource,

		now: time.Now().Format(time.RFC3339),
	}
}

func (c *Converter) identifier(id string) string {
	return PrimaryIdentifier(c.GameServerRef, c.Dimension, id)
}

func (c *Converter) Route(source SnapshotRoute) *tdf.Route {
	route := &tdf.Route{
		PrimaryIdentifier: c.identifier(source.ID),

		CreationDateTime:     c.now,
		ModificationDateTime: c.now,

		DataSource: c.DataSource,

		DisplayName:   source.Name,
		Color:         source.Color,
		TransportMode: ParseTransportMode(source.Type),

		GameServerRef: c.GameServerRef,
		Dimension:     c.Dimension,
	}

	if source.DepotID != "" {
		route.DepotRef = c.identifier(source.DepotID)
	}

	for _, stop := range source.Stops {
		tdfStop := tdf.Stop{
			Order:       stop.Order,
			StationName: stop.StationName,
			DwellTicks:  stop.DwellTicks,
		}

		// Refs stay empty when the game exposes no linked object, otherwise
		// namespacing would fabricate identifiers like "server-dimension-"
		if stop.PlatformID != "" {
			tdfStop.PlatformRef = c.identifier(stop.PlatformID)
		}
		if stop.StationID != "" {
			tdfStop.StationRef = c.identifier(stop.StationID)
		}

		route.Stops = append(route.Stops, tdfStop)
	}

	if len(source.Paths) > 0 || len(source.Points) > 0 {
		route.Geometry = &tdf.Geometry{
			Source: "mapsnapshot",
		}

		for _, path := range source.Paths {
			route.Geometry.Paths = append(route.Geometry.Paths, tdf.Path{
				Identifier: c.identifier(path.ID),
				Label:      path.Label,
				IsPrimary:  path.IsPrimary,
				Points:     convertPoints(path.Points),
			})
		}

		route.Geometry.Points = convertPoints(source.Points)
	}

	return route
}

func (c *Converter) Station(source SnapshotStation) *tdf.Station {
	return &tdf.Station{
		PrimaryIdentifier: c.identifier(source.ID),

		CreationDateTime:     c.now,
		ModificationDateTime: c.now,

		DataSource: c.DataSource,

		Name:  source.Name,
		Color: source.Color,
		Zone:  source.Zone,

		GameServerRef: c.GameServerRef,
		Dimension:     c.Dimension,

		Bounds: convertBounds(source.Bounds),
	}
}

func (c *Converter) Platform(source SnapshotPlatform) *tdf.Platform {
	platform := &tdf.Platform{
		PrimaryIdentifier: c.identifier(source.ID),

		CreationDateTime:     c.now,
		ModificationDateTime: c.now,

		DataSource: c.DataSource,

		Name:       source.Name,
		StationRef: c.identifier(source.StationID),

		DwellTicks: source.DwellTicks,
	}

	for _, routeID := range source.RouteIDs {
		platform.RouteRefs = append(platform.RouteRefs, c.identifier(routeID))
	}

	return platform
}

func (c *Converter) Depot(source SnapshotDepot) *tdf.Depot {
	depot := &tdf.Depot{
		PrimaryIdentifier: c.identifier(source.ID),

		CreationDateTime:     c.now,
		ModificationDateTime: c.now,

		DataSource: c.DataSource,

		Name:  source.Name,
		Color: source.Color,

		GameServerRef: c.GameServerRef,
		Dimension:     c.Dimension,

		Bounds: convertBounds(source.Bounds),
	}

	for _, routeID := range source.RouteIDs {
		depot.RouteRefs = append(depot.RouteRefs, c.identifier(routeID))
	}

	return depot
}

func convertPoints(source []SnapshotPoint) []tdf.Point {
	var points []tdf.Point
	for _, point := range source {
		points = append(points, tdf.Point{X: point.X, Y: point.Y, Z: point.Z})
	}

	return points
}

func convertBounds(source *SnapshotBounds) *tdf.Bounds {
	if source == nil {
		return nil
	}

	return &tdf.Bounds{
		MinX: source.MinX,
		MinZ: source.MinZ,
		MaxX: source.MaxX,
		MaxZ: source.MaxZ,
	}
}
