package tdf

const (
	// UnknownStationLabel is shown when a stop cannot be resolved to any
	// station record or embedded name.
	UnknownStationLabel = "Unknown Station"

	// PlaceholderLabel is the generic placeholder for missing platform labels.
	PlaceholderLabel = "—"
)

// Resolver maps stops onto station and platform identities using the fully
// loaded station and platform sets of one route detail. All lookups are plain
// map reads over an in-memory snapshot.
type Resolver struct {
	stations  map[string]*Station
	platforms map[string]*Platform
}

func NewResolver(stations []*Station, platforms []*Platform) *Resolver {
	resolver := &Resolver{
		stations:  map[string]*Station{},
		platforms: map[string]*Platform{},
	}

	for _, station := range stations {
		resolver.stations[station.PrimaryIdentifier] = station
	}
	for _, platform := range platforms {
		resolver.platforms[platform.PrimaryIdentifier] = platform
	}

	return resolver
}

// Station resolves the station a stop visits, either through the direct
// station reference or through the owning station of its platform.
func (r *Resolver) Station(stop Stop) *Station {
	if stop.StationRef != "" {
		if station := r.stations[stop.StationRef]; station != nil {
			return station
		}
	}

	if stop.PlatformRef != "" {
		if platform := r.platforms[stop.PlatformRef]; platform != nil {
			return r.stations[platform.StationRef]
		}
	}

	return nil
}

// StationIdentity returns the resolved station id for a stop, or an empty
// string when the stop cannot be resolved.
func (r *Resolver) StationIdentity(stop Stop) string {
	if station := r.Station(stop); station != nil {
		return station.PrimaryIdentifier
	}

	return ""
}

// StationLabel returns a display name for the station a stop visits,
// preferring the resolved station record, then the name embedded on the stop.
func (r *Resolver) StationLabel(stop Stop) string {
	if station := r.Station(stop); station != nil && station.Name != "" {
		return station.Name
	}

	if stop.StationName != "" {
		return stop.StationName
	}

	return UnknownStationLabel
}

// PlatformLabel returns a display label for the platform a stop calls at.
func (r *Resolver) PlatformLabel(stop Stop) string {
	if stop.PlatformRef != "" {
		if platform := r.platforms[stop.PlatformRef]; platform != nil && platform.Name != "" {
			return platform.Name
		}
	}

	return PlaceholderLabel
}
