package tdf

import (
	"golang.org/x/exp/slices"
)

type Route struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	DataSource *DataSource `groups:"internal"`

	// DisplayName is the composite "title|subtitle||badge" name as stored in
	// the game. Use NameParts for the decomposed form.
	DisplayName string `groups:"basic"`

	Color         int64         `groups:"basic"`
	TransportMode TransportMode `groups:"basic"`

	GameServerRef string `groups:"basic"`
	Dimension     string `groups:"basic"`

	DepotRef   string   `groups:"basic"`
	SystemRefs []string `groups:"basic"`

	Stops []Stop `groups:"detail"`

	Geometry *Geometry `groups:"detail"`
}

func (r *Route) NameParts() RouteNameParts {
	return SplitRouteName(r.DisplayName)
}

// Title is the base display name shared by all variants of this route.
func (r *Route) Title() string {
	return r.NameParts().Title
}

func (r *Route) ColorHex() string {
	return ColorToHex(r.Color)
}

// OrderedStops returns the stops sorted ascending by order index. Snapshots
// usually arrive sorted already but the order field is the only guarantee.
func (r *Route) OrderedStops() []Stop {
	stops := slices.Clone(r.Stops)
	slices.SortStableFunc(stops, func(a Stop, b Stop) int {
		return a.Order - b.Order
	})

	return stops
}
