package tdf

// VariantSummary describes one direction/branch of a route relative to the
// base variant of the same title.
type VariantSummary struct {
	PrimaryIdentifier string         `groups:"basic"`
	NameParts         RouteNameParts `groups:"basic"`
	StopCount         int            `groups:"basic"`

	IsBase   bool `groups:"basic"`
	Reversed bool `groups:"basic"`
}

// StopDisplay is a stop with its station and platform labels resolved for
// display.
type StopDisplay struct {
	Stop `groups:"basic"`

	DisplayKey string `groups:"basic"`

	StationIdentity string `groups:"basic"`
	StationLabel    string `groups:"basic"`
	PlatformLabel   string `groups:"basic"`
	DwellSeconds    string `groups:"basic"`
}

type RouteDetail struct {
	Route *Route `groups:"basic,detail"`

	NameParts RouteNameParts `groups:"basic"`
	ColorHex  string         `groups:"basic"`

	// Stops are in display order: reversed when the route runs against the
	// base variant's direction.
	Stops    []StopDisplay `groups:"basic"`
	Reversed bool          `groups:"basic"`

	Variants []VariantSummary `groups:"basic"`

	// SelectedPathIdentifier is the geometry path nearest the first displayed
	// stop, empty when the route has no usable geometry.
	SelectedPathIdentifier string `groups:"basic"`
}

// BuildRouteDetail assembles the display projection for one route against its
// sibling variants. All inputs are fully loaded snapshots; the function is
// pure.
func BuildRouteDetail(route *Route, variants []*Route, stations []*Station, platforms []*Platform) *RouteDetail {
	resolver := NewResolver(stations, platforms)

	base := SelectBaseVariant(variants)
	if base == nil {
		base = route
	}

	detail := &RouteDetail{
		Route:     route,
		NameParts: route.NameParts(),
		ColorHex:  route.ColorHex(),
	}

	orderedStops := route.OrderedStops()

	if route.PrimaryIdentifier != base.PrimaryIdentifier {
		detail.Reversed = StopOrderReversed(base.OrderedStops(), orderedStops, resolver)
	}

	if detail.Reversed {
		for i, j := 0, len(orderedStops)-1; i < j; i, j = i+1, j-1 {
			orderedStops[i], orderedStops[j] = orderedStops[j], orderedStops[i]
		}
	}

	for _, stop := range orderedStops {
		detail.Stops = append(detail.Stops, StopDisplay{
			Stop:            stop,
			DisplayKey:      stop.DisplayKey(),
			StationIdentity: resolver.StationIdentity(stop),
			StationLabel:    resolver.StationLabel(stop),
			PlatformLabel:   resolver.PlatformLabel(stop),
			DwellSeconds:    stop.DwellSeconds(),
		})
	}

	for _, variant := range variants {
		summary := VariantSummary{
			PrimaryIdentifier: variant.PrimaryIdentifier,
			NameParts:         variant.NameParts(),
			StopCount:         len(variant.Stops),
			IsBase:            variant.PrimaryIdentifier == base.PrimaryIdentifier,
		}

		if !summary.IsBase {
			summary.Reversed = StopOrderReversed(base.OrderedStops(), variant.OrderedStops(), resolver)
		}

		detail.Variants = append(detail.Variants, summary)
	}

	if route.Geometry != nil && len(route.Geometry.Paths) > 0 {
		selected := NearestPath(route.Geometry.Paths, detail.referencePoint(resolver))
		if selected != nil {
			detail.SelectedPathIdentifier = selected.Identifier
		}
	}

	return detail
}

// referencePoint derives the map reference for path selection from the first
// displayed stop's station bounds midpoint.
func (d *RouteDetail) referencePoint(resolver *Resolver) *Point {
	if len(d.Stops) == 0 {
		return nil
	}

	station := resolver.Station(d.Stops[0].Stop)
	if station == nil || station.Bounds == nil {
		return nil
	}

	midpoint := station.Bounds.Midpoint()

	return &midpoint
}
