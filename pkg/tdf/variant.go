package tdf

// SelectBaseVariant picks the reference variant all other directions of the
// same route are aligned against: the one with the most stops, ties broken by
// first-encountered order.
func SelectBaseVariant(variants []*Route) *Route {
	var base *Route

	for _, variant := range variants {
		if base == nil || len(variant.Stops) > len(base.Stops) {
			base = variant
		}
	}

	return base
}

// StopOrderReversed decides whether the active variant's stop list must be
// displayed in reverse so it continues in the same travel direction as the
// base variant. Only the endpoint stations are compared, first by resolved
// station id and then by display name where ids are missing. A fully
// ambiguous mismatch defaults to no reversal - a disjoint variant may display
// backwards, which is an accepted limitation of the endpoint heuristic. Both
// stop sequences must already be sorted ascending by order.
func StopOrderReversed(base []Stop, active []Stop, resolver *Resolver) bool {
	if len(base) < 2 || len(active) < 2 {
		return false
	}

	baseFirst := resolver.StationIdentity(base[0])
	baseLast := resolver.StationIdentity(base[len(base)-1])
	activeFirst := resolver.StationIdentity(active[0])
	activeLast := resolver.StationIdentity(active[len(active)-1])

	if reversed, decided := compareEndpoints(baseFirst, baseLast, activeFirst, activeLast); decided {
		return reversed
	}

	baseFirst = comparableLabel(resolver, base[0])
	baseLast = comparableLabel(resolver, base[len(base)-1])
	activeFirst = comparableLabel(resolver, active[0])
	activeLast = comparableLabel(resolver, active[len(active)-1])

	if reversed, decided := compareEndpoints(baseFirst, baseLast, activeFirst, activeLast); decided {
		return reversed
	}

	return false
}

// comparableLabel returns a stop's display name for endpoint comparison. The
// unknown placeholder must not compare equal between two unresolvable stops.
func comparableLabel(resolver *Resolver, stop Stop) string {
	label := resolver.StationLabel(stop)
	if label == UnknownStationLabel {
		return ""
	}

	return label
}

func compareEndpoints(baseFirst string, baseLast string, activeFirst string, activeLast string) (bool, bool) {
	if baseFirst != "" && baseFirst == activeFirst {
		return false, true
	}

	if baseFirst != "" && baseFirst == activeLast {
		return true, true
	}

	if baseLast != "" && baseLast == activeFirst {
		return true, true
	}

	return false, false
}
