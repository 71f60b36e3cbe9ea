package query

import "go.mongodb.org/mongo-driver/bson"

type Route struct {
	PrimaryIdentifier string
}

func (r *Route) ToBson() bson.M {
	if r.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": r.PrimaryIdentifier}
	}

	return nil
}

// RouteDetail assembles the full display projection of a route: resolved
// stops, sibling variants with reversal flags, selected geometry path.
type RouteDetail struct {
	PrimaryIdentifier string
}

// RouteVariants lists all routes sharing one base title on a game server.
type RouteVariants struct {
	Title         string
	GameServerRef string
	Dimension     string
}
