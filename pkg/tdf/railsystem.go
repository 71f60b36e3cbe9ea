package tdf

// RailSystem is an admin managed grouping of routes under one network
// identity, eg. all the lines of one in-game metro network.
type RailSystem struct {
	Identifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	Name        string `groups:"basic"`
	Description string `groups:"basic"`
	Color       int64  `groups:"basic"`

	GameServerRef string `groups:"basic"`

	RouteRefs []string `groups:"basic"`
}
