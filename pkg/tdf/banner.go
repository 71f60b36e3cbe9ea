package tdf

// Banner is an admin managed announcement shown above the browsing views.
type Banner struct {
	Identifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	Title   string `groups:"basic"`
	Content string `groups:"basic"`
	Link    string `groups:"basic"`

	Active bool `groups:"basic"`
}

// FeaturedItem is an admin managed highlight pointing at a route, station or
// railway system.
type FeaturedItem struct {
	Identifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	Title string `groups:"basic"`

	// TargetType is one of route, station or system.
	TargetType string `groups:"basic"`
	TargetRef  string `groups:"basic"`

	Position int `groups:"basic"`
}
