package tdf

type Platform struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	DataSource *DataSource `groups:"internal"`

	Name       string `groups:"basic"`
	StationRef string `groups:"basic"`

	DwellTicks int64 `groups:"basic"`

	// RouteRefs lists the routes calling at this platform.
	RouteRefs []string `groups:"basic"`
}
