package tdf

type Depot struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	DataSource *DataSource `groups:"internal"`

	Name  string `groups:"basic"`
	Color int64  `groups:"basic"`

	GameServerRef string `groups:"basic"`
	Dimension     string `groups:"basic"`

	Bounds *Bounds `groups:"basic"`

	RouteRefs []string `groups:"basic"`
}

func (d *Depot) ColorHex() string {
	return ColorToHex(d.Color)
}
