package tdf

type Station struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime     string `groups:"detail"`
	ModificationDateTime string `groups:"detail"`

	DataSource *DataSource `groups:"internal"`

	Name  string `groups:"basic"`
	Color int64  `groups:"basic"`
	Zone  int    `groups:"basic"`

	GameServerRef string `groups:"basic"`
	Dimension     string `groups:"basic"`

	Bounds *Bounds `groups:"basic"`
}

type Bounds struct {
	MinX float64 `groups:"basic"`
	MinZ float64 `groups:"basic"`
	MaxX float64 `groups:"basic"`
	MaxZ float64 `groups:"basic"`
}

func (b *Bounds) Midpoint() Point {
	return Point{
		X: (b.MinX + b.MaxX) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}

func (s *Station) ColorHex() string {
	return ColorToHex(s.Color)
}
