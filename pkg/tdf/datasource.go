package tdf

type DataSource struct {
	OriginalFormat string `groups:"internal"` // or enum (eg. mapsnapshot, csv)
	Provider       string `groups:"internal"`
	Dataset        string `groups:"internal"`
	Identifier     string `groups:"internal"`
}
