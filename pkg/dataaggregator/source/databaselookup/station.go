package databaselookup

import (
	"context"
	"errors"

	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func (s Source) StationQuery(q query.Station) (*tdf.Station, error) {
	stationsCollection := database.GetCollection("stations")

	var station *tdf.Station
	stationsCollection.FindOne(context.Background(), q.ToBson()).Decode(&station)

	if station == nil {
		return nil, errors.New("could not find a matching Station")
	}

	return station, nil
}
