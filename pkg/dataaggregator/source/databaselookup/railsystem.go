package databaselookup

import (
	"context"
	"errors"

	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func (s Source) RailSystemQuery(q query.RailSystem) (*tdf.RailSystem, error) {
	railSystemsCollection := database.GetCollection("rail_systems")

	var railSystem *tdf.RailSystem
	railSystemsCollection.FindOne(context.Background(), q.ToBson()).Decode(&railSystem)

	if railSystem == nil {
		return nil, errors.New("could not find a matching Rail System")
	}

	return railSystem, nil
}
