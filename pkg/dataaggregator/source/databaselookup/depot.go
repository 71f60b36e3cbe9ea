package databaselookup

import (
	"context"
	"errors"

	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func (s Source) DepotQuery(q query.Depot) (*tdf.Depot, error) {
	depotsCollection := database.GetCollection("depots")

	var depot *tdf.Depot
	depotsCollection.FindOne(context.Background(), q.ToBson()).Decode(&depot)

	if depot == nil {
		return nil, errors.New("could not find a matching Depot")
	}

	return depot, nil
}
