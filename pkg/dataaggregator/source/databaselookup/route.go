package databaselookup

import (
	"context"
	"errors"

	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func (s Source) RouteQuery(q query.Route) (*tdf.Route, error) {
	routesCollection := database.GetCollection("routes")

	var route *tdf.Route
	routesCollection.FindOne(context.Background(), q.ToBson()).Decode(&route)

	if route == nil {
		return nil, errors.New("could not find a matching Route")
	}

	return route, nil
}
