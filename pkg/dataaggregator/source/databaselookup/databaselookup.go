package databaselookup

import (
	"errors"
	"reflect"

	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/tdf"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(tdf.Route{}),
		reflect.TypeOf(tdf.Station{}),
		reflect.TypeOf(tdf.Depot{}),
		reflect.TypeOf(tdf.RailSystem{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch query := q.(type) {
	case query.Route:
		return s.RouteQuery(query)
	case query.Station:
		return s.StationQuery(query)
	case query.Depot:
		return s.DepotQuery(query)
	case query.RailSystem:
		return s.RailSystemQuery(query)
	}

	return nil, errors.New("unable to lookup")
}
