package variants

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

// Source answers the composite route projections: the variant list of a route
// title and the fully assembled route detail.
type Source struct {
	detailCache *detailCache
}

func (s *Source) Setup() {
	s.detailCache = newDetailCache()
}

func (s *Source) GetName() string {
	return "Route Variants"
}

func (s *Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(tdf.RouteDetail{}),
		reflect.TypeOf([]*tdf.Route{}),
	}
}

func (s *Source) Lookup(q any) (interface{}, error) {
	switch query := q.(type) {
	case query.RouteDetail:
		return s.RouteDetailQuery(query)
	case query.RouteVariants:
		return s.VariantsQuery(query)
	}

	return nil, errors.New("unable to lookup")
}

func (s *Source) VariantsQuery(q query.RouteVariants) ([]*tdf.Route, error) {
	routesCollection := database.GetCollection("routes")

	filter := bson.M{}
	if q.GameServerRef != "" {
		filter["gameserverref"] = q.GameServerRef
	}
	if q.Dimension != "" {
		filter["dimension"] = q.Dimension
	}

	cursor, err := routesCollection.Find(context.Background(), filter)
	if err != nil {
		return nil, err
	}

	var routes []*tdf.Route
	if err := cursor.All(context.Background(), &routes); err != nil {
		return nil, err
	}

	// Titles are derived from the composite display name so the variant
	// grouping happens in memory. Route sets per server are small.
	util.InPlaceFilter(&routes, func(route *tdf.Route) bool {
		return route.Title() == q.Title
	})

	return routes, nil
}

func (s *Source) RouteDetailQuery(q query.RouteDetail) (*tdf.RouteDetail, error) {
	if cached := s.detailCache.Get(q.PrimaryIdentifier); cached != nil {
		return cached, nil
	}

	route, err := dataaggregator.Lookup[*tdf.Route](query.Route{
		PrimaryIdentifier: q.PrimaryIdentifier,
	})
	if err != nil {
		return nil, err
	}

	variants, err := dataaggregator.Lookup[[]*tdf.Route](query.RouteVariants{
		Title:         route.Title(),
		GameServerRef: route.GameServerRef,
		Dimension:     route.Dimension,
	})
	if err != nil {
		return nil, err
	}

	stations, platforms, err := loadResolutionSets(variants)
	if err != nil {
		return nil, err
	}

	detail := tdf.BuildRouteDetail(route, variants, stations, platforms)

	s.detailCache.Set(q.PrimaryIdentifier, detail)

	return detail, nil
}

// loadResolutionSets fetches the platforms serving any of the variants and
// the stations those platforms and stops reference.
func loadResolutionSets(variants []*tdf.Route) ([]*tdf.Station, []*tdf.Platform, error) {
	var variantIdentifiers []string
	var stationRefs []string

	for _, variant := range variants {
		variantIdentifiers = append(variantIdentifiers, variant.PrimaryIdentifier)

		for _, stop := range variant.Stops {
			stationRefs = append(stationRefs, stop.StationRef)
		}
	}

	platformsCollection := database.GetCollection("platforms")
	cursor, err := platformsCollection.Find(context.Background(), bson.M{
		"routerefs": bson.M{"$in": variantIdentifiers},
	})
	if err != nil {
		return nil, nil, err
	}

	var platforms []*tdf.Platform
	if err := cursor.All(context.Background(), &platforms); err != nil {
		return nil, nil, err
	}

	for _, platform := range platforms {
		stationRefs = append(stationRefs, platform.StationRef)
	}

	stationRefs = util.RemoveDuplicateStrings(stationRefs, nil)

	stationsCollection := database.GetCollection("stations")
	cursor, err = stationsCollection.Find(context.Background(), bson.M{
		"primaryidentifier": bson.M{"$in": stationRefs},
	})
	if err != nil {
		return nil, nil, err
	}

	var stations []*tdf.Station
	if err := cursor.All(context.Background(), &stations); err != nil {
		return nil, nil, err
	}

	log.Debug().
		Int("variants", len(variants)).
		Int("stations", len(stations)).
		Int("platforms", len(platforms)).
		Msg("Loaded route detail resolution sets")

	return stations, platforms, nil
}
