package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createRouteIndexes()
	createStationIndexes()
	createAdminIndexes()
}

func createRouteIndexes() {
	routesCollection := GetCollection("routes")
	routesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "displayname", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "systemrefs", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "gameserverref", Value: 1},
				{Key: "dimension", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := routesCollection.Indexes().CreateMany(context.Background(), routesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	depotsCollection := GetCollection("depots")
	depotsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "routerefs", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = depotsCollection.Indexes().CreateMany(context.Background(), depotsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createStationIndexes() {
	stationsCollection := GetCollection("stations")
	stationsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "gameserverref", Value: 1},
				{Key: "dimension", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := stationsCollection.Indexes().CreateMany(context.Background(), stationsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	platformsCollection := GetCollection("platforms")
	platformsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "stationref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "routerefs", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = platformsCollection.Indexes().CreateMany(context.Background(), platformsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createAdminIndexes() {
	railSystemsCollection := GetCollection("rail_systems")
	_, err := railSystemsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "identifier", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	companiesCollection := GetCollection("companies")
	_, err = companiesCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "identifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "systemrefs", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	importRunsCollection := GetCollection("import_runs")
	_, err = importRunsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "gameserverref", Value: 1},
				{Key: "dimension", Value: 1},
			},
		},
		{
			Keys:    bson.D{{Key: "creationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(7 * 24 * 3600), // Expire after a week
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
