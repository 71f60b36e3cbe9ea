package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/elastic_client"
	"github.com/trackmap/trackmap/pkg/tdf"
	"go.mongodb.org/mongo-driver/bson"
)

func IndexStations() {
	indexName := fmt.Sprintf("trackmap-stations-%d", time.Now().Unix())

	createStationIndex(indexName)
	indexStationsFromMongo(indexName)

	deleteOldIndexes("trackmap-stations-*", indexName)
}

func createStationIndex(indexName string) {
	mapping := `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 1
		},
		"mappings": {
			"properties": {
				"PrimaryIdentifier": {
					"type": "text",
					"fields": {
						"keyword": {
							"type": "keyword",
							"ignore_above": 256
						}
					}
				},
				"Name": {
					"type": "text",
					"fields": {
						"keyword": {
							"type": "keyword",
							"ignore_above": 256
						},
						"search_as_you_type": {
							"type": "search_as_you_type"
						}
					}
				},
				"GameServerRef": {
					"type": "keyword"
				},
				"Dimension": {
					"type": "keyword"
				},
				"Zone": {
					"type": "integer"
				}
			}
		}
	}`

	indexReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	_, err := indexReq.Do(context.Background(), elastic_client.Client)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create index")
	}
}

func indexStationsFromMongo(indexName string) {
	stationsCollection := database.GetCollection("stations")

	cursor, _ := stationsCollection.Find(context.Background(), bson.M{})

	for cursor.Next(context.Background()) {
		var station *tdf.Station
		cursor.Decode(&station)

		jsonStation, _ := json.Marshal(map[string]interface{}{
			"PrimaryIdentifier": station.PrimaryIdentifier,
			"Name":              station.Name,
			"GameServerRef":     station.GameServerRef,
			"Dimension":         station.Dimension,
			"Zone":              station.Zone,
		})

		elastic_client.IndexRequest(indexName, bytes.NewReader(jsonStation))
	}

	log.Info().Msg("Sent all station index requests to queue")
}
