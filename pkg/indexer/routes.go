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

func IndexRoutes() {
	indexName := fmt.Sprintf("trackmap-routes-%d", time.Now().Unix())

	createRouteIndex(indexName)
	indexRoutesFromMongo(indexName)

	deleteOldIndexes("trackmap-routes-*", indexName)
}

func createRouteIndex(indexName string) {
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
				"Title": {
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
				"Subtitle": {
					"type": "text"
				},
				"Badge": {
					"type": "keyword"
				},
				"TransportMode": {
					"type": "keyword"
				},
				"GameServerRef": {
					"type": "keyword"
				},
				"Dimension": {
					"type": "keyword"
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

func indexRoutesFromMongo(indexName string) {
	routesCollection := database.GetCollection("routes")

	cursor, _ := routesCollection.Find(context.Background(), bson.M{})

	for cursor.Next(context.Background()) {
		var route *tdf.Route
		cursor.Decode(&route)

		nameParts := route.NameParts()

		jsonRoute, _ := json.Marshal(map[string]interface{}{
			"PrimaryIdentifier": route.PrimaryIdentifier,
			"Title":             nameParts.Title,
			"Subtitle":          nameParts.Subtitle,
			"Badge":             nameParts.Badge,
			"TransportMode":     route.TransportMode,
			"GameServerRef":     route.GameServerRef,
			"Dimension":         route.Dimension,
		})

		elastic_client.IndexRequest(indexName, bytes.NewReader(jsonRoute))
	}

	log.Info().Msg("Sent all route index requests to queue")
}
