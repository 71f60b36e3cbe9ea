package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/elastic_client"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

func SearchRouter(router fiber.Router) {
	router.Get("/", searchAll)
}

func searchAll(c *fiber.Ctx) error {
	searchTerm := util.TrimString(c.Query("q"), 64)
	if searchTerm == "" {
		return badRequest(c, "Parameter q is required")
	}

	if elastic_client.Client != nil {
		return searchElasticsearch(c, searchTerm)
	}

	return searchMongo(c, searchTerm)
}

// searchQueryBody marshals the multi_match query. The search term goes
// through json encoding as it can hold anything the client sent, including
// bytes cut mid-rune by the length trim.
func searchQueryBody(searchTerm string) []byte {
	queryBody, _ := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     searchTerm,
				"fields":    []string{"Name", "DisplayName"},
				"fuzziness": "AUTO",
			},
		},
		"size": 25,
	})

	return queryBody
}

func searchElasticsearch(c *fiber.Ctx, searchTerm string) error {
	searchRequest := esapi.SearchRequest{
		Index: []string{"trackmap-stations-*", "trackmap-routes-*"},
		Body:  bytes.NewReader(searchQueryBody(searchTerm)),
	}

	response, err := searchRequest.Do(context.Background(), elastic_client.Client)
	if err != nil {
		log.Error().Err(err).Msg("Elasticsearch search failed")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Search failed",
		})
	}
	defer response.Body.Close()

	var responseBody struct {
		Hits struct {
			Hits []struct {
				Index  string          `json:"_index"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(response.Body).Decode(&responseBody); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Search response could not be decoded",
		})
	}

	var stations []json.RawMessage
	var routes []json.RawMessage

	for _, hit := range responseBody.Hits.Hits {
		if strings.HasPrefix(hit.Index, "trackmap-stations") {
			stations = append(stations, hit.Source)
		} else {
			routes = append(routes, hit.Source)
		}
	}

	return c.JSON(fiber.Map{
		"stations": stations,
		"routes":   routes,
	})
}

func searchMongo(c *fiber.Ctx, searchTerm string) error {
	nameRegex := bson.M{"$regex": regexp.QuoteMeta(searchTerm), "$options": "i"}

	stationsCollection := database.GetCollection("stations")
	cursor, _ := stationsCollection.Find(context.Background(), bson.M{"name": nameRegex})

	var stations []*tdf.Station
	cursor.All(context.Background(), &stations)

	routesCollection := database.GetCollection("routes")
	cursor, _ = routesCollection.Find(context.Background(), bson.M{"displayname": nameRegex})

	var routes []*tdf.Route
	cursor.All(context.Background(), &routes)

	return c.JSON(fiber.Map{
		"stations": stations,
		"routes":   routes,
	})
}
