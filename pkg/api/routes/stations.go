package routes

import (
	"context"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", listStations)
	router.Get("/:identifier", getStation)
}

func listStations(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := bson.M{}

	if gameServer := c.Query("server"); gameServer != "" {
		filter["gameserverref"] = gameServer
	}
	if dimension := c.Query("dimension"); dimension != "" {
		filter["dimension"] = dimension
	}
	if search := c.Query("search"); search != "" {
		search = util.TrimString(search, 64)
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	stationsCollection := database.GetCollection("stations")
	cursor, err := stationsCollection.Find(context.Background(), filter)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Stations",
		})
	}

	var stations []*tdf.Station
	if err := cursor.All(context.Background(), &stations); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Stations",
		})
	}

	return c.JSON(fiber.Map{
		"stations":  util.PaginateSlice(stations, page, pageSize),
		"page":      page,
		"page_size": pageSize,
		"total":     len(stations),
	})
}

func getStation(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	station, err := dataaggregator.Lookup[*tdf.Station](query.Station{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	platformsCollection := database.GetCollection("platforms")
	cursor, _ := platformsCollection.Find(context.Background(), bson.M{"stationref": station.PrimaryIdentifier})

	var platforms []*tdf.Platform
	cursor.All(context.Background(), &platforms)

	var routeRefs []string
	for _, platform := range platforms {
		routeRefs = append(routeRefs, platform.RouteRefs...)
	}
	routeRefs = util.RemoveDuplicateStrings(routeRefs, nil)

	return c.JSON(fiber.Map{
		"station":    station,
		"color":      station.ColorHex(),
		"platforms":  platforms,
		"route_refs": routeRefs,
	})
}
