package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"go.mongodb.org/mongo-driver/bson"
)

func DepotsRouter(router fiber.Router) {
	router.Get("/", listDepots)
	router.Get("/:identifier", getDepot)
}

func listDepots(c *fiber.Ctx) error {
	filter := bson.M{}

	if gameServer := c.Query("server"); gameServer != "" {
		filter["gameserverref"] = gameServer
	}
	if dimension := c.Query("dimension"); dimension != "" {
		filter["dimension"] = dimension
	}

	depotsCollection := database.GetCollection("depots")
	cursor, err := depotsCollection.Find(context.Background(), filter)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Depots",
		})
	}

	var depots []*tdf.Depot
	if err := cursor.All(context.Background(), &depots); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Depots",
		})
	}

	return c.JSON(depots)
}

func getDepot(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	depot, err := dataaggregator.Lookup[*tdf.Depot](query.Depot{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Depot matching Depot Identifier",
		})
	}

	routesCollection := database.GetCollection("routes")
	cursor, _ := routesCollection.Find(context.Background(), bson.M{
		"primaryidentifier": bson.M{"$in": depot.RouteRefs},
	})

	var routes []*tdf.Route
	cursor.All(context.Background(), &routes)

	return c.JSON(fiber.Map{
		"depot":  depot,
		"color":  depot.ColorHex(),
		"routes": routes,
	})
}
