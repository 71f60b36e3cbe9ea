package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"go.mongodb.org/mongo-driver/bson"
)

func RailSystemsRouter(router fiber.Router) {
	router.Get("/", listRailSystems)
	router.Post("/", createRailSystem)
	router.Get("/:identifier", getRailSystem)
	router.Patch("/:identifier", updateRailSystem)
	router.Delete("/:identifier", deleteRailSystem)
}

func listRailSystems(c *fiber.Ctx) error {
	railSystemsCollection := database.GetCollection("rail_systems")
	cursor, err := railSystemsCollection.Find(context.Background(), bson.M{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Rail Systems",
		})
	}

	var railSystems []*tdf.RailSystem
	if err := cursor.All(context.Background(), &railSystems); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Rail Systems",
		})
	}

	return c.JSON(railSystems)
}

func getRailSystem(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	railSystem, err := dataaggregator.Lookup[*tdf.RailSystem](query.RailSystem{
		Identifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Rail System matching Identifier",
		})
	}

	return c.JSON(railSystem)
}

func createRailSystem(c *fiber.Ctx) error {
	var railSystem tdf.RailSystem
	if err := c.BodyParser(&railSystem); err != nil {
		return badRequest(c, "Invalid Rail System body")
	}

	if railSystem.Identifier == "" || railSystem.Name == "" {
		return badRequest(c, "Rail System requires an identifier and a name")
	}

	existing, _ := dataaggregator.Lookup[*tdf.RailSystem](query.RailSystem{
		Identifier: railSystem.Identifier,
	})
	if existing != nil {
		c.SendStatus(fiber.StatusConflict)
		return c.JSON(fiber.Map{
			"error": "Rail System with this identifier already exists",
		})
	}

	railSystem.CreationDateTime = currentTimestamp()
	railSystem.ModificationDateTime = railSystem.CreationDateTime

	railSystemsCollection := database.GetCollection("rail_systems")
	if _, err := railSystemsCollection.InsertOne(context.Background(), railSystem); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to create Rail System",
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(railSystem)
}

func updateRailSystem(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	railSystem, err := dataaggregator.Lookup[*tdf.RailSystem](query.RailSystem{
		Identifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Rail System matching Identifier",
		})
	}

	var update tdf.RailSystem
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid Rail System body")
	}

	// Only supplied fields overwrite the stored record
	update.Identifier = ""
	update.CreationDateTime = ""
	if err := copier.CopyWithOption(railSystem, &update, copier.Option{IgnoreEmpty: true}); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to merge Rail System update",
		})
	}

	railSystem.ModificationDateTime = currentTimestamp()

	railSystemsCollection := database.GetCollection("rail_systems")
	_, err = railSystemsCollection.ReplaceOne(context.Background(), bson.M{"identifier": identifier}, railSystem)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to update Rail System",
		})
	}

	return c.JSON(railSystem)
}

func deleteRailSystem(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	railSystemsCollection := database.GetCollection("rail_systems")
	result, err := railSystemsCollection.DeleteOne(context.Background(), bson.M{"identifier": identifier})
	if err != nil || result.DeletedCount == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Rail System matching Identifier",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": identifier,
	})
}
