package routes

import (
	"context"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/exp/slices"
)

var featuredTargetTypes = []string{"route", "station", "system"}

func FeaturedRouter(router fiber.Router) {
	router.Get("/", listFeatured)
	router.Post("/", createFeatured)
	router.Patch("/:identifier", updateFeatured)
	router.Delete("/:identifier", deleteFeatured)
}

func listFeatured(c *fiber.Ctx) error {
	featuredCollection := database.GetCollection("featured_items")
	cursor, err := featuredCollection.Find(context.Background(), bson.M{})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Featured Items",
		})
	}

	var featured []*tdf.FeaturedItem
	if err := cursor.All(context.Background(), &featured); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Featured Items",
		})
	}

	sort.Slice(featured, func(i, j int) bool {
		return featured[i].Position < featured[j].Position
	})

	return c.JSON(featured)
}

func createFeatured(c *fiber.Ctx) error {
	var featured tdf.FeaturedItem
	if err := c.BodyParser(&featured); err != nil {
		return badRequest(c, "Invalid Featured Item body")
	}

	if featured.Identifier == "" || featured.TargetRef == "" {
		return badRequest(c, "Featured Item requires an identifier and a target")
	}

	if !slices.Contains(featuredTargetTypes, featured.TargetType) {
		return badRequest(c, "Featured Item target type must be route, station or system")
	}

	featured.CreationDateTime = currentTimestamp()
	featured.ModificationDateTime = featured.CreationDateTime

	featuredCollection := database.GetCollection("featured_items")
	if _, err := featuredCollection.InsertOne(context.Background(), featured); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to create Featured Item",
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(featured)
}

func updateFeatured(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	featuredCollection := database.GetCollection("featured_items")

	var featured *tdf.FeaturedItem
	featuredCollection.FindOne(context.Background(), bson.M{"identifier": identifier}).Decode(&featured)

	if featured == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Featured Item matching Identifier",
		})
	}

	var update tdf.FeaturedItem
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid Featured Item body")
	}

	if err := mergeFeaturedItem(featured, update); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to merge Featured Item update",
		})
	}

	if !slices.Contains(featuredTargetTypes, featured.TargetType) {
		return badRequest(c, "Featured Item target type must be route, station or system")
	}

	featured.ModificationDateTime = currentTimestamp()

	_, err := featuredCollection.ReplaceOne(context.Background(), bson.M{"identifier": identifier}, featured)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to update Featured Item",
		})
	}

	return c.JSON(featured)
}

// mergeFeaturedItem folds the non-empty fields of update into featured. The
// identifier and creation time of the stored item always win.
func mergeFeaturedItem(featured *tdf.FeaturedItem, update tdf.FeaturedItem) error {
	update.Identifier = ""
	update.CreationDateTime = ""
	if err := copier.CopyWithOption(featured, &update, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}

	// Position is an int so IgnoreEmpty cannot distinguish "unset" - take the
	// body's value directly
	featured.Position = update.Position

	return nil
}

func deleteFeatured(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	featuredCollection := database.GetCollection("featured_items")
	result, err := featuredCollection.DeleteOne(context.Background(), bson.M{"identifier": identifier})
	if err != nil || result.DeletedCount == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Featured Item matching Identifier",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": identifier,
	})
}
