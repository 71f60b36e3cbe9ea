package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"go.mongodb.org/mongo-driver/bson"
)

func BannersRouter(router fiber.Router) {
	router.Get("/", listBanners)
	router.Post("/", createBanner)
	router.Patch("/:identifier", updateBanner)
	router.Delete("/:identifier", deleteBanner)
}

func listBanners(c *fiber.Ctx) error {
	filter := bson.M{}
	if c.Query("active") == "true" {
		filter["active"] = true
	}

	bannersCollection := database.GetCollection("banners")
	cursor, err := bannersCollection.Find(context.Background(), filter)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Banners",
		})
	}

	var banners []*tdf.Banner
	if err := cursor.All(context.Background(), &banners); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Banners",
		})
	}

	return c.JSON(banners)
}

func createBanner(c *fiber.Ctx) error {
	var banner tdf.Banner
	if err := c.BodyParser(&banner); err != nil {
		return badRequest(c, "Invalid Banner body")
	}

	if banner.Identifier == "" || banner.Title == "" {
		return badRequest(c, "Banner requires an identifier and a title")
	}

	banner.CreationDateTime = currentTimestamp()
	banner.ModificationDateTime = banner.CreationDateTime

	bannersCollection := database.GetCollection("banners")
	if _, err := bannersCollection.InsertOne(context.Background(), banner); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to create Banner",
		})
	}

	c.SendStatus(fiber.StatusCreated)
	return c.JSON(banner)
}

func updateBanner(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	bannersCollection := database.GetCollection("banners")

	var banner *tdf.Banner
	bannersCollection.FindOne(context.Background(), bson.M{"identifier": identifier}).Decode(&banner)

	if banner == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Banner matching Identifier",
		})
	}

	var update tdf.Banner
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid Banner body")
	}

	update.Identifier = ""
	update.CreationDateTime = ""
	if err := copier.CopyWithOption(banner, &update, copier.Option{IgnoreEmpty: true}); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to merge Banner update",
		})
	}

	// Active is a bool so IgnoreEmpty cannot distinguish "unset" - take the
	// body's value directly
	banner.Active = update.Active

	banner.ModificationDateTime = currentTimestamp()

	_, err := bannersCollection.ReplaceOne(context.Background(), bson.M{"identifier": identifier}, banner)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to update Banner",
		})
	}

	return c.JSON(banner)
}

func deleteBanner(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	bannersCollection := database.GetCollection("banners")
	result, err := bannersCollection.DeleteOne(context.Background(), bson.M{"identifier": identifier})
	if err != nil || result.DeletedCount == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Banner matching Identifier",
		})
	}

	return c.JSON(fiber.Map{
		"deleted": identifier,
	})
}
