package routes

import (
	"context"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/query"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

func RoutesRouter(router fiber.Router) {
	router.Get("/", listRoutes)
	router.Get("/:identifier", getRoute)
	router.Get("/:identifier/variants", getRouteVariants)
}

// RouteGroup is one entry of the route listing: all variants sharing a title
// collapsed into a single row.
type RouteGroup struct {
	Title         string            `json:"title"`
	ColorHex      string            `json:"color"`
	TransportMode tdf.TransportMode `json:"transport_mode"`

	VariantCount       int      `json:"variant_count"`
	VariantIdentifiers []string `json:"variant_identifiers"`
}

func listRoutes(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	filter := bson.M{}

	if mode := c.Query("mode"); mode != "" {
		filter["transportmode"] = mode
	}
	if system := c.Query("system"); system != "" {
		filter["systemrefs"] = system
	}
	if gameServer := c.Query("server"); gameServer != "" {
		filter["gameserverref"] = gameServer
	}
	if dimension := c.Query("dimension"); dimension != "" {
		filter["dimension"] = dimension
	}
	if search := c.Query("search"); search != "" {
		search = util.TrimString(search, 64)
		filter["displayname"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	routesCollection := database.GetCollection("routes")
	cursor, err := routesCollection.Find(context.Background(), filter)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to query Routes",
		})
	}

	var routes []*tdf.Route
	if err := cursor.All(context.Background(), &routes); err != nil {
		log.Error().Err(err).Msg("Failed to decode Routes")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to decode Routes",
		})
	}

	groups := groupRoutesByTitle(routes)

	return c.JSON(fiber.Map{
		"groups":    util.PaginateSlice(groups, page, pageSize),
		"page":      page,
		"page_size": pageSize,
		"total":     len(groups),
	})
}

func groupRoutesByTitle(routes []*tdf.Route) []*RouteGroup {
	var groups []*RouteGroup
	groupIndex := map[string]*RouteGroup{}

	for _, route := range routes {
		title := route.Title()

		group := groupIndex[title]
		if group == nil {
			group = &RouteGroup{
				Title:         title,
				ColorHex:      route.ColorHex(),
				TransportMode: route.TransportMode,
			}
			groupIndex[title] = group
			groups = append(groups, group)
		}

		group.VariantCount++
		group.VariantIdentifiers = append(group.VariantIdentifiers, route.PrimaryIdentifier)
	}

	return groups
}

func getRoute(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	routeDetail, err := dataaggregator.Lookup[*tdf.RouteDetail](query.RouteDetail{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Route matching Route Identifier",
		})
	}

	routeDetailReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, routeDetail)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce routeDetail",
		})
	}

	return c.JSON(routeDetailReduced)
}

func getRouteVariants(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	routeDetail, err := dataaggregator.Lookup[*tdf.RouteDetail](query.RouteDetail{
		PrimaryIdentifier: identifier,
	})

	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Route matching Route Identifier",
		})
	}

	return c.JSON(fiber.Map{
		"title":    routeDetail.NameParts.Title,
		"variants": routeDetail.Variants,
	})
}
