package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackmap/trackmap/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := CreateServer()

	return webApp.Listen(listen)
}

func CreateServer() *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.RoutesRouter(group.Group("/routes"))
	routes.StationsRouter(group.Group("/stations"))
	routes.DepotsRouter(group.Group("/depots"))

	routes.RailSystemsRouter(group.Group("/systems"))
	routes.CompaniesRouter(group.Group("/companies"))

	routes.BannersRouter(group.Group("/banners"))
	routes.FeaturedRouter(group.Group("/featured"))

	routes.SearchRouter(group.Group("/search"))

	return webApp
}
