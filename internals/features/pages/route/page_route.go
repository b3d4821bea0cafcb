package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/pages/controller"
	"coachingku_backend/internals/page"
)

// PageRoutes mounts the read side: HTML views under /pages and their JSON/PNG twins under api.
func PageRoutes(app *fiber.App, api fiber.Router, reg *page.Registry) {
	ctl := controller.NewPageController(reg)

	app.Get("/pages/:page", ctl.RenderPage)

	api.Get("/pages", ctl.Nav)
	api.Get("/pages/:page", ctl.GetPage)
	api.Get("/pages/:page/charts/:chart.png", ctl.ChartPNG)
}
