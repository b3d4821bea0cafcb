package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/tables/controller"
	"coachingku_backend/internals/features/tables/service"
)

func TableRoutes(api fiber.Router, svc *service.TableService) {
	ctl := controller.NewTableController(svc)

	g := api.Group("/tables")
	g.Get("/", ctl.ListTables)
	g.Get("/:table/rows", ctl.Rows)
	g.Get("/:table/export.csv", ctl.ExportCSV)
	g.Get("/:table/export.xlsx", ctl.ExportXLSX)
}
