package details

import (
	"github.com/gofiber/fiber/v2"

	feeRoute "coachingku_backend/internals/features/fees/route"
	pageRoute "coachingku_backend/internals/features/pages/route"
	tableRoute "coachingku_backend/internals/features/tables/route"
	"coachingku_backend/internals/page"
)

// PageRoutes mounts everything read-only: HTML pages, JSON pages, charts, exports.
func PageRoutes(app *fiber.App, api fiber.Router, svcs *Services, reg *page.Registry) {
	pageRoute.PageRoutes(app, api, reg)
	tableRoute.TableRoutes(api, svcs.Tables)
	feeRoute.FeeReadRoutes(api, svcs.Fees)
}
