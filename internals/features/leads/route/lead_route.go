package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/leads/controller"
	"coachingku_backend/internals/features/leads/service"
)

func LeadRoutes(api fiber.Router, svc *service.LeadService, guard ...fiber.Handler) {
	ctl := controller.NewLeadController(svc)

	g := api.Group("/leads", guard...)
	g.Post("/", ctl.CreateLead)
	g.Post("/status", ctl.UpdateLeadStatus)
	g.Patch("/:id/status", ctl.UpdateLeadStatus)
	g.Post("/:id/status", ctl.UpdateLeadStatus)
}
