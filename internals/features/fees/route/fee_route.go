package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/fees/controller"
	"coachingku_backend/internals/features/fees/service"
)

// FeeReadRoutes are public; FeeRoutes carries the write endpoints.
func FeeReadRoutes(api fiber.Router, svc *service.FeeService) {
	ctl := controller.NewFeeController(svc)
	api.Get("/fees/summary", ctl.Summary)
}

func FeeRoutes(api fiber.Router, svc *service.FeeService, guard ...fiber.Handler) {
	ctl := controller.NewFeeController(svc)
	g := api.Group("/fees/payments", guard...)
	g.Post("/", ctl.RecordPayment)
}
