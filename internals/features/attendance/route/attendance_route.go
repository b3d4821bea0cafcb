package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/attendance/controller"
	"coachingku_backend/internals/features/attendance/service"
)

func AttendanceRoutes(api fiber.Router, svc *service.AttendanceService, guard ...fiber.Handler) {
	ctl := controller.NewAttendanceController(svc)
	g := api.Group("/attendance", guard...)
	g.Post("/", ctl.MarkAttendance)
}
