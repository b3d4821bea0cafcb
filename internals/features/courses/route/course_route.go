package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/courses/controller"
	"coachingku_backend/internals/features/courses/service"
)

func CourseRoutes(api fiber.Router, svc *service.CourseService, guard ...fiber.Handler) {
	ctl := controller.NewCourseController(svc)

	g := api.Group("/courses", guard...)
	g.Post("/", ctl.CreateCourse)
	g.Post("/status", ctl.UpdateCourseStatus)
	g.Patch("/:id/status", ctl.UpdateCourseStatus)
	g.Post("/:id/status", ctl.UpdateCourseStatus)
}
