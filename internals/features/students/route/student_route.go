package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/students/controller"
	"coachingku_backend/internals/features/students/service"
)

// StudentRoutes mounts the student mutations; guard runs before every one of them.
func StudentRoutes(api fiber.Router, svc *service.StudentService, guard ...fiber.Handler) {
	ctl := controller.NewStudentController(svc)

	g := api.Group("/students", guard...)
	g.Post("/", ctl.CreateStudent)

	// HTML forms cannot put the id in the path, so body-based variants exist too
	g.Post("/status", ctl.UpdateStudentStatus)
	g.Post("/delete", ctl.DeleteStudent)

	g.Patch("/:id/status", ctl.UpdateStudentStatus)
	g.Post("/:id/status", ctl.UpdateStudentStatus)
	g.Delete("/:id", ctl.DeleteStudent)
	g.Post("/:id/delete", ctl.DeleteStudent)
}
