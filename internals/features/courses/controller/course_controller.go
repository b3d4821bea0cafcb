package controller

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/courses/dto"
	"coachingku_backend/internals/features/courses/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
)

const back = "/pages/courses"

type CourseController struct {
	Svc *service.CourseService
}

func NewCourseController(svc *service.CourseService) *CourseController {
	return &CourseController{Svc: svc}
}

// POST /api/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("insert course failed", "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	logger.L.Infow("course added", "course_name", req.CourseName)
	return helper.MutationOK(c, back, fiber.StatusCreated, out.Message, out)
}

// PATCH/POST /api/courses/:id/status, POST /api/courses/status
func (ctl *CourseController) UpdateCourseStatus(c *fiber.Ctx) error {
	var req dto.UpdateCourseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		req.CourseID = helper.FlexString(id)
	}

	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.UpdateStatus(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("update course status failed", "course_id", req.CourseID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	return helper.MutationOK(c, back, fiber.StatusOK, out.Message, out)
}
