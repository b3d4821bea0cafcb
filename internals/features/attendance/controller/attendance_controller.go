package controller

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/attendance/dto"
	"coachingku_backend/internals/features/attendance/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/helpers/dbtime"
	"coachingku_backend/internals/logger"
)

const back = "/pages/attendance"

type AttendanceController struct {
	Svc *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Svc: svc}
}

// POST /api/attendance
func (ctl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize(dbtime.NowInInstitute(c))
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.Mark(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("insert attendance failed", "student_id", req.StudentID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	return helper.MutationOK(c, back, fiber.StatusCreated, out.Message, out)
}
