package controller

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/fees/dto"
	"coachingku_backend/internals/features/fees/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/helpers/dbtime"
	"coachingku_backend/internals/logger"
)

const back = "/pages/fees"

type FeeController struct {
	Svc *service.FeeService
}

func NewFeeController(svc *service.FeeService) *FeeController {
	return &FeeController{Svc: svc}
}

// POST /api/fees/payments
func (ctl *FeeController) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize(dbtime.NowInInstitute(c))
	if errs := req.Validate(); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.RecordPayment(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("insert fee payment failed", "student_id", req.StudentID, "course_id", req.CourseID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	logger.L.Infow("fee payment recorded", "student_id", req.StudentID, "amount", req.AmountPaid)
	return helper.MutationOK(c, back, fiber.StatusCreated, out.Message, out)
}

// GET /api/fees/summary
func (ctl *FeeController) Summary(c *fiber.Ctx) error {
	t, err := ctl.Svc.Summary(c.UserContext())
	if err != nil {
		return helper.JsonError(c, helper.StatusForError(err), "Error loading fee summary: "+err.Error())
	}
	if c.QueryBool("pending") {
		t = service.PendingOnly(t)
	}
	return helper.JsonList(c, "ok", t, fiber.Map{"total": t.Len()})
}
