package controller

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/leads/dto"
	"coachingku_backend/internals/features/leads/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/helpers/dbtime"
	"coachingku_backend/internals/logger"
)

const back = "/pages/leads"

type LeadController struct {
	Svc *service.LeadService
}

func NewLeadController(svc *service.LeadService) *LeadController {
	return &LeadController{Svc: svc}
}

// POST /api/leads
func (ctl *LeadController) CreateLead(c *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}

	req.Normalize(dbtime.NowInInstitute(c))
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("insert lead failed", "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	logger.L.Infow("lead added", "name", req.Name, "source", req.Source)
	return helper.MutationOK(c, back, fiber.StatusCreated, out.Message, out)
}

// PATCH/POST /api/leads/:id/status, POST /api/leads/status
func (ctl *LeadController) UpdateLeadStatus(c *fiber.Ctx) error {
	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		req.LeadID = helper.FlexString(id)
	}

	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.UpdateStatus(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("update lead status failed", "lead_id", req.LeadID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	return helper.MutationOK(c, back, fiber.StatusOK, out.Message, out)
}
