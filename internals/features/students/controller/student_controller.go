package controller

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/students/dto"
	"coachingku_backend/internals/features/students/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/helpers/dbtime"
	"coachingku_backend/internals/logger"
)

const back = "/pages/students"

type StudentController struct {
	Svc *service.StudentService
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{Svc: svc}
}

// POST /api/students
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	// 1) Parse body (JSON atau form)
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}

	// 2) Normalisasi + validasi (name & course_name wajib)
	req.Normalize(dbtime.NowInInstitute(c))
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	// 3) Insert
	out, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("insert student failed", "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	logger.L.Infow("student added", "name", req.Name, "course_name", req.CourseName)
	return helper.MutationOK(c, back, fiber.StatusCreated, out.Message, out)
}

// PATCH/POST /api/students/:id/status, POST /api/students/status
func (ctl *StudentController) UpdateStudentStatus(c *fiber.Ctx) error {
	var req dto.UpdateStudentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}
	if id := c.Params("id"); id != "" {
		req.StudentID = helper.FlexString(id)
	}

	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.UpdateStatus(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("update student status failed", "student_id", req.StudentID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	return helper.MutationOK(c, back, fiber.StatusOK, out.Message, out)
}

// DELETE /api/students/:id, POST /api/students/:id/delete, POST /api/students/delete
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	var req dto.DeleteStudentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if id := c.Params("id"); id != "" {
		req.StudentID = helper.FlexString(id)
	}

	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ctl.Svc.Delete(c.UserContext(), req)
	if err != nil {
		logger.L.Errorw("delete student failed", "student_id", req.StudentID, "error", err)
		return helper.MutationError(c, back, helper.StatusForError(err), err.Error())
	}
	return helper.MutationOK(c, back, fiber.StatusOK, out.Message, out)
}
