package dto

import (
	"strings"

	helper "coachingku_backend/internals/helpers"
)

type CreateCourseRequest struct {
	CourseName     string            `json:"course_name" form:"course_name" validate:"required"`
	Category       string            `json:"category" form:"category"`
	DurationMonths helper.FlexString `json:"duration_months" form:"duration_months" validate:"omitempty,numeric"`
	Fees           helper.FlexString `json:"fees" form:"fees" validate:"omitempty,numeric"`
	Level          string            `json:"level" form:"level"`
	Status         string            `json:"status" form:"status"`
}

// Normalize trims and applies the form defaults: 1 month, zero fees, status Active.
func (r *CreateCourseRequest) Normalize() {
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Category = strings.TrimSpace(r.Category)
	r.Level = strings.TrimSpace(r.Level)
	r.Status = strings.TrimSpace(r.Status)
	r.DurationMonths = helper.FlexString(r.DurationMonths.String())
	r.Fees = helper.FlexString(r.Fees.String())
	if r.DurationMonths == "" {
		r.DurationMonths = "1"
	}
	if r.Fees == "" {
		r.Fees = "0"
	}
	if r.Status == "" {
		r.Status = "Active"
	}
}

func (r CreateCourseRequest) Args() []any {
	return []any{
		r.CourseName,
		r.Category,
		int64(helper.AmountArg(r.DurationMonths.String())),
		helper.AmountArg(r.Fees.String()),
		r.Level,
		r.Status,
	}
}

type UpdateCourseStatusRequest struct {
	CourseID helper.FlexString `json:"course_id" form:"course_id" validate:"required,numeric"`
	Status   string            `json:"status" form:"status" validate:"required"`
}

func (r *UpdateCourseStatusRequest) Normalize() {
	r.CourseID = helper.FlexString(r.CourseID.String())
	r.Status = strings.TrimSpace(r.Status)
}

func (r UpdateCourseStatusRequest) ID() int64 { return helper.ParseID(r.CourseID.String()) }
