package dto

import (
	"strings"
	"time"

	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/tabular"
)

var Statuses = []string{"Present", "Absent", "Late"}

type MarkAttendanceRequest struct {
	StudentID      helper.FlexString `json:"student_id" form:"student_id" validate:"required,numeric"`
	AttendanceDate string            `json:"attendance_date" form:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status         string            `json:"status" form:"status" validate:"required,oneof=Present Absent Late"`
}

// Normalize trims the payload; a blank date means today and a blank status means Present.
func (r *MarkAttendanceRequest) Normalize(today time.Time) {
	r.StudentID = helper.FlexString(r.StudentID.String())
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	r.Status = strings.TrimSpace(r.Status)
	if r.AttendanceDate == "" {
		r.AttendanceDate = today.Format(tabular.DateLayout)
	}
	if r.Status == "" {
		r.Status = "Present"
	}
}

func (r MarkAttendanceRequest) Args() []any {
	return []any{helper.ParseID(r.StudentID.String()), helper.DateArg(r.AttendanceDate), r.Status}
}
