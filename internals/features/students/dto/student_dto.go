package dto

import (
	"strings"
	"time"

	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/tabular"
)

/* ===============================
   Create
=================================*/

type CreateStudentRequest struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Gender       string `json:"gender" form:"gender"`
	DOB          string `json:"dob" form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Mobile       string `json:"mobile" form:"mobile"`
	EmailID      string `json:"email_id" form:"email_id"`
	Address      string `json:"address" form:"address"`
	City         string `json:"city" form:"city"`
	State        string `json:"state" form:"state"`
	Pincode      string `json:"pincode" form:"pincode"`
	ParentName   string `json:"parent_name" form:"parent_name"`
	ParentMobile string `json:"parent_mobile" form:"parent_mobile"`
	CourseName   string `json:"course_name" form:"course_name" validate:"required"`
	JoinDate     string `json:"join_date" form:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string `json:"status" form:"status"`
}

// Normalize trims every field and fills the form defaults (status Active, joined today).
func (r *CreateStudentRequest) Normalize(today time.Time) {
	for _, f := range []*string{
		&r.Name, &r.Gender, &r.DOB, &r.Mobile, &r.EmailID, &r.Address, &r.City, &r.State,
		&r.Pincode, &r.ParentName, &r.ParentMobile, &r.CourseName, &r.JoinDate, &r.Status,
	} {
		*f = strings.TrimSpace(*f)
	}
	if r.Status == "" {
		r.Status = "Active"
	}
	if r.JoinDate == "" {
		r.JoinDate = today.Format(tabular.DateLayout)
	}
}

// Args returns the insert parameters in column order. Blank dates go in as NULL.
func (r CreateStudentRequest) Args() []any {
	return []any{
		r.Name, r.Gender, helper.DateArg(r.DOB), r.Mobile, r.EmailID, r.Address, r.City, r.State, r.Pincode,
		r.ParentName, r.ParentMobile, r.CourseName, helper.DateArg(r.JoinDate), r.Status,
	}
}

/* ===============================
   Update status / delete
=================================*/

type UpdateStudentStatusRequest struct {
	StudentID helper.FlexString `json:"student_id" form:"student_id" validate:"required,numeric"`
	Status    string            `json:"status" form:"status" validate:"required"`
}

func (r *UpdateStudentStatusRequest) Normalize() {
	r.StudentID = helper.FlexString(r.StudentID.String())
	r.Status = strings.TrimSpace(r.Status)
}

func (r UpdateStudentStatusRequest) ID() int64 { return helper.ParseID(r.StudentID.String()) }

type DeleteStudentRequest struct {
	StudentID helper.FlexString `json:"student_id" form:"student_id" validate:"required,numeric"`
}

func (r *DeleteStudentRequest) Normalize() {
	r.StudentID = helper.FlexString(r.StudentID.String())
}

func (r DeleteStudentRequest) ID() int64 { return helper.ParseID(r.StudentID.String()) }
