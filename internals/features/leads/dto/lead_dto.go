package dto

import (
	"strings"
	"time"

	helper "coachingku_backend/internals/helpers"
	model "coachingku_backend/internals/models"
	"coachingku_backend/internals/tabular"
)

type CreateLeadRequest struct {
	Name             string `json:"name" form:"name" validate:"required"`
	Mobile           string `json:"mobile" form:"mobile"`
	Email            string `json:"email" form:"email" validate:"omitempty,email"`
	Source           string `json:"source" form:"source"`
	InterestedCourse string `json:"interested_course" form:"interested_course"`
	Status           string `json:"status" form:"status" validate:"required,lead_status"`
	CreatedDate      string `json:"created_date" form:"created_date" validate:"omitempty,datetime=2006-01-02"`
}

// Normalize trims the payload; new leads start as New and are dated today.
func (r *CreateLeadRequest) Normalize(today time.Time) {
	for _, f := range []*string{&r.Name, &r.Mobile, &r.Email, &r.Source, &r.InterestedCourse, &r.Status, &r.CreatedDate} {
		*f = strings.TrimSpace(*f)
	}
	if r.Status == "" {
		r.Status = model.LeadStatusNew
	}
	if r.CreatedDate == "" {
		r.CreatedDate = today.Format(tabular.DateLayout)
	}
}

func (r CreateLeadRequest) Args() []any {
	return []any{r.Name, r.Mobile, r.Email, r.Source, r.InterestedCourse, r.Status, helper.DateArg(r.CreatedDate)}
}

type UpdateLeadStatusRequest struct {
	LeadID helper.FlexString `json:"lead_id" form:"lead_id" validate:"required,numeric"`
	Status string            `json:"status" form:"status" validate:"required,lead_status"`
}

func (r *UpdateLeadStatusRequest) Normalize() {
	r.LeadID = helper.FlexString(r.LeadID.String())
	r.Status = strings.TrimSpace(r.Status)
}

func (r UpdateLeadStatusRequest) ID() int64 { return helper.ParseID(r.LeadID.String()) }
