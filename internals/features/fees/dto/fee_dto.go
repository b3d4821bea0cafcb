package dto

import (
	"strings"
	"time"

	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/tabular"
)

var PaymentModes = []string{"Cash", "UPI", "Card", "Bank Transfer", "Cheque"}

type RecordPaymentRequest struct {
	StudentID   helper.FlexString `json:"student_id" form:"student_id" validate:"required,numeric"`
	CourseID    helper.FlexString `json:"course_id" form:"course_id" validate:"required,numeric"`
	AmountPaid  helper.FlexString `json:"amount_paid" form:"amount_paid" validate:"required,numeric"`
	PaymentDate string            `json:"payment_date" form:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMode string            `json:"payment_mode" form:"payment_mode"`
}

func (r *RecordPaymentRequest) Normalize(today time.Time) {
	r.StudentID = helper.FlexString(r.StudentID.String())
	r.CourseID = helper.FlexString(r.CourseID.String())
	r.AmountPaid = helper.FlexString(r.AmountPaid.String())
	r.PaymentDate = strings.TrimSpace(r.PaymentDate)
	r.PaymentMode = strings.TrimSpace(r.PaymentMode)
	if r.PaymentDate == "" {
		r.PaymentDate = today.Format(tabular.DateLayout)
	}
	if r.PaymentMode == "" {
		r.PaymentMode = "Cash"
	}
}

// Validate runs the struct tags, then rejects amounts that are not positive.
func (r RecordPaymentRequest) Validate() map[string][]string {
	if errs := helper.ValidateStruct(r); errs != nil {
		return errs
	}
	if helper.AmountArg(r.AmountPaid.String()) <= 0 {
		return map[string][]string{"amount_paid": {"amount_paid must be greater than 0"}}
	}
	return nil
}

func (r RecordPaymentRequest) Args() []any {
	return []any{
		helper.ParseID(r.StudentID.String()),
		helper.ParseID(r.CourseID.String()),
		helper.AmountArg(r.AmountPaid.String()),
		helper.DateArg(r.PaymentDate),
		r.PaymentMode,
	}
}
