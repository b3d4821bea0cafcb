package model

import "gorm.io/datatypes"

// FeePayment links to student and course independently; no FK constraints are declared.
type FeePayment struct {
	PaymentID   int64          `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	StudentID   int64          `gorm:"column:student_id;index" json:"student_id"`
	CourseID    int64          `gorm:"column:course_id;index" json:"course_id"`
	AmountPaid  float64        `gorm:"column:amount_paid" json:"amount_paid"`
	PaymentDate datatypes.Date `gorm:"column:payment_date" json:"payment_date"`
	PaymentMode string         `gorm:"column:payment_mode;type:varchar(30)" json:"payment_mode"`
}

func (FeePayment) TableName() string {
	return "fee_payment"
}
