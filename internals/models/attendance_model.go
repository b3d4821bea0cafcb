package model

import "gorm.io/datatypes"

type Attendance struct {
	AttendanceID   int64          `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	StudentID      int64          `gorm:"column:student_id;index" json:"student_id"`
	AttendanceDate datatypes.Date `gorm:"column:attendance_date;index" json:"attendance_date"`
	Status         string         `gorm:"column:status;type:varchar(20)" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
