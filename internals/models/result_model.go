package model

import "gorm.io/datatypes"

type Test struct {
	TestID   int64          `gorm:"column:test_id;primaryKey;autoIncrement" json:"test_id"`
	TestName string         `gorm:"column:test_name;type:varchar(120)" json:"test_name"`
	CourseID int64          `gorm:"column:course_id;index" json:"course_id"`
	TestDate datatypes.Date `gorm:"column:test_date" json:"test_date"`
	MaxMarks float64        `gorm:"column:max_marks" json:"max_marks"`
}

func (Test) TableName() string {
	return "test"
}

type Result struct {
	ResultID      int64   `gorm:"column:result_id;primaryKey;autoIncrement" json:"result_id"`
	StudentID     int64   `gorm:"column:student_id;index" json:"student_id"`
	TestID        int64   `gorm:"column:test_id;index" json:"test_id"`
	MarksObtained float64 `gorm:"column:marks_obtained" json:"marks_obtained"`
	Grade         string  `gorm:"column:grade;type:varchar(5)" json:"grade"`
	Remarks       string  `gorm:"column:remarks;type:varchar(255)" json:"remarks"`
}

func (Result) TableName() string {
	return "result"
}
