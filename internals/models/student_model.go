package model

import (
	"gorm.io/datatypes"
)

type Student struct {
	StudentID    int64          `gorm:"column:student_id;primaryKey;autoIncrement" json:"student_id"`
	Name         string         `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Gender       string         `gorm:"column:gender;type:varchar(20)" json:"gender"`
	DOB          datatypes.Date `gorm:"column:dob" json:"dob"`
	Mobile       string         `gorm:"column:mobile;type:varchar(20)" json:"mobile"`
	EmailID      string         `gorm:"column:email_id;type:varchar(120)" json:"email_id"`
	Address      string         `gorm:"column:address;type:varchar(255)" json:"address"`
	City         string         `gorm:"column:city;type:varchar(80)" json:"city"`
	State        string         `gorm:"column:state;type:varchar(80)" json:"state"`
	Pincode      string         `gorm:"column:pincode;type:varchar(12)" json:"pincode"`
	ParentName   string         `gorm:"column:parent_name;type:varchar(120)" json:"parent_name"`
	ParentMobile string         `gorm:"column:parent_mobile;type:varchar(20)" json:"parent_mobile"`
	CourseName   string         `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	JoinDate     datatypes.Date `gorm:"column:join_date" json:"join_date"`
	Status       string         `gorm:"column:status;type:varchar(30)" json:"status"`
}

func (Student) TableName() string {
	return "student"
}
