package model

type Course struct {
	CourseID       int64   `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName     string  `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	Category       string  `gorm:"column:category;type:varchar(60)" json:"category"`
	DurationMonths int     `gorm:"column:duration_months" json:"duration_months"`
	Fees           float64 `gorm:"column:fees" json:"fees"`
	Level          string  `gorm:"column:level;type:varchar(40)" json:"level"`
	Status         string  `gorm:"column:status;type:varchar(30)" json:"status"`
}

func (Course) TableName() string {
	return "course"
}
