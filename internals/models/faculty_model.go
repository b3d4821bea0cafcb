package model

type Faculty struct {
	FacultyID int64  `gorm:"column:faculty_id;primaryKey;autoIncrement" json:"faculty_id"`
	Name      string `gorm:"column:name;type:varchar(120)" json:"name"`
	Subject   string `gorm:"column:subject;type:varchar(80)" json:"subject"`
	Mobile    string `gorm:"column:mobile;type:varchar(20)" json:"mobile"`
	Email     string `gorm:"column:email;type:varchar(120)" json:"email"`
	Status    string `gorm:"column:status;type:varchar(30)" json:"status"`
}

func (Faculty) TableName() string {
	return "faculty"
}

type Room struct {
	RoomID   int64  `gorm:"column:room_id;primaryKey;autoIncrement" json:"room_id"`
	RoomName string `gorm:"column:room_name;type:varchar(60)" json:"room_name"`
	Capacity int    `gorm:"column:capacity" json:"capacity"`
	RoomType string `gorm:"column:room_type;type:varchar(40)" json:"room_type"`
}

func (Room) TableName() string {
	return "room"
}

type ClassSchedule struct {
	ScheduleID int64  `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"schedule_id"`
	CourseID   int64  `gorm:"column:course_id;index" json:"course_id"`
	FacultyID  int64  `gorm:"column:faculty_id;index" json:"faculty_id"`
	RoomID     int64  `gorm:"column:room_id;index" json:"room_id"`
	DayOfWeek  string `gorm:"column:day_of_week;type:varchar(12)" json:"day_of_week"`
	StartTime  string `gorm:"column:start_time;type:varchar(8)" json:"start_time"`
	EndTime    string `gorm:"column:end_time;type:varchar(8)" json:"end_time"`
}

func (ClassSchedule) TableName() string {
	return "class_schedule"
}
