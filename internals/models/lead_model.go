package model

import "gorm.io/datatypes"

const (
	LeadStatusNew           = "New"
	LeadStatusInFollowUp    = "In Follow-up"
	LeadStatusConverted     = "Converted"
	LeadStatusNotInterested = "Not Interested"
	LeadStatusLost          = "Lost"
)

// LeadStatuses is the closed set offered by the lead update form.
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusInFollowUp,
	LeadStatusConverted,
	LeadStatusNotInterested,
	LeadStatusLost,
}

type Lead struct {
	LeadID           int64          `gorm:"column:lead_id;primaryKey;autoIncrement" json:"lead_id"`
	Name             string         `gorm:"column:name;type:varchar(120)" json:"name"`
	Mobile           string         `gorm:"column:mobile;type:varchar(20)" json:"mobile"`
	Email            string         `gorm:"column:email;type:varchar(120)" json:"email"`
	Source           string         `gorm:"column:source;type:varchar(60)" json:"source"`
	InterestedCourse string         `gorm:"column:interested_course;type:varchar(120)" json:"interested_course"`
	Status           string         `gorm:"column:status;type:varchar(30)" json:"status"`
	CreatedDate      datatypes.Date `gorm:"column:created_date" json:"created_date"`
}

func (Lead) TableName() string {
	return "lead"
}
