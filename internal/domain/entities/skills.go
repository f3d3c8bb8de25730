package entities

// EmployeeSkills summarizes one person's showing in one meeting: overall
// sentiment score plus the role they spoke as. employee_name is the RLS
// identity column for this table.
type EmployeeSkills struct {
	ID                    int     `json:"id" gorm:"primaryKey"`
	MeetingID             string  `json:"meeting_id" gorm:"type:varchar(64);not null;index"`
	EmployeeName          string  `json:"employee_name" gorm:"type:text"`
	Role                  string  `json:"role,omitempty" gorm:"type:text"`
	OverallSentimentScore float64 `json:"overall_sentiment_score"`
}

// TableName specifies the table name for GORM
func (EmployeeSkills) TableName() string {
	return "employee_skills"
}
