package entities

import "time"

// Meeting is the root of all meeting-scoped data. The id is supplied by the
// caller (an external meeting identifier, not a generated key). Deleting a
// meeting cascades to its transcripts, sentiments, skills, and
// recommendations.
type Meeting struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Title     string    `json:"title,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Transcripts         []MeetingTranscript  `json:"transcripts,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	RollingSentiments   []RollingSentiment   `json:"rolling_sentiments,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	EmployeeSkills      []EmployeeSkills     `json:"employee_skills,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	SkillRecommendation []SkillRecommendation `json:"skill_recommendations,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	TaskRecommendation  []TaskRecommendation  `json:"task_recommendations,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meeting"
}
