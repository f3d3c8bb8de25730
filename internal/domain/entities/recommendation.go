package entities

import "time"

// TaskStatus represents the lifecycle of a recommended task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is a known lifecycle value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// SkillRecommendation is a derived advisory row suggesting a skill for a
// person to develop based on a meeting.
type SkillRecommendation struct {
	ID                  int    `json:"id" gorm:"primaryKey"`
	MeetingID           string `json:"meeting_id" gorm:"type:varchar(64);not null;index"`
	Name                string `json:"name,omitempty" gorm:"type:text"`
	SkillRecommendation string `json:"skill_recommendation,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SkillRecommendation) TableName() string {
	return "skill_recommendation"
}

// TaskRecommendation is a derived advisory task with an assignor, assignee,
// deadline, and status. assigned_to is the RLS identity column.
type TaskRecommendation struct {
	ID         int        `json:"id" gorm:"primaryKey"`
	MeetingID  string     `json:"meeting_id" gorm:"type:varchar(64);not null;index"`
	Task       string     `json:"task,omitempty" gorm:"type:text"`
	AssignedBy string     `json:"assigned_by,omitempty" gorm:"type:text"`
	AssignedTo string     `json:"assigned_to,omitempty" gorm:"type:text"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Status     TaskStatus `json:"status,omitempty" gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (TaskRecommendation) TableName() string {
	return "task_recommendation"
}
