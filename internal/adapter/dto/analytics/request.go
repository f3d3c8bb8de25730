package analytics

import "time"

// RecordSentimentRequest stores a sentiment distribution for one person in
// one meeting
type RecordSentimentRequest struct {
	Name         string             `json:"name" validate:"required"`
	Role         string             `json:"role"`
	Distribution map[string]float64 `json:"distribution" validate:"required"`
}

// RecordSkillsRequest stores a per-meeting skills summary
type RecordSkillsRequest struct {
	EmployeeName          string  `json:"employee_name" validate:"required"`
	Role                  string  `json:"role"`
	OverallSentimentScore float64 `json:"overall_sentiment_score" validate:"gte=-1,lte=1"`
}

// RecommendSkillRequest stores a skill recommendation
type RecommendSkillRequest struct {
	Name                string `json:"name" validate:"required"`
	SkillRecommendation string `json:"skill_recommendation" validate:"required"`
}

// RecommendTaskRequest stores a task recommendation
type RecommendTaskRequest struct {
	Task       string     `json:"task" validate:"required"`
	AssignedBy string     `json:"assigned_by" validate:"required"`
	AssignedTo string     `json:"assigned_to" validate:"required"`
	Deadline   *time.Time `json:"deadline"`
}

// UpdateTaskStatusRequest moves a task recommendation through its lifecycle
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,task_status"`
}
