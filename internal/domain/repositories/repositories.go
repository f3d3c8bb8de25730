package repositories

import (
	"context"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// EmployeeRepository defines the interface for employee identity records
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entities.Employee) error
	FindByName(ctx context.Context, name string) (*entities.Employee, error)
	List(ctx context.Context) ([]*entities.Employee, error)
}

// MeetingRepository defines the interface for meeting roots
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Delete removes the meeting; the engine cascades to transcripts,
	// sentiments, skills, and recommendations.
	Delete(ctx context.Context, id string) error
}

// TranscriptRepository defines the interface for meeting transcripts.
// Reads and writes are row-restricted for the employee role.
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.MeetingTranscript) error
	ListByMeeting(ctx context.Context, meetingID string) ([]*entities.MeetingTranscript, error)
	MarkProcessed(ctx context.Context, id int) error
}

// SentimentRepository defines the interface for rolling sentiment rows
type SentimentRepository interface {
	// Upsert inserts the sentiment row, silently keeping the existing row
	// when one already exists for the (meeting, person) pair.
	Upsert(ctx context.Context, sentiment *entities.RollingSentiment) error
	ListByMeeting(ctx context.Context, meetingID string) ([]*entities.RollingSentiment, error)
}

// SkillsRepository defines the interface for per-meeting skill summaries.
// Row-restricted for the employee role.
type SkillsRepository interface {
	Create(ctx context.Context, skills *entities.EmployeeSkills) error
	ListByMeeting(ctx context.Context, meetingID string) ([]*entities.EmployeeSkills, error)
}

// RecommendationRepository defines the interface for advisory rows. Task
// recommendations are row-restricted for the employee role.
type RecommendationRepository interface {
	CreateSkill(ctx context.Context, rec *entities.SkillRecommendation) error
	ListSkillsByMeeting(ctx context.Context, meetingID string) ([]*entities.SkillRecommendation, error)

	CreateTask(ctx context.Context, rec *entities.TaskRecommendation) error
	ListTasksByMeeting(ctx context.Context, meetingID string) ([]*entities.TaskRecommendation, error)
	UpdateTaskStatus(ctx context.Context, id int, status entities.TaskStatus) error
}
