package analytics

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/domain/repositories"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/cache"
)

const overviewTTL = 5 * time.Minute

// Overview is the per-meeting analytics read model.
type Overview struct {
	MeetingID            string                         `json:"meeting_id"`
	Participants         []string                       `json:"participants"`
	Sentiments           []*entities.RollingSentiment   `json:"sentiments"`
	Skills               []*entities.EmployeeSkills     `json:"skills"`
	SkillRecommendations []*entities.SkillRecommendation `json:"skill_recommendations"`
	TaskRecommendations  []*entities.TaskRecommendation  `json:"task_recommendations"`
}

// Service manages the derived analytics rows: rolling sentiment, skill
// summaries, and the two recommendation tables.
type Service struct {
	sentiments      repositories.SentimentRepository
	skills          repositories.SkillsRepository
	recommendations repositories.RecommendationRepository
	store           cache.Store
	logger          *zap.Logger
}

// NewService constructs an analytics service
func NewService(
	sentiments repositories.SentimentRepository,
	skills repositories.SkillsRepository,
	recommendations repositories.RecommendationRepository,
	store cache.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		sentiments:      sentiments,
		skills:          skills,
		recommendations: recommendations,
		store:           store,
		logger:          logger,
	}
}

// RecordSentiment stores a sentiment distribution for a (meeting, person)
// pair. Recording a pair twice keeps the first distribution; the unique
// constraint absorbs the conflict silently.
func (s *Service) RecordSentiment(ctx context.Context, meetingID, name, role string, distribution map[string]float64) (*entities.RollingSentiment, error) {
	blob, err := json.Marshal(distribution)
	if err != nil {
		return nil, err
	}
	sentiment := &entities.RollingSentiment{
		MeetingID:        meetingID,
		Name:             name,
		Role:             role,
		RollingSentiment: datatypes.JSON(blob),
	}
	if err := s.sentiments.Upsert(ctx, sentiment); err != nil {
		return nil, err
	}
	s.invalidateOverview(ctx, meetingID)
	return sentiment, nil
}

// ListSentiments retrieves all sentiment rows for a meeting
func (s *Service) ListSentiments(ctx context.Context, meetingID string) ([]*entities.RollingSentiment, error) {
	return s.sentiments.ListByMeeting(ctx, meetingID)
}

// RecordSkills stores a per-meeting skills summary for one person.
func (s *Service) RecordSkills(ctx context.Context, meetingID, employeeName, role string, score float64) (*entities.EmployeeSkills, error) {
	skills := &entities.EmployeeSkills{
		MeetingID:             meetingID,
		EmployeeName:          employeeName,
		Role:                  role,
		OverallSentimentScore: score,
	}
	if err := s.skills.Create(ctx, skills); err != nil {
		return nil, err
	}
	s.invalidateOverview(ctx, meetingID)
	return skills, nil
}

// ListSkills retrieves the skills rows visible to the caller.
func (s *Service) ListSkills(ctx context.Context, meetingID string) ([]*entities.EmployeeSkills, error) {
	return s.skills.ListByMeeting(ctx, meetingID)
}

// RecommendSkill stores a skill recommendation.
func (s *Service) RecommendSkill(ctx context.Context, meetingID, name, recommendation string) (*entities.SkillRecommendation, error) {
	rec := &entities.SkillRecommendation{
		MeetingID:           meetingID,
		Name:                name,
		SkillRecommendation: recommendation,
	}
	if err := s.recommendations.CreateSkill(ctx, rec); err != nil {
		return nil, err
	}
	s.invalidateOverview(ctx, meetingID)
	return rec, nil
}

// ListSkillRecommendations retrieves skill recommendations for a meeting
func (s *Service) ListSkillRecommendations(ctx context.Context, meetingID string) ([]*entities.SkillRecommendation, error) {
	return s.recommendations.ListSkillsByMeeting(ctx, meetingID)
}

// RecommendTask stores a task recommendation. Status defaults to pending.
// Under the employee role the engine rejects a row assigned to anyone but
// the caller.
func (s *Service) RecommendTask(ctx context.Context, meetingID, task, assignedBy, assignedTo string, deadline *time.Time) (*entities.TaskRecommendation, error) {
	rec := &entities.TaskRecommendation{
		MeetingID:  meetingID,
		Task:       task,
		AssignedBy: assignedBy,
		AssignedTo: assignedTo,
		Deadline:   deadline,
		Status:     entities.TaskStatusPending,
	}
	if err := s.recommendations.CreateTask(ctx, rec); err != nil {
		return nil, err
	}
	s.invalidateOverview(ctx, meetingID)
	return rec, nil
}

// ListTaskRecommendations retrieves the task rows visible to the caller.
func (s *Service) ListTaskRecommendations(ctx context.Context, meetingID string) ([]*entities.TaskRecommendation, error) {
	return s.recommendations.ListTasksByMeeting(ctx, meetingID)
}

// UpdateTaskStatus moves a task recommendation through its lifecycle.
func (s *Service) UpdateTaskStatus(ctx context.Context, id int, status entities.TaskStatus) error {
	return s.recommendations.UpdateTaskStatus(ctx, id, status)
}

// MeetingOverview assembles the analytics read model for one meeting,
// serving from cache when fresh. The overview is assembled with the
// caller's own visibility, so it is cached per meeting only for the
// all-rows roles.
func (s *Service) MeetingOverview(ctx context.Context, meetingID string, role entities.AccessRole) (*Overview, error) {
	cacheable := role.CanSeeAllRows()
	key := cache.MeetingOverviewKey(meetingID)

	if cacheable {
		if raw, found, err := s.store.Get(ctx, key); err == nil && found {
			var overview Overview
			if err := json.Unmarshal([]byte(raw), &overview); err == nil {
				return &overview, nil
			}
		}
	}

	sentiments, err := s.sentiments.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	skills, err := s.skills.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	skillRecs, err := s.recommendations.ListSkillsByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	taskRecs, err := s.recommendations.ListTasksByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	participants := make([]string, 0, len(sentiments))
	for _, sentiment := range sentiments {
		participants = append(participants, sentiment.Name)
	}

	overview := &Overview{
		MeetingID:            meetingID,
		Participants:         participants,
		Sentiments:           sentiments,
		Skills:               skills,
		SkillRecommendations: skillRecs,
		TaskRecommendations:  taskRecs,
	}

	if cacheable {
		if blob, err := json.Marshal(overview); err == nil {
			if err := s.store.Set(ctx, key, string(blob), overviewTTL); err != nil {
				s.logger.Warn("failed to cache overview", zap.String("meeting_id", meetingID), zap.Error(err))
			}
		}
	}
	return overview, nil
}

func (s *Service) invalidateOverview(ctx context.Context, meetingID string) {
	if err := s.store.Delete(ctx, cache.MeetingOverviewKey(meetingID)); err != nil {
		s.logger.Warn("failed to invalidate overview cache", zap.String("meeting_id", meetingID), zap.Error(err))
	}
}
