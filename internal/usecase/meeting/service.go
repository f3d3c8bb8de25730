package meeting

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/domain/repositories"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/cache"
)

// Service manages meeting roots and their transcripts.
type Service struct {
	meetings    repositories.MeetingRepository
	transcripts repositories.TranscriptRepository
	store       cache.Store
	logger      *zap.Logger
}

// NewService constructs a meeting service
func NewService(
	meetings repositories.MeetingRepository,
	transcripts repositories.TranscriptRepository,
	store cache.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:    meetings,
		transcripts: transcripts,
		store:       store,
		logger:      logger,
	}
}

// CreateMeeting registers a meeting under its externally-supplied id,
// generating one when the caller has none.
func (s *Service) CreateMeeting(ctx context.Context, id, title string) (*entities.Meeting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "mtg_" + uuid.NewString()
	}
	meeting := &entities.Meeting{ID: id, Title: title}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}
	s.logger.Info("meeting created", zap.String("meeting_id", meeting.ID))
	return meeting, nil
}

// GetMeeting retrieves a meeting by id
func (s *Service) GetMeeting(ctx context.Context, id string) (*entities.Meeting, error) {
	return s.meetings.FindByID(ctx, id)
}

// ListMeetings retrieves all meetings
func (s *Service) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	return s.meetings.List(ctx)
}

// DeleteMeeting removes a meeting and, through the cascade constraints,
// every transcript, sentiment, skills, and recommendation row scoped to it.
func (s *Service) DeleteMeeting(ctx context.Context, id string) error {
	if err := s.meetings.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, cache.MeetingOverviewKey(id)); err != nil {
		s.logger.Warn("failed to invalidate overview cache", zap.String("meeting_id", id), zap.Error(err))
	}
	s.logger.Info("meeting deleted", zap.String("meeting_id", id))
	return nil
}

// AddTranscript records one speaker's utterance set. The row policies limit
// an employee-role caller to rows bearing their own name.
func (s *Service) AddTranscript(ctx context.Context, meetingID, name, text string) (*entities.MeetingTranscript, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		return nil, err
	}
	transcript := &entities.MeetingTranscript{
		MeetingID: meetingID,
		Name:      name,
		Text:      text,
	}
	if err := s.transcripts.Create(ctx, transcript); err != nil {
		return nil, err
	}
	return transcript, nil
}

// ListTranscripts retrieves the transcript rows visible to the caller.
func (s *Service) ListTranscripts(ctx context.Context, meetingID string) ([]*entities.MeetingTranscript, error) {
	return s.transcripts.ListByMeeting(ctx, meetingID)
}

// MarkTranscriptProcessed flips the processed flag once an external
// pipeline has consumed the row.
func (s *Service) MarkTranscriptProcessed(ctx context.Context, id int) error {
	return s.transcripts.MarkProcessed(ctx, id)
}
