package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// TranscriptRepository handles transcript rows. meeting_transcript is
// row-restricted: under the employee role only rows whose name matches the
// session identity are visible or insertable, so every operation runs
// through WithIdentity.
type TranscriptRepository struct {
	conns *database.RoleConns
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(conns *database.RoleConns) *TranscriptRepository {
	return &TranscriptRepository{conns: conns}
}

// Create inserts a transcript row. Inserting for a nonexistent meeting
// surfaces as a foreign-key violation; inserting for someone else under the
// employee role surfaces as a policy violation.
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.MeetingTranscript) error {
	if transcript == nil {
		return stdErrors.New("transcript cannot be nil")
	}
	return r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(transcript).Error; err != nil {
			return mapError(entities.MeetingTranscript{}.TableName(), "create transcript", err)
		}
		return nil
	})
}

// ListByMeeting retrieves the transcript rows visible to the session. For
// the employee role that is only their own utterances; an unset identity
// yields an empty result, not an error.
func (r *TranscriptRepository) ListByMeeting(ctx context.Context, meetingID string) ([]*entities.MeetingTranscript, error) {
	var transcripts []*entities.MeetingTranscript
	err := r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Order("id").Find(&transcripts).Error; err != nil {
			return mapError(entities.MeetingTranscript{}.TableName(), "list transcripts", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transcripts, nil
}

// MarkProcessed flips the processed flag. Requires UPDATE privilege, which
// only manager and sudo hold.
func (r *TranscriptRepository) MarkProcessed(ctx context.Context, id int) error {
	return r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&entities.MeetingTranscript{}).
			Where("id = ?", id).
			Update("processed", true)
		if result.Error != nil {
			return mapError(entities.MeetingTranscript{}.TableName(), "mark transcript processed", result.Error)
		}
		if result.RowsAffected == 0 {
			return entities.ErrTranscriptNotFound
		}
		return nil
	})
}
