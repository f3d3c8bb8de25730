package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm/clause"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// SentimentRepository handles rolling sentiment rows
type SentimentRepository struct {
	conns *database.RoleConns
}

// NewSentimentRepository creates a new sentiment repository
func NewSentimentRepository(conns *database.RoleConns) *SentimentRepository {
	return &SentimentRepository{conns: conns}
}

// Upsert inserts the sentiment row for a (meeting, person) pair. A second
// insert for the same pair is a no-op: the unique constraint wins and the
// existing distribution is kept.
func (r *SentimentRepository) Upsert(ctx context.Context, sentiment *entities.RollingSentiment) error {
	if sentiment == nil {
		return stdErrors.New("sentiment cannot be nil")
	}
	db, err := r.conns.Session(ctx)
	if err != nil {
		return err
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(sentiment).Error
	if err != nil {
		return mapError(entities.RollingSentiment{}.TableName(), "upsert sentiment", err)
	}
	return nil
}

// ListByMeeting retrieves all sentiment rows for a meeting
func (r *SentimentRepository) ListByMeeting(ctx context.Context, meetingID string) ([]*entities.RollingSentiment, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var sentiments []*entities.RollingSentiment
	if err := db.Where("meeting_id = ?", meetingID).Order("name").Find(&sentiments).Error; err != nil {
		return nil, mapError(entities.RollingSentiment{}.TableName(), "list sentiments", err)
	}
	return sentiments, nil
}
