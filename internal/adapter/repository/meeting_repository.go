package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// MeetingRepository handles meeting root records
type MeetingRepository struct {
	conns *database.RoleConns
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(conns *database.RoleConns) *MeetingRepository {
	return &MeetingRepository{conns: conns}
}

// Create inserts a new meeting with its caller-supplied id
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return stdErrors.New("meeting cannot be nil")
	}
	db, err := r.conns.Session(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(meeting).Error; err != nil {
		return mapError(entities.Meeting{}.TableName(), "create meeting", err)
	}
	return nil
}

// FindByID retrieves a meeting by its external id
func (r *MeetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var meeting entities.Meeting
	if err := db.Where("id = ?", id).First(&meeting).Error; err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, mapError(entities.Meeting{}.TableName(), "find meeting", err)
	}
	return &meeting, nil
}

// List retrieves all meetings, newest first
func (r *MeetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var meetings []*entities.Meeting
	if err := db.Order("created_at DESC").Find(&meetings).Error; err != nil {
		return nil, mapError(entities.Meeting{}.TableName(), "list meetings", err)
	}
	return meetings, nil
}

// Delete removes a meeting. The ON DELETE CASCADE constraints take every
// dependent transcript, sentiment, skills, and recommendation row with it.
func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&entities.Meeting{})
	if result.Error != nil {
		return mapError(entities.Meeting{}.TableName(), "delete meeting", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
