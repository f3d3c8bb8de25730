package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// RecommendationRepository handles skill and task advisory rows. Task
// recommendations are row-restricted on assigned_to; skill recommendations
// carry no policies and follow table grants alone.
type RecommendationRepository struct {
	conns *database.RoleConns
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(conns *database.RoleConns) *RecommendationRepository {
	return &RecommendationRepository{conns: conns}
}

// CreateSkill inserts a skill recommendation
func (r *RecommendationRepository) CreateSkill(ctx context.Context, rec *entities.SkillRecommendation) error {
	if rec == nil {
		return stdErrors.New("recommendation cannot be nil")
	}
	db, err := r.conns.Session(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(rec).Error; err != nil {
		return mapError(entities.SkillRecommendation{}.TableName(), "create skill recommendation", err)
	}
	return nil
}

// ListSkillsByMeeting retrieves skill recommendations for a meeting
func (r *RecommendationRepository) ListSkillsByMeeting(ctx context.Context, meetingID string) ([]*entities.SkillRecommendation, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var recs []*entities.SkillRecommendation
	if err := db.Where("meeting_id = ?", meetingID).Order("id").Find(&recs).Error; err != nil {
		return nil, mapError(entities.SkillRecommendation{}.TableName(), "list skill recommendations", err)
	}
	return recs, nil
}

// CreateTask inserts a task recommendation. Under the employee role the
// WITH CHECK policy rejects a row whose assigned_to differs from the
// session identity.
func (r *RecommendationRepository) CreateTask(ctx context.Context, rec *entities.TaskRecommendation) error {
	if rec == nil {
		return stdErrors.New("recommendation cannot be nil")
	}
	return r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return mapError(entities.TaskRecommendation{}.TableName(), "create task recommendation", err)
		}
		return nil
	})
}

// ListTasksByMeeting retrieves the task recommendations visible to the
// session: all rows for manager/hr/sudo, only the caller's own for employee.
func (r *RecommendationRepository) ListTasksByMeeting(ctx context.Context, meetingID string) ([]*entities.TaskRecommendation, error) {
	var recs []*entities.TaskRecommendation
	err := r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Order("id").Find(&recs).Error; err != nil {
			return mapError(entities.TaskRecommendation{}.TableName(), "list task recommendations", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdateTaskStatus moves a task through its lifecycle. Requires UPDATE
// privilege on task_recommendation (manager or sudo).
func (r *RecommendationRepository) UpdateTaskStatus(ctx context.Context, id int, status entities.TaskStatus) error {
	if !status.IsValid() {
		return entities.ErrInvalidTaskStatus
	}
	return r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&entities.TaskRecommendation{}).
			Where("id = ?", id).
			Update("status", status)
		if result.Error != nil {
			return mapError(entities.TaskRecommendation{}.TableName(), "update task status", result.Error)
		}
		if result.RowsAffected == 0 {
			return entities.ErrTaskNotFound
		}
		return nil
	})
}
