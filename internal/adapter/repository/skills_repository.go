package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// SkillsRepository handles per-meeting skill summaries. employee_skills is
// row-restricted on employee_name, so operations run through WithIdentity.
type SkillsRepository struct {
	conns *database.RoleConns
}

// NewSkillsRepository creates a new skills repository
func NewSkillsRepository(conns *database.RoleConns) *SkillsRepository {
	return &SkillsRepository{conns: conns}
}

// Create inserts a skills summary row
func (r *SkillsRepository) Create(ctx context.Context, skills *entities.EmployeeSkills) error {
	if skills == nil {
		return stdErrors.New("skills cannot be nil")
	}
	return r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(skills).Error; err != nil {
			return mapError(entities.EmployeeSkills{}.TableName(), "create skills", err)
		}
		return nil
	})
}

// ListByMeeting retrieves the skills rows visible to the session
func (r *SkillsRepository) ListByMeeting(ctx context.Context, meetingID string) ([]*entities.EmployeeSkills, error) {
	var skills []*entities.EmployeeSkills
	err := r.conns.WithIdentity(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Order("employee_name").Find(&skills).Error; err != nil {
			return mapError(entities.EmployeeSkills{}.TableName(), "list skills", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}
