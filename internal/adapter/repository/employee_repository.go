package repository

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
)

// EmployeeRepository handles employee identity records
type EmployeeRepository struct {
	conns *database.RoleConns
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(conns *database.RoleConns) *EmployeeRepository {
	return &EmployeeRepository{conns: conns}
}

// Create inserts a new employee. Name is globally unique; a duplicate
// surfaces as a constraint violation.
func (r *EmployeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	if employee == nil {
		return stdErrors.New("employee cannot be nil")
	}
	db, err := r.conns.Session(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(employee).Error; err != nil {
		return mapError(entities.Employee{}.TableName(), "create employee", err)
	}
	return nil
}

// FindByName retrieves an employee by their unique name
func (r *EmployeeRepository) FindByName(ctx context.Context, name string) (*entities.Employee, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var employee entities.Employee
	if err := db.Where("name = ?", name).First(&employee).Error; err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, mapError(entities.Employee{}.TableName(), "find employee", err)
	}
	return &employee, nil
}

// List retrieves all employees
func (r *EmployeeRepository) List(ctx context.Context) ([]*entities.Employee, error) {
	db, err := r.conns.Session(ctx)
	if err != nil {
		return nil, err
	}
	var employees []*entities.Employee
	if err := db.Order("name").Find(&employees).Error; err != nil {
		return nil, mapError(entities.Employee{}.TableName(), "list employees", err)
	}
	return employees, nil
}
