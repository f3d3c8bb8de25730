package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/domain/repositories"
	"github.com/meetpulse-team/meetpulse/pkg/identity"
	"github.com/meetpulse-team/meetpulse/pkg/jwt"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Service authenticates employees by name and issues tokens carrying the
// identity that later becomes the database session's app.current_name.
type Service struct {
	employees  repositories.EmployeeRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewService constructs an auth service
func NewService(employees repositories.EmployeeRepository, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		employees:  employees,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Login verifies the employee exists and is allowed to act as the requested
// role, then issues a token pair. The lookup runs on the employee
// connection regardless of the requested role: the employee table carries
// no row policies and every role holds SELECT on it, and the caller is not
// entitled to a wider connection until the check below passes.
func (s *Service) Login(ctx context.Context, name string, role entities.AccessRole) (*TokenPair, error) {
	if !role.IsValid() {
		return nil, entities.ErrInvalidRole
	}

	lookupCtx := identity.WithSession(ctx, name, entities.AccessRoleEmployee)
	employee, err := s.employees.FindByName(lookupCtx, name)
	if err != nil {
		return nil, err
	}
	if !s.mayActAs(employee, role) {
		s.logger.Warn("role mismatch on login",
			zap.String("name", name),
			zap.String("requested", string(role)),
			zap.String("onboarded", employee.Role),
		)
		return nil, entities.ErrForbidden
	}

	return s.issue(employee.Name, role)
}

// Refresh exchanges a valid refresh token for a new token pair. The role is
// re-read from the employee record so a role change takes effect on
// refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	name, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	lookupCtx := identity.WithSession(ctx, name, entities.AccessRoleEmployee)
	employee, err := s.employees.FindByName(lookupCtx, name)
	if err != nil {
		return nil, err
	}

	role := entities.AccessRole(employee.Role)
	if !role.IsValid() {
		role = entities.AccessRoleEmployee
	}
	return s.issue(employee.Name, role)
}

// mayActAs decides whether the employee record permits a session under the
// requested role. Every role above employee widens visibility (manager and
// hr read across all rows, sudo holds ALL PRIVILEGES), so those demand an
// exact onboarding match; a record with no role set may only act as
// employee, the row-restricted floor.
func (s *Service) mayActAs(employee *entities.Employee, role entities.AccessRole) bool {
	if employee.Role == "" {
		return role == entities.AccessRoleEmployee
	}
	return employee.Role == string(role)
}

func (s *Service) issue(name string, role entities.AccessRole) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(name, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(name)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}
