package access

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/meetpulse-team/meetpulse/errors"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// Grant is one (role, table, privilege) cell of the privilege matrix.
type Grant struct {
	Role      entities.AccessRole `json:"role"`
	Table     string              `json:"table"`
	Privilege string              `json:"privilege"`
}

func (g Grant) key() string {
	return fmt.Sprintf("%s|%s|%s", g.Role, g.Table, g.Privilege)
}

// Report is the outcome of comparing live grants with the expected matrix.
type Report struct {
	OK      bool    `json:"ok"`
	Missing []Grant `json:"missing,omitempty"`
	Extra   []Grant `json:"extra,omitempty"`
}

// Err returns nil for a clean report, or a grant-mismatch error carrying
// the deviation counts.
func (r *Report) Err() error {
	if r.OK {
		return nil
	}
	return apperrors.ErrGrantMismatch(len(r.Missing), len(r.Extra))
}

// DomainTables lists the seven tables the privilege matrix covers.
var DomainTables = []string{
	"employee",
	"meeting",
	"meeting_transcript",
	"rolling_sentiment",
	"employee_skills",
	"skill_recommendation",
	"task_recommendation",
}

// row-restricted tables whose managers also get UPDATE/DELETE.
var managerWriteTables = []string{
	"meeting_transcript",
	"employee_skills",
	"task_recommendation",
}

var allPrivileges = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "TRUNCATE", "REFERENCES", "TRIGGER",
}

// ExpectedGrants returns the authoritative privilege matrix: employee gets
// SELECT/INSERT everywhere, manager adds UPDATE/DELETE on the tables it
// curates, hr is read-only, sudo holds everything.
func ExpectedGrants() []Grant {
	var grants []Grant
	for _, table := range DomainTables {
		grants = append(grants,
			Grant{entities.AccessRoleEmployee, table, "SELECT"},
			Grant{entities.AccessRoleEmployee, table, "INSERT"},
			Grant{entities.AccessRoleManager, table, "SELECT"},
			Grant{entities.AccessRoleManager, table, "INSERT"},
			Grant{entities.AccessRoleHR, table, "SELECT"},
		)
		for _, priv := range allPrivileges {
			grants = append(grants, Grant{entities.AccessRoleSudo, table, priv})
		}
	}
	for _, table := range managerWriteTables {
		grants = append(grants,
			Grant{entities.AccessRoleManager, table, "UPDATE"},
			Grant{entities.AccessRoleManager, table, "DELETE"},
		)
	}
	sortGrants(grants)
	return grants
}

// Service verifies live role grants against the expected matrix using the
// engine's privilege introspection views. It runs on the bootstrap
// connection since it reads catalog state, not domain rows.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService constructs a grant verification service
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CurrentGrants enumerates the live grants for the four roles over the
// domain tables.
func (s *Service) CurrentGrants(ctx context.Context) ([]Grant, error) {
	rows := []struct {
		Grantee       string
		TableName     string
		PrivilegeType string
	}{}

	err := s.db.WithContext(ctx).Raw(`
		SELECT grantee, table_name, privilege_type
		FROM information_schema.role_table_grants
		WHERE table_schema = 'public'
		  AND grantee IN ('employee', 'manager', 'hr', 'sudo')
		  AND table_name IN ?`, DomainTables).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to introspect grants: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	grants := make([]Grant, 0, len(rows))
	for _, row := range rows {
		g := Grant{
			Role:      entities.AccessRole(row.Grantee),
			Table:     row.TableName,
			Privilege: row.PrivilegeType,
		}
		if _, dup := seen[g.key()]; dup {
			continue
		}
		seen[g.key()] = struct{}{}
		grants = append(grants, g)
	}
	sortGrants(grants)
	return grants, nil
}

// Verify compares live grants with the expected matrix and reports every
// missing and extra cell.
func (s *Service) Verify(ctx context.Context) (*Report, error) {
	current, err := s.CurrentGrants(ctx)
	if err != nil {
		return nil, err
	}

	expected := ExpectedGrants()
	expectedSet := make(map[string]Grant, len(expected))
	for _, g := range expected {
		expectedSet[g.key()] = g
	}
	currentSet := make(map[string]Grant, len(current))
	for _, g := range current {
		currentSet[g.key()] = g
	}

	report := &Report{}
	for key, g := range expectedSet {
		if _, ok := currentSet[key]; !ok {
			report.Missing = append(report.Missing, g)
		}
	}
	for key, g := range currentSet {
		if _, ok := expectedSet[key]; !ok {
			report.Extra = append(report.Extra, g)
		}
	}
	sortGrants(report.Missing)
	sortGrants(report.Extra)
	report.OK = len(report.Missing) == 0 && len(report.Extra) == 0

	if !report.OK {
		s.logger.Warn("grant matrix mismatch",
			zap.Int("missing", len(report.Missing)),
			zap.Int("extra", len(report.Extra)),
		)
	}
	return report, nil
}

// Check verifies the live grants once and returns a grant-mismatch error
// when the matrix deviates. Run at startup after migrations apply.
func (s *Service) Check(ctx context.Context) error {
	report, err := s.Verify(ctx)
	if err != nil {
		return err
	}
	return report.Err()
}

func sortGrants(grants []Grant) {
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].key() < grants[j].key()
	})
}
