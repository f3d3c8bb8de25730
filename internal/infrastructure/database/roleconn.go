package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meetpulse-team/meetpulse/errors"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/pkg/config"
	"github.com/meetpulse-team/meetpulse/pkg/identity"
)

// RoleConns holds one GORM connection per database login role. Requests run
// on the connection matching the caller's role, so table grants and RLS are
// enforced by the engine rather than application code.
type RoleConns struct {
	conns map[entities.AccessRole]*gorm.DB
}

// NewRoleConns opens a connection for each of the four login roles.
func NewRoleConns(cfg *config.Config, log *zap.Logger) (*RoleConns, error) {
	conns := make(map[entities.AccessRole]*gorm.DB, len(entities.AccessRoles))
	for _, role := range entities.AccessRoles {
		dsn, err := cfg.GetRoleDSN(role)
		if err != nil {
			return nil, err
		}
		db, err := open(cfg, dsn, log.With(zap.String("db_role", string(role))))
		if err != nil {
			return nil, fmt.Errorf("failed to connect as role %q: %w", role, err)
		}
		conns[role] = db
	}
	return &RoleConns{conns: conns}, nil
}

// For returns the connection for the given role.
func (rc *RoleConns) For(role entities.AccessRole) (*gorm.DB, error) {
	db, ok := rc.conns[role]
	if !ok {
		return nil, errors.ErrUnknownRole(string(role))
	}
	return db, nil
}

// Session returns a database handle scoped to the acting identity on the
// context: the role's connection, with every statement wrapped so that
// app.current_name is set for the policies to read. An absent identity
// falls back to the employee connection with no name set, which the
// policies resolve to zero visible rows.
func (rc *RoleConns) Session(ctx context.Context) (*gorm.DB, error) {
	sess, _ := identity.FromContext(ctx)
	role := sess.Role
	if !role.IsValid() {
		role = entities.AccessRoleEmployee
	}
	db, err := rc.For(role)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}

// WithIdentity runs fn inside a transaction with app.current_name set to
// the acting identity for the transaction's duration (set_config with
// is_local=true resets it on commit or rollback). This is the only place
// the session variable is written.
func (rc *RoleConns) WithIdentity(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, err := rc.Session(ctx)
	if err != nil {
		return err
	}
	name := identity.Name(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SELECT set_config('app.current_name', ?, true)`, name).Error; err != nil {
			return fmt.Errorf("failed to set session identity: %w", err)
		}
		return fn(tx)
	})
}

// Close closes every role connection, returning the first error seen.
func (rc *RoleConns) Close() error {
	var firstErr error
	for role, db := range rc.conns {
		if err := CloseDB(db); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing connection for role %q: %w", role, err)
		}
	}
	return firstErr
}
