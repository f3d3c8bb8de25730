package identity

import (
	"context"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

type contextKey string

var (
	keyName contextKey = "identity_name"
	keyRole contextKey = "identity_role"
)

// Session is the acting identity for one request: the employee name that
// becomes the app.current_name session variable on the database side, and
// the database role whose connection the request runs on.
type Session struct {
	Name string
	Role entities.AccessRole
}

// WithSession attaches the acting identity to the context.
func WithSession(ctx context.Context, name string, role entities.AccessRole) context.Context {
	ctx = context.WithValue(ctx, keyName, name)
	ctx = context.WithValue(ctx, keyRole, role)
	return ctx
}

// FromContext extracts the acting identity from the context.
func FromContext(ctx context.Context) (Session, bool) {
	name, okName := ctx.Value(keyName).(string)
	role, okRole := ctx.Value(keyRole).(entities.AccessRole)
	if !okName || !okRole || name == "" || !role.IsValid() {
		return Session{}, false
	}
	return Session{Name: name, Role: role}, true
}

// Name returns the acting name, or empty when no identity is set. Row
// restricted queries run with an empty app.current_name then, which matches
// no rows.
func Name(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return s.Name
}

// Role returns the acting role, defaulting to employee when no identity is
// set so a missing identity never widens access.
func Role(ctx context.Context) entities.AccessRole {
	s, ok := FromContext(ctx)
	if !ok {
		return entities.AccessRoleEmployee
	}
	return s.Role
}
