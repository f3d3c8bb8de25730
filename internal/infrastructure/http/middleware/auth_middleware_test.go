package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/pkg/identity"
	"github.com/meetpulse-team/meetpulse/pkg/jwt"
)

func newTestMiddleware() (*AuthMiddleware, *jwt.Manager) {
	manager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthMiddleware(manager), manager
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/meetings", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error { return nil })
	return c, handler(c)
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	m, manager := newTestMiddleware()
	token, err := manager.GenerateAccessToken("Jane Manager", entities.AccessRoleManager)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	c, err := runAuthenticated(t, m, "Bearer "+token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	sess, ok := identity.FromContext(c.Request().Context())
	if !ok {
		t.Fatal("expected identity on request context")
	}
	if sess.Name != "Jane Manager" || sess.Role != entities.AccessRoleManager {
		t.Fatalf("unexpected identity %+v", sess)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m, _ := newTestMiddleware()

	_, err := runAuthenticated(t, m, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	m, _ := newTestMiddleware()

	_, err := runAuthenticated(t, m, "Bearer not-a-token")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	m, _ := newTestMiddleware()
	e := echo.New()

	run := func(role entities.AccessRole, allowed ...entities.AccessRole) error {
		req := httptest.NewRequest(http.MethodDelete, "/v1/meetings/mtg_1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		ctx := identity.WithSession(c.Request().Context(), "Jane Manager", role)
		c.SetRequest(c.Request().WithContext(ctx))

		handler := m.RequireRole(allowed...)(func(c echo.Context) error { return nil })
		return handler(c)
	}

	if err := run(entities.AccessRoleManager, entities.AccessRoleManager, entities.AccessRoleSudo); err != nil {
		t.Fatalf("manager should pass: %v", err)
	}
	err := run(entities.AccessRoleEmployee, entities.AccessRoleManager, entities.AccessRoleSudo)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %v", err)
	}
}
