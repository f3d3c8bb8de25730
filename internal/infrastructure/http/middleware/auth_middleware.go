package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/pkg/identity"
	"github.com/meetpulse-team/meetpulse/pkg/jwt"
)

// AuthMiddleware validates bearer tokens and stamps the acting identity
// onto the request context. Everything downstream, including the database
// session variable, reads the identity from there.
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Authenticate validates the JWT and attaches name and role to the context
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
		}

		claims, err := m.jwtManager.ValidateAccessToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		ctx := identity.WithSession(c.Request().Context(), claims.Name, claims.Role)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireRole rejects requests whose acting role is not in the allowed set
func (m *AuthMiddleware) RequireRole(roles ...entities.AccessRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := identity.FromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
			}
			for _, role := range roles {
				if sess.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
