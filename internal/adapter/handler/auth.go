package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authdto "github.com/meetpulse-team/meetpulse/internal/adapter/dto/auth"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service) *Auth {
	return &Auth{authService: authService}
}

// Login authenticates an employee by name and role and issues tokens
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Name, entities.AccessRole(req.Role))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, authdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	var req authdto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, authdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}
