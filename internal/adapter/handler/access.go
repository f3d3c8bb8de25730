package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetpulse-team/meetpulse/internal/usecase/access"
)

// Access exposes the privilege matrix for operational verification
type Access struct {
	accessService *access.Service
}

// NewAccess creates a new access handler
func NewAccess(accessService *access.Service) *Access {
	return &Access{accessService: accessService}
}

// Grants enumerates the live grants for the four roles
// GET /v1/access/grants
func (h *Access) Grants(c echo.Context) error {
	grants, err := h.accessService.CurrentGrants(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, grants, len(grants))
}

// Verify compares live grants with the expected matrix
// GET /v1/access/grants/verify
func (h *Access) Verify(c echo.Context) error {
	report, err := h.accessService.Verify(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	status := http.StatusOK
	if !report.OK {
		status = http.StatusConflict
	}
	return c.JSON(status, report)
}
