package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetpulse-team/meetpulse/errors"
	"github.com/meetpulse-team/meetpulse/internal/adapter/dto/common"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// respondError maps application and domain errors onto JSON error
// responses. Policy violations come back as 403 so the client can tell an
// RLS rejection from a plain validation failure.
func respondError(c echo.Context, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code.String(),
			Details: appErr.Details,
		})
	}

	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound),
		stdErrors.Is(err, entities.ErrEmployeeNotFound),
		stdErrors.Is(err, entities.ErrTranscriptNotFound),
		stdErrors.Is(err, entities.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, common.ErrorResponse{Error: err.Error()})
	case stdErrors.Is(err, entities.ErrPolicyViolation),
		stdErrors.Is(err, entities.ErrForbidden):
		return c.JSON(http.StatusForbidden, common.ErrorResponse{Error: err.Error()})
	case stdErrors.Is(err, entities.ErrUnauthorized),
		stdErrors.Is(err, entities.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, common.ErrorResponse{Error: err.Error()})
	case stdErrors.Is(err, entities.ErrInvalidRole),
		stdErrors.Is(err, entities.ErrInvalidTaskStatus),
		stdErrors.Is(err, entities.ErrInvalidName):
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
	case stdErrors.Is(err, entities.ErrMeetingAlreadyExists),
		stdErrors.Is(err, entities.ErrEmployeeAlreadyExists),
		stdErrors.Is(err, entities.ErrSentimentConflict):
		return c.JSON(http.StatusConflict, common.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error: "Internal server error",
	})
}

// bindAndValidate decodes the request body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// respondList wraps a slice payload with its count
func respondList(c echo.Context, status int, data interface{}, count int) error {
	return c.JSON(status, common.ListResponse{Data: data, Count: count})
}
