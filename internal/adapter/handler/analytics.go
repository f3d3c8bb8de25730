package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	analyticsdto "github.com/meetpulse-team/meetpulse/internal/adapter/dto/analytics"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	"github.com/meetpulse-team/meetpulse/internal/usecase/analytics"
	"github.com/meetpulse-team/meetpulse/pkg/identity"
)

// Analytics handles sentiment, skills, and recommendation HTTP requests
type Analytics struct {
	analyticsService *analytics.Service
}

// NewAnalytics creates a new analytics handler
func NewAnalytics(analyticsService *analytics.Service) *Analytics {
	return &Analytics{analyticsService: analyticsService}
}

// RecordSentiment stores a sentiment distribution for one person
// PUT /v1/meetings/:id/sentiments
func (h *Analytics) RecordSentiment(c echo.Context) error {
	var req analyticsdto.RecordSentimentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sentiment, err := h.analyticsService.RecordSentiment(
		c.Request().Context(), c.Param("id"), req.Name, req.Role, req.Distribution)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentiment)
}

// ListSentiments retrieves all sentiment rows for a meeting
// GET /v1/meetings/:id/sentiments
func (h *Analytics) ListSentiments(c echo.Context) error {
	sentiments, err := h.analyticsService.ListSentiments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, sentiments, len(sentiments))
}

// RecordSkills stores a per-meeting skills summary
// POST /v1/meetings/:id/skills
func (h *Analytics) RecordSkills(c echo.Context) error {
	var req analyticsdto.RecordSkillsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skills, err := h.analyticsService.RecordSkills(
		c.Request().Context(), c.Param("id"), req.EmployeeName, req.Role, req.OverallSentimentScore)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, skills)
}

// ListSkills retrieves the skills rows visible to the caller
// GET /v1/meetings/:id/skills
func (h *Analytics) ListSkills(c echo.Context) error {
	skills, err := h.analyticsService.ListSkills(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, skills, len(skills))
}

// RecommendSkill stores a skill recommendation
// POST /v1/meetings/:id/skill-recommendations
func (h *Analytics) RecommendSkill(c echo.Context) error {
	var req analyticsdto.RecommendSkillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rec, err := h.analyticsService.RecommendSkill(
		c.Request().Context(), c.Param("id"), req.Name, req.SkillRecommendation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// ListSkillRecommendations retrieves skill recommendations for a meeting
// GET /v1/meetings/:id/skill-recommendations
func (h *Analytics) ListSkillRecommendations(c echo.Context) error {
	recs, err := h.analyticsService.ListSkillRecommendations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, recs, len(recs))
}

// RecommendTask stores a task recommendation
// POST /v1/meetings/:id/task-recommendations
func (h *Analytics) RecommendTask(c echo.Context) error {
	var req analyticsdto.RecommendTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rec, err := h.analyticsService.RecommendTask(
		c.Request().Context(), c.Param("id"), req.Task, req.AssignedBy, req.AssignedTo, req.Deadline)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// ListTaskRecommendations retrieves the task rows visible to the caller
// GET /v1/meetings/:id/task-recommendations
func (h *Analytics) ListTaskRecommendations(c echo.Context) error {
	recs, err := h.analyticsService.ListTaskRecommendations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, recs, len(recs))
}

// UpdateTaskStatus moves a task recommendation through its lifecycle
// PATCH /v1/task-recommendations/:id/status
func (h *Analytics) UpdateTaskStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid task recommendation id")
	}

	var req analyticsdto.UpdateTaskStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.analyticsService.UpdateTaskStatus(
		c.Request().Context(), id, entities.TaskStatus(req.Status)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Overview assembles the analytics read model for one meeting
// GET /v1/meetings/:id/overview
func (h *Analytics) Overview(c echo.Context) error {
	ctx := c.Request().Context()
	overview, err := h.analyticsService.MeetingOverview(ctx, c.Param("id"), identity.Role(ctx))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}
