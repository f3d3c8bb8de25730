package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	meetingdto "github.com/meetpulse-team/meetpulse/internal/adapter/dto/meeting"
	"github.com/meetpulse-team/meetpulse/internal/usecase/meeting"
)

// Meeting handles meeting and transcript HTTP requests
type Meeting struct {
	meetingService *meeting.Service
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service) *Meeting {
	return &Meeting{meetingService: meetingService}
}

// Create registers a meeting
// POST /v1/meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), req.ID, req.Title)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// List retrieves all meetings
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, meetings, len(meetings))
}

// Get retrieves one meeting
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	m, err := h.meetingService.GetMeeting(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes a meeting and all its scoped rows
// DELETE /v1/meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	if err := h.meetingService.DeleteMeeting(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddTranscript records one speaker's utterance set
// POST /v1/meetings/:id/transcripts
func (h *Meeting) AddTranscript(c echo.Context) error {
	var req meetingdto.AddTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	transcript, err := h.meetingService.AddTranscript(c.Request().Context(), c.Param("id"), req.Name, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, transcript)
}

// ListTranscripts retrieves the transcript rows visible to the caller
// GET /v1/meetings/:id/transcripts
func (h *Meeting) ListTranscripts(c echo.Context) error {
	transcripts, err := h.meetingService.ListTranscripts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, http.StatusOK, transcripts, len(transcripts))
}

// MarkTranscriptProcessed flips the processed flag
// POST /v1/transcripts/:id/processed
func (h *Meeting) MarkTranscriptProcessed(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transcript id")
	}
	if err := h.meetingService.MarkTranscriptProcessed(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
