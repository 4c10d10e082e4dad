package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/adapter/dto/common"
	meetingDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/meeting"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// MeetingService reads the meeting history
type MeetingService interface {
	List(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.Meeting, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*entities.Meeting, error)
	MinutesURL(ctx context.Context, owner, id uuid.UUID) (string, time.Time, error)
}

// Meeting handles meeting history endpoints
type Meeting struct {
	meetingService MeetingService
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService MeetingService, logger *zap.Logger) *Meeting {
	return &Meeting{meetingService: meetingService, logger: logger}
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Returns the caller's meetings, newest first
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max items (default 20, max 100)"
// @Success      200    {object}  common.ListResponse
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req meetingDTO.ListMeetingsRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.meetingService.List(c.Request().Context(), owner, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data:  presenter.ToMeetingList(meetings),
		Count: len(meetings),
	})
}

// Get handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingDTO.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Get(c.Request().Context(), owner, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// MinutesURL handles GET /meetings/:id/minutes-url
// @Summary      Download link for archived minutes
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingDTO.MinutesURLResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting or minutes not found"
// @Failure      503  {object}  map[string]interface{}  "Archive not configured"
// @Router       /meetings/{id}/minutes-url [get]
func (h *Meeting) MinutesURL(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	url, expiresAt, err := h.meetingService.MinutesURL(c.Request().Context(), owner, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, meetingDTO.MinutesURLResponse{URL: url, ExpiresAt: expiresAt})
}
