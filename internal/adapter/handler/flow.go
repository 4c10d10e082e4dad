package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/errors"
	flowDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/flow"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	"github.com/jarvis-assistant/assistant/internal/usecase/meetingflow"
)

// Flow handles the meeting flow endpoints
type Flow struct {
	flowService meetingflow.Service
	logger      *zap.Logger
}

// NewFlowHandler creates a new meeting flow handler
func NewFlowHandler(flowService meetingflow.Service, logger *zap.Logger) *Flow {
	return &Flow{flowService: flowService, logger: logger}
}

// Start handles POST /meetings/flow/start
// @Summary      Start a meeting flow
// @Description  Resolves attendee names against the contact directory and opens a flow
// @Tags         MeetingFlow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      flowDTO.StartRequest  true  "Attendee names"
// @Success      201      {object}  flowDTO.StartResponse
// @Failure      400      {object}  map[string]interface{}  "No attendee names"
// @Failure      409      {object}  map[string]interface{}  "A flow is already active"
// @Router       /meetings/flow/start [post]
func (h *Flow) Start(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req flowDTO.StartRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.Start(c.Request().Context(), owner, req.Attendees)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToStartResponse(res))
}

// AddEmail handles POST /meetings/flow/add-email
// @Summary      Provide an attendee email
// @Description  Saves the email as a contact and resolves the attendee
// @Tags         MeetingFlow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      flowDTO.AddEmailRequest  true  "Attendee name and email"
// @Success      200      {object}  flowDTO.AddEmailResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid email"
// @Failure      404      {object}  map[string]interface{}  "No active flow"
// @Failure      409      {object}  map[string]interface{}  "Flow is not collecting emails"
// @Router       /meetings/flow/add-email [post]
func (h *Flow) AddEmail(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req flowDTO.AddEmailRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.AddEmail(c.Request().Context(), owner, req.Name, req.Email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAddEmailResponse(res))
}

// AddNote handles POST /meetings/flow/add-note
// @Summary      Add a meeting note
// @Tags         MeetingFlow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      flowDTO.AddNoteRequest  true  "Note text"
// @Success      200      {object}  flowDTO.AddNoteResponse
// @Failure      409      {object}  map[string]interface{}  "Flow is not collecting notes"
// @Router       /meetings/flow/add-note [post]
func (h *Flow) AddNote(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req flowDTO.AddNoteRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.AddNote(c.Request().Context(), owner, req.Note)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAddNoteResponse(res))
}

// EndNotes handles POST /meetings/flow/end
// @Summary      End note taking
// @Description  Renders the bullet summary for confirmation
// @Tags         MeetingFlow
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  flowDTO.EndNotesResponse
// @Failure      409  {object}  map[string]interface{}  "Flow is not collecting notes"
// @Router       /meetings/flow/end [post]
func (h *Flow) EndNotes(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.EndNotes(c.Request().Context(), owner)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToEndNotesResponse(res))
}

// ConfirmSummary handles POST /meetings/flow/confirm-summary
// @Summary      Confirm the summary
// @Description  On approval creates the meeting and generates the minutes
// @Tags         MeetingFlow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      flowDTO.ConfirmSummaryRequest  true  "Approval"
// @Success      200      {object}  flowDTO.ConfirmSummaryResponse
// @Failure      409      {object}  map[string]interface{}  "Flow is not confirming a summary"
// @Failure      502      {object}  map[string]interface{}  "Minutes generation failed"
// @Router       /meetings/flow/confirm-summary [post]
func (h *Flow) ConfirmSummary(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req flowDTO.ConfirmSummaryRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.ConfirmSummary(c.Request().Context(), owner, req.Approved)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToConfirmSummaryResponse(res))
}

// ReopenNotes handles POST /meetings/flow/reopen-notes
// @Summary      Resume note taking
// @Description  Discards the pending summary and keeps the notes
// @Tags         MeetingFlow
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  flowDTO.ReopenNotesResponse
// @Failure      409  {object}  map[string]interface{}  "Flow is not confirming a summary"
// @Router       /meetings/flow/reopen-notes [post]
func (h *Flow) ReopenNotes(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.ReopenNotes(c.Request().Context(), owner)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToReopenNotesResponse(res))
}

// SendEmails handles POST /meetings/flow/send-emails
// @Summary      Email the minutes
// @Description  Sends the minutes to every resolved attendee and completes the flow
// @Tags         MeetingFlow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      flowDTO.SendEmailsRequest  false  "Expected meeting"
// @Success      200      {object}  flowDTO.SendEmailsResponse
// @Failure      409      {object}  map[string]interface{}  "Flow is not sending emails"
// @Router       /meetings/flow/send-emails [post]
func (h *Flow) SendEmails(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req flowDTO.SendEmailsRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var meetingID *uuid.UUID
	if req.MeetingID != nil && *req.MeetingID != "" {
		id, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id must be a valid UUID"))
		}
		meetingID = &id
	}

	res, err := h.flowService.SendEmails(c.Request().Context(), owner, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSendEmailsResponse(res))
}

// Status handles GET /meetings/flow/status
// @Summary      Current flow status
// @Tags         MeetingFlow
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  flowDTO.StatusResponse
// @Router       /meetings/flow/status [get]
func (h *Flow) Status(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.flowService.Status(c.Request().Context(), owner)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToStatusResponse(res))
}
