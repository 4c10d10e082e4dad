package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/adapter/dto/common"
	emailDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/email"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
)

const defaultEmailLimit = 20

// EmailService sends ad-hoc emails and lists delivered ones
type EmailService interface {
	Deliver(ctx context.Context, msg notification.Message) error
	Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.EmailLog, error)
}

// EmailDrafter writes emails with the chat model
type EmailDrafter interface {
	Draft(ctx context.Context, owner uuid.UUID, req notification.DraftRequest) (*notification.Draft, error)
}

// Email handles the email endpoints
type Email struct {
	emails  EmailService
	drafter EmailDrafter
	logger  *zap.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emails EmailService, drafter EmailDrafter, logger *zap.Logger) *Email {
	return &Email{emails: emails, drafter: drafter, logger: logger}
}

func emailCategory(emailType string) entities.EmailCategory {
	if emailType == "" {
		return entities.EmailCategoryGeneral
	}
	return entities.EmailCategory(emailType)
}

// Send handles POST /emails/send
// @Summary      Send an email
// @Description  Delivers one email through the user's relay, or the server default, and logs it
// @Tags         Emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      emailDTO.SendEmailRequest  true  "Email"
// @Success      200      {object}  emailDTO.SendEmailResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Failure      502      {object}  map[string]interface{}  "Relay rejected or unreachable"
// @Router       /emails/send [post]
func (h *Email) Send(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req emailDTO.SendEmailRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	err = h.emails.Deliver(c.Request().Context(), notification.Message{
		Owner:     owner,
		Recipient: entities.NormalizeEmail(req.Recipient),
		Subject:   req.Subject,
		Body:      req.Body,
		Category:  emailCategory(req.EmailType),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, emailDTO.SendEmailResponse{
		Recipient: entities.NormalizeEmail(req.Recipient),
		Message:   "Email sent successfully",
	})
}

// Draft handles POST /emails/draft
// @Summary      Draft an email
// @Description  Asks the chat model for a subject and body; nothing is sent
// @Tags         Emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      emailDTO.DraftEmailRequest  true  "What to write"
// @Success      200      {object}  emailDTO.DraftEmailResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed or no API key"
// @Failure      502      {object}  map[string]interface{}  "Model call failed"
// @Router       /emails/draft [post]
func (h *Email) Draft(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req emailDTO.DraftEmailRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	draft, err := h.drafter.Draft(c.Request().Context(), owner, notification.DraftRequest{
		Recipient: req.Recipient,
		Context:   req.Context,
		Category:  emailCategory(req.EmailType),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, emailDTO.DraftEmailResponse{
		Subject: draft.Subject,
		Body:    draft.Body,
	})
}

// List handles GET /emails
// @Summary      Recent emails
// @Tags         Emails
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max items (default 20, max 100)"
// @Success      200    {object}  common.ListResponse
// @Router       /emails [get]
func (h *Email) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req emailDTO.ListEmailsRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Limit == 0 {
		req.Limit = defaultEmailLimit
	}

	logs, err := h.emails.Recent(c.Request().Context(), owner, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data:  presenter.ToEmailList(logs),
		Count: len(logs),
	})
}
