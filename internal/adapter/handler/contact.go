package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/adapter/dto/common"
	contactDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/contact"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// ContactService manages the contact directory
type ContactService interface {
	Save(ctx context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error)
	List(ctx context.Context, owner uuid.UUID) ([]*entities.Contact, error)
}

// Contact handles contact directory endpoints
type Contact struct {
	contactService ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService ContactService, logger *zap.Logger) *Contact {
	return &Contact{contactService: contactService, logger: logger}
}

// Create handles POST /contacts
// @Summary      Save a contact
// @Description  Creates the contact or renames the one with the same email
// @Tags         Contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      contactDTO.CreateContactRequest  true  "Contact"
// @Success      201      {object}  contactDTO.ContactResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Router       /contacts [post]
func (h *Contact) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req contactDTO.CreateContactRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	contact, err := h.contactService.Save(c.Request().Context(), owner, req.Name, req.Email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToContactResponse(contact))
}

// List handles GET /contacts
// @Summary      List contacts
// @Tags         Contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.ListResponse
// @Router       /contacts [get]
func (h *Contact) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	contacts, err := h.contactService.List(c.Request().Context(), owner)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data:  presenter.ToContactList(contacts),
		Count: len(contacts),
	})
}
