package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	systemDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/system"
	"github.com/jarvis-assistant/assistant/internal/usecase/system"
)

// StatusService checks an owner's integrations
type StatusService interface {
	Status(ctx context.Context, owner uuid.UUID) *system.Status
}

// System handles the per-user system check
type System struct {
	status StatusService
	logger *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(status StatusService, logger *zap.Logger) *System {
	return &System{status: status, logger: logger}
}

// Status handles GET /system/status
// @Summary      Integration status
// @Description  Tests the user's LLM key and SMTP relay, falling back to server defaults, and the database
// @Tags         System
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  systemDTO.StatusResponse
// @Router       /system/status [get]
func (h *System) Status(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	st := h.status.Status(c.Request().Context(), owner)
	return HandleSuccess(h.logger, c, systemDTO.StatusResponse{
		LLMConnected:      st.LLMConnected,
		SMTPConnected:     st.SMTPConnected,
		DatabaseConnected: st.DatabaseConnected,
		LLMError:          st.LLMError,
		SMTPError:         st.SMTPError,
		DatabaseError:     st.DatabaseError,
		Message:           st.Message,
	})
}
