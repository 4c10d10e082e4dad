package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	settingsDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/settings"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// SettingsService reads and patches per-user settings
type SettingsService interface {
	Get(ctx context.Context, owner uuid.UUID) (*entities.UserSettings, error)
	Update(ctx context.Context, owner uuid.UUID, patch entities.SettingsPatch) (*entities.UserSettings, error)
}

// Settings handles user settings endpoints
type Settings struct {
	settingsService SettingsService
	logger          *zap.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService SettingsService, logger *zap.Logger) *Settings {
	return &Settings{settingsService: settingsService, logger: logger}
}

// Get handles GET /settings
// @Summary      Get settings
// @Description  Secrets are masked
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsDTO.SettingsResponse
// @Router       /settings [get]
func (h *Settings) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	st, err := h.settingsService.Get(c.Request().Context(), owner)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSettingsResponse(st))
}

// Update handles PUT /settings
// @Summary      Update settings
// @Description  Applies only the fields present in the body
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      settingsDTO.UpdateSettingsRequest  true  "Settings patch"
// @Success      200      {object}  settingsDTO.SettingsResponse
// @Failure      400      {object}  map[string]interface{}  "Empty or invalid patch"
// @Router       /settings [put]
func (h *Settings) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	var req settingsDTO.UpdateSettingsRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	st, err := h.settingsService.Update(c.Request().Context(), owner, presenter.ToSettingsPatch(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSettingsResponse(st))
}
