package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// SettingsRepository stores per-user integration settings
type SettingsRepository interface {
	// Get returns the owner's settings or entities.ErrSettingsNotFound
	Get(ctx context.Context, owner uuid.UUID) (*entities.UserSettings, error)

	// Save applies patch, creating the row when missing, and returns the result
	Save(ctx context.Context, owner uuid.UUID, patch entities.SettingsPatch) (*entities.UserSettings, error)
}
