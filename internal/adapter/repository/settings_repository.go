package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
)

var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository implements per-user settings using GORM
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get finds the owner's settings
func (r *SettingsRepository) Get(ctx context.Context, owner uuid.UUID) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	if err := r.db.WithContext(ctx).Where("owner_user_id = ?", owner).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// Save applies patch to the stored row, creating it when missing
func (r *SettingsRepository) Save(ctx context.Context, owner uuid.UUID, patch entities.SettingsPatch) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_user_id = ?", owner).
			First(&settings).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			settings = entities.UserSettings{OwnerUserID: owner}
		case err != nil:
			return err
		}

		patch.Apply(&settings)
		return tx.Save(&settings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &settings, nil
}
