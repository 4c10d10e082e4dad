package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
)

var _ repositories.EmailRepository = (*EmailRepository)(nil)

// EmailRepository implements the email log using GORM
type EmailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new email repository
func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

// Create records a delivered email
func (r *EmailRepository) Create(ctx context.Context, log *entities.EmailLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to log email: %w", err)
	}
	return nil
}

// ListRecent lists the owner's latest emails
func (r *EmailRepository) ListRecent(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.EmailLog, error) {
	var logs []*entities.EmailLog
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", owner).
		Order("sent_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return logs, nil
}
