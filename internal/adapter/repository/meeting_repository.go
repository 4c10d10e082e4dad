package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
)

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

// MeetingRepository implements meeting persistence using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// Complete records minutes and marks the meeting completed
func (r *MeetingRepository) Complete(ctx context.Context, owner, id uuid.UUID, minutes string, endedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ? AND owner_user_id = ?", id, owner).
		Updates(map[string]interface{}{
			"minutes_text": minutes,
			"status":       entities.MeetingStatusCompleted,
			"ended_at":     endedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// FindByID finds a meeting of the owner
func (r *MeetingRepository) FindByID(ctx context.Context, owner, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, owner).
		First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return &meeting, nil
}

// ListByOwner lists meetings newest first
func (r *MeetingRepository) ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", owner).
		Order("created_at DESC").
		Limit(limit).
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}
