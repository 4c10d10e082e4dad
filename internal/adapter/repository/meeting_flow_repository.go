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

var _ repositories.MeetingFlowRepository = (*MeetingFlowRepository)(nil)

// MeetingFlowRepository implements flow persistence using GORM
type MeetingFlowRepository struct {
	db *gorm.DB
}

// NewMeetingFlowRepository creates a new meeting flow repository
func NewMeetingFlowRepository(db *gorm.DB) *MeetingFlowRepository {
	return &MeetingFlowRepository{db: db}
}

// Create creates a new flow. The partial unique index on active flows
// turns a second active flow into a duplicate key error.
func (r *MeetingFlowRepository) Create(ctx context.Context, flow *entities.MeetingFlow) error {
	if err := r.db.WithContext(ctx).Create(flow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrFlowAlreadyActive
		}
		return fmt.Errorf("failed to create meeting flow: %w", err)
	}
	return nil
}

// GetActive finds the newest non-completed flow of the owner
func (r *MeetingFlowRepository) GetActive(ctx context.Context, owner uuid.UUID) (*entities.MeetingFlow, error) {
	var flow entities.MeetingFlow
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ? AND state <> ?", owner, entities.FlowStateCompleted).
		Order("created_at DESC").
		First(&flow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to get active meeting flow: %w", err)
	}
	return &flow, nil
}

// Update applies patch guarded by the optimistic version
func (r *MeetingFlowRepository) Update(ctx context.Context, id uuid.UUID, version int, patch repositories.FlowPatch) error {
	updates, err := flowPatchColumns(patch)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&entities.MeetingFlow{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update meeting flow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrFlowVersionStale
	}
	return nil
}

func flowPatchColumns(patch repositories.FlowPatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{
		"version":    gorm.Expr("version + 1"),
		"updated_at": time.Now(),
	}

	if patch.State != nil {
		updates["state"] = *patch.State
	}
	if patch.Attendees != nil {
		b, err := entities.EncodeAttendees(*patch.Attendees)
		if err != nil {
			return nil, err
		}
		updates["attendees_payload"] = b
	}
	if patch.SetNotes {
		b, err := entities.EncodeNotes(patch.Notes)
		if err != nil {
			return nil, err
		}
		updates["notes_payload"] = b
	}
	switch {
	case patch.ClearSummary:
		updates["summary_payload"] = gorm.Expr("NULL")
	case patch.Summary != nil:
		b, err := entities.EncodeSummary(*patch.Summary)
		if err != nil {
			return nil, err
		}
		updates["summary_payload"] = b
	}
	if patch.MeetingID != nil {
		updates["meeting_id"] = *patch.MeetingID
	}
	return updates, nil
}
