package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// FlowPatch is an explicit partial update of a meeting flow.
// Nil fields are left unchanged.
type FlowPatch struct {
	State        *entities.FlowState
	Attendees    *entities.AttendeesPayload
	Notes        []entities.Note
	SetNotes     bool
	Summary      *entities.SummaryPayload
	ClearSummary bool
	MeetingID    *uuid.UUID
}

// MeetingFlowRepository persists meeting flows
type MeetingFlowRepository interface {
	// Create inserts a new flow. Returns entities.ErrFlowAlreadyActive when
	// the owner already has a non-completed flow.
	Create(ctx context.Context, flow *entities.MeetingFlow) error

	// GetActive returns the owner's newest non-completed flow,
	// or entities.ErrFlowNotFound
	GetActive(ctx context.Context, owner uuid.UUID) (*entities.MeetingFlow, error)

	// Update applies patch when the stored version equals version and bumps it.
	// Returns entities.ErrFlowVersionStale when no row matched.
	Update(ctx context.Context, id uuid.UUID, version int, patch FlowPatch) error
}
