package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// MeetingRepository persists meeting records
type MeetingRepository interface {
	// Create inserts an active meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// Complete stores the minutes and marks the owner's meeting completed.
	// It returns entities.ErrMeetingNotFound when the owner has no such meeting.
	Complete(ctx context.Context, owner, id uuid.UUID, minutes string, endedAt time.Time) error

	// FindByID returns the owner's meeting or entities.ErrMeetingNotFound
	FindByID(ctx context.Context, owner, id uuid.UUID) (*entities.Meeting, error)

	// ListByOwner returns the owner's meetings newest first
	ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.Meeting, error)
}
