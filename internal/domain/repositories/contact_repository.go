package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// ContactRepository is the per-user contact directory
type ContactRepository interface {
	// Upsert inserts or renames the contact identified by (owner, email)
	Upsert(ctx context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error)

	// FindByName returns the oldest contact whose name matches case-insensitively,
	// or entities.ErrContactNotFound
	FindByName(ctx context.Context, owner uuid.UUID, name string) (*entities.Contact, error)

	// ListAll returns the owner's contacts ordered by name
	ListAll(ctx context.Context, owner uuid.UUID) ([]*entities.Contact, error)
}
