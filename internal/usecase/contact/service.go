package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

// EmailChecker validates email syntax
type EmailChecker interface {
	Email(s string) bool
}

// Service manages a user's contact directory
type Service struct {
	contacts repositories.ContactRepository
	emails   EmailChecker
}

// NewService creates a new contact service
func NewService(contacts repositories.ContactRepository, emails EmailChecker) *Service {
	return &Service{contacts: contacts, emails: emails}
}

// Save creates the contact or renames the one with the same email
func (s *Service) Save(ctx context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ucErrors.InvalidContact("contact name is required")
	}
	if !s.emails.Email(strings.TrimSpace(email)) {
		return nil, ucErrors.InvalidContact("invalid email address: %q", email)
	}
	return s.contacts.Upsert(ctx, owner, name, email)
}

// List returns the owner's contacts ordered by name
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*entities.Contact, error) {
	return s.contacts.ListAll(ctx, owner)
}
