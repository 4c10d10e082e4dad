package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
)

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// ContactRepository implements the contact directory using GORM
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Upsert inserts the contact or renames the existing one with the same email
func (r *ContactRepository) Upsert(ctx context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error) {
	contact := entities.NewContact(owner, name, email)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_user_id"}, {Name: "email"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"name":       contact.Name,
				"updated_at": time.Now(),
			}),
		}).
		Create(contact).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact: %w", err)
	}

	// On conflict the generated ID is not the stored one
	var stored entities.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ? AND email = ?", owner, contact.Email).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to reload contact: %w", err)
	}
	return &stored, nil
}

// FindByName finds a contact by case-insensitive exact name
func (r *ContactRepository) FindByName(ctx context.Context, owner uuid.UUID, name string) (*entities.Contact, error) {
	var contact entities.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ? AND LOWER(name) = LOWER(?)", owner, strings.TrimSpace(name)).
		Order("created_at ASC, id ASC").
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact by name: %w", err)
	}
	return &contact, nil
}

// ListAll lists the owner's contacts by name
func (r *ContactRepository) ListAll(ctx context.Context, owner uuid.UUID) ([]*entities.Contact, error) {
	var contacts []*entities.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", owner).
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
