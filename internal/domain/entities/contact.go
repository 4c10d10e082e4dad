package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a named email address in a user's directory.
// Email is unique per owner and stored lower-cased.
type Contact struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID uuid.UUID `json:"owner_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_contacts_owner_email"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Email       string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_contacts_owner_email"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact normalizes name and email into a new contact
func NewContact(owner uuid.UUID, name, email string) *Contact {
	now := time.Now()
	return &Contact{
		ID:          uuid.New(),
		OwnerUserID: owner,
		Name:        strings.TrimSpace(name),
		Email:       NormalizeEmail(email),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
