package entities

import (
	"time"

	"github.com/google/uuid"
)

// EmailCategory groups logged emails by purpose
type EmailCategory string

const (
	EmailCategoryMeetingMinutes EmailCategory = "meeting_minutes"
	EmailCategoryGeneral        EmailCategory = "general"
	EmailCategoryTaskAssignment EmailCategory = "task_assignment"
)

// EmailLog records one successfully delivered email
type EmailLog struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID uuid.UUID     `json:"owner_user_id" gorm:"type:uuid;not null;index"`
	Recipient   string        `json:"recipient" gorm:"type:varchar(255);not null"`
	Subject     string        `json:"subject" gorm:"type:varchar(500);not null"`
	Body        string        `json:"body" gorm:"type:text;not null"`
	Category    EmailCategory `json:"category" gorm:"type:varchar(50);not null"`
	RelatedID   *uuid.UUID    `json:"related_id,omitempty" gorm:"type:uuid"`
	SentAt      time.Time     `json:"sent_at" gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EmailLog) TableName() string {
	return "emails"
}
