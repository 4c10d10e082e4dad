package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle of a meeting record
type MeetingStatus string

const (
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusCompleted MeetingStatus = "completed"
)

// Meeting is the record produced by an approved flow
type Meeting struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID   uuid.UUID     `json:"owner_user_id" gorm:"type:uuid;not null;index"`
	Title         string        `json:"title" gorm:"type:varchar(255);not null"`
	AttendeeNames string        `json:"attendee_names" gorm:"type:text;not null"`
	Notes         string        `json:"notes" gorm:"type:text;not null"`
	MinutesText   *string       `json:"minutes_text,omitempty" gorm:"type:text"`
	Status        MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	EndedAt   *time.Time `json:"ended_at,omitempty" gorm:"type:timestamptz"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates an active meeting
func NewMeeting(owner uuid.UUID, title, attendeeNames, notes string) *Meeting {
	return &Meeting{
		ID:            uuid.New(),
		OwnerUserID:   owner,
		Title:         title,
		AttendeeNames: attendeeNames,
		Notes:         notes,
		Status:        MeetingStatusActive,
		CreatedAt:     time.Now(),
	}
}

// Complete marks the meeting as completed with its minutes
func (m *Meeting) Complete(minutes string, at time.Time) {
	m.MinutesText = &minutes
	m.Status = MeetingStatusCompleted
	m.EndedAt = &at
}

// IsCompleted reports whether minutes were recorded
func (m *Meeting) IsCompleted() bool {
	return m.Status == MeetingStatusCompleted
}
