package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FlowState is the step a meeting flow is waiting on
type FlowState string

const (
	FlowStateNone              FlowState = "none" // reported by Status when no flow is active
	FlowStateCollectingEmails  FlowState = "collecting_emails"
	FlowStateCollectingNotes   FlowState = "collecting_notes"
	FlowStateConfirmingSummary FlowState = "confirming_summary"
	FlowStateSendingEmails     FlowState = "sending_emails"
	FlowStateCompleted         FlowState = "completed"
)

// IsValid checks if the state is one a stored flow can be in
func (s FlowState) IsValid() bool {
	switch s {
	case FlowStateCollectingEmails, FlowStateCollectingNotes, FlowStateConfirmingSummary,
		FlowStateSendingEmails, FlowStateCompleted:
		return true
	}
	return false
}

// IsActive reports whether a flow in this state still blocks a new one
func (s FlowState) IsActive() bool {
	return s.IsValid() && s != FlowStateCompleted
}

// Attendee is a resolved name and email pair
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AttendeesPayload splits attendees by whether an email is known
type AttendeesPayload struct {
	Resolved   []Attendee `json:"resolved"`
	Unresolved []string   `json:"unresolved"`
}

// Names returns resolved attendee names in order
func (p AttendeesPayload) Names() []string {
	names := make([]string, len(p.Resolved))
	for i, a := range p.Resolved {
		names[i] = a.Name
	}
	return names
}

// Note is one note in arrival order
type Note struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SummaryPayload holds the bullet summary awaiting confirmation
type SummaryPayload struct {
	SummaryText string `json:"summary_text"`
}

// MeetingFlow is the persisted state of one user's meeting wizard.
// At most one non-completed flow exists per owner.
type MeetingFlow struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerUserID      uuid.UUID      `json:"owner_user_id" gorm:"type:uuid;not null;index"`
	State            FlowState      `json:"state" gorm:"type:varchar(32);not null;index"`
	AttendeesPayload datatypes.JSON `json:"attendees_payload" gorm:"column:attendees_payload;type:jsonb;not null"`
	NotesPayload     datatypes.JSON `json:"notes_payload" gorm:"column:notes_payload;type:jsonb;not null"`
	SummaryPayload   datatypes.JSON `json:"summary_payload,omitempty" gorm:"column:summary_payload;type:jsonb"`
	MeetingID        *uuid.UUID     `json:"meeting_id,omitempty" gorm:"type:uuid"`
	Version          int            `json:"version" gorm:"not null;default:1"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MeetingFlow) TableName() string {
	return "meeting_flows"
}

// NewMeetingFlow creates a flow at its initial state
func NewMeetingFlow(owner uuid.UUID, attendees AttendeesPayload) (*MeetingFlow, error) {
	state := FlowStateCollectingNotes
	if len(attendees.Unresolved) > 0 {
		state = FlowStateCollectingEmails
	}

	attendeesJSON, err := EncodeAttendees(attendees)
	if err != nil {
		return nil, err
	}
	notesJSON, err := EncodeNotes(nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &MeetingFlow{
		ID:               uuid.New(),
		OwnerUserID:      owner,
		State:            state,
		AttendeesPayload: attendeesJSON,
		NotesPayload:     notesJSON,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Attendees decodes the attendees payload
func (f *MeetingFlow) Attendees() (AttendeesPayload, error) {
	var p AttendeesPayload
	if len(f.AttendeesPayload) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(f.AttendeesPayload, &p); err != nil {
		return p, fmt.Errorf("%w: attendees: %v", ErrInvalidPayload, err)
	}
	return p, nil
}

// Notes decodes the notes payload
func (f *MeetingFlow) Notes() ([]Note, error) {
	var notes []Note
	if len(f.NotesPayload) == 0 {
		return notes, nil
	}
	if err := json.Unmarshal(f.NotesPayload, &notes); err != nil {
		return nil, fmt.Errorf("%w: notes: %v", ErrInvalidPayload, err)
	}
	return notes, nil
}

// Summary decodes the summary payload; an absent summary is empty
func (f *MeetingFlow) Summary() (SummaryPayload, error) {
	var s SummaryPayload
	if len(f.SummaryPayload) == 0 || string(f.SummaryPayload) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(f.SummaryPayload, &s); err != nil {
		return s, fmt.Errorf("%w: summary: %v", ErrInvalidPayload, err)
	}
	return s, nil
}

// EncodeAttendees marshals attendees for storage, never as JSON null
func EncodeAttendees(p AttendeesPayload) (datatypes.JSON, error) {
	if p.Resolved == nil {
		p.Resolved = []Attendee{}
	}
	if p.Unresolved == nil {
		p.Unresolved = []string{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attendees: %w", err)
	}
	return datatypes.JSON(b), nil
}

// EncodeNotes marshals notes for storage, never as JSON null
func EncodeNotes(notes []Note) (datatypes.JSON, error) {
	if notes == nil {
		notes = []Note{}
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}
	return datatypes.JSON(b), nil
}

// EncodeSummary marshals the summary for storage
func EncodeSummary(s SummaryPayload) (datatypes.JSON, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return datatypes.JSON(b), nil
}
