package meetingflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// StartResult is returned by Start
type StartResult struct {
	FlowID     uuid.UUID
	State      entities.FlowState
	Resolved   []entities.Attendee
	Unresolved []string
}

// AddEmailResult is returned by AddEmail
type AddEmailResult struct {
	State      entities.FlowState
	Resolved   []entities.Attendee
	Unresolved []string
}

// AddNoteResult is returned by AddNote
type AddNoteResult struct {
	State     entities.FlowState
	NoteCount int
}

// EndNotesResult is returned by EndNotes
type EndNotesResult struct {
	State   entities.FlowState
	Summary string
}

// ConfirmResult is returned by ConfirmSummary. When Approved is false
// nothing else is set beyond State.
type ConfirmResult struct {
	Approved         bool
	State            entities.FlowState
	MeetingID        uuid.UUID
	Title            string
	Minutes          string
	MinutesGenerated bool
	MinutesError     string
	Attendees        []entities.Attendee
}

// ReopenResult is returned by ReopenNotes
type ReopenResult struct {
	State     entities.FlowState
	NoteCount int
}

// FailedRecipient is an attendee whose email could not be delivered
type FailedRecipient struct {
	Name  string
	Email string
	Error string
}

// SendResult partitions attendees by delivery outcome
type SendResult struct {
	State     entities.FlowState
	MeetingID uuid.UUID
	Sent      []string
	Failed    []FailedRecipient
}

// StatusResult describes the active flow, or State none
type StatusResult struct {
	State      entities.FlowState
	FlowID     *uuid.UUID
	MeetingID  *uuid.UUID
	Resolved   []entities.Attendee
	Unresolved []string
	NoteCount  int
	Summary    string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}
