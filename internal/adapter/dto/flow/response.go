package flow

import "time"

// AttendeeResponse is a resolved attendee
type AttendeeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StartResponse is returned by the start step
type StartResponse struct {
	FlowID        string             `json:"flow_id"`
	FlowState     string             `json:"flow_state"`
	Attendees     []AttendeeResponse `json:"attendees"`
	MissingEmails []string           `json:"missing_emails"`
	Message       string             `json:"message"`
}

// AddEmailResponse is returned after an email is recorded
type AddEmailResponse struct {
	FlowState     string             `json:"flow_state"`
	Attendees     []AttendeeResponse `json:"attendees"`
	MissingEmails []string           `json:"missing_emails"`
	Message       string             `json:"message"`
}

// AddNoteResponse is returned after a note is recorded
type AddNoteResponse struct {
	FlowState string `json:"flow_state"`
	NoteCount int    `json:"note_count"`
	Message   string `json:"message"`
}

// EndNotesResponse carries the summary awaiting confirmation
type EndNotesResponse struct {
	FlowState string `json:"flow_state"`
	Summary   string `json:"summary"`
	Message   string `json:"message"`
}

// ConfirmSummaryResponse carries the generated minutes
type ConfirmSummaryResponse struct {
	Approved         bool               `json:"approved"`
	FlowState        string             `json:"flow_state"`
	MeetingID        string             `json:"meeting_id,omitempty"`
	Title            string             `json:"title,omitempty"`
	Minutes          string             `json:"mom,omitempty"`
	MinutesGenerated bool               `json:"mom_generated"`
	MinutesError     string             `json:"mom_error,omitempty"`
	Attendees        []AttendeeResponse `json:"attendees,omitempty"`
	Message          string             `json:"message"`
}

// ReopenNotesResponse is returned when note taking resumes
type ReopenNotesResponse struct {
	FlowState string `json:"flow_state"`
	NoteCount int    `json:"note_count"`
	Message   string `json:"message"`
}

// FailedEmailResponse is one undelivered minutes email
type FailedEmailResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Error string `json:"error"`
}

// SendEmailsResponse partitions attendees by delivery outcome
type SendEmailsResponse struct {
	FlowState    string                `json:"flow_state"`
	MeetingID    string                `json:"meeting_id"`
	SentEmails   []string              `json:"sent_emails"`
	FailedEmails []FailedEmailResponse `json:"failed_emails"`
	Message      string                `json:"message"`
}

// StatusResponse describes the active flow
type StatusResponse struct {
	FlowState     string             `json:"flow_state"`
	FlowID        *string            `json:"flow_id,omitempty"`
	MeetingID     *string            `json:"meeting_id,omitempty"`
	Attendees     []AttendeeResponse `json:"attendees,omitempty"`
	MissingEmails []string           `json:"missing_emails,omitempty"`
	NoteCount     int                `json:"note_count"`
	Summary       string             `json:"summary,omitempty"`
	CreatedAt     *time.Time         `json:"created_at,omitempty"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty"`
	Message       string             `json:"message"`
}
