package flow

// StartRequest opens a meeting flow for the named attendees
type StartRequest struct {
	Attendees []string `json:"attendees" validate:"required,min=1,dive,max=255"`
}

// AddEmailRequest supplies the email of an attendee
type AddEmailRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// AddNoteRequest appends one note
type AddNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// ConfirmSummaryRequest approves or rejects the bullet summary
type ConfirmSummaryRequest struct {
	Approved bool `json:"approved"`
}

// SendEmailsRequest optionally pins the meeting the caller expects
type SendEmailsRequest struct {
	MeetingID *string `json:"meeting_id,omitempty" validate:"omitempty,uuid"`
}
