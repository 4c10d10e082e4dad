package email

import "time"

// ListEmailsRequest limits the email log
type ListEmailsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// EmailResponse is one delivered email
type EmailResponse struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	RelatedID *string   `json:"related_id,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// SendEmailRequest sends one email now
type SendEmailRequest struct {
	Recipient string `json:"recipient" validate:"required,email,max=255"`
	Subject   string `json:"subject" validate:"required,max=500"`
	Body      string `json:"body" validate:"required"`
	EmailType string `json:"email_type" validate:"omitempty,oneof=general task_assignment"`
}

// SendEmailResponse confirms a delivered email
type SendEmailResponse struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// DraftEmailRequest asks the model to write an email
type DraftEmailRequest struct {
	Recipient string `json:"recipient" validate:"required,max=255"`
	Context   string `json:"context" validate:"required,max=4000"`
	EmailType string `json:"email_type" validate:"omitempty,oneof=general task_assignment"`
}

// DraftEmailResponse is a draft for the user to review before sending
type DraftEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
