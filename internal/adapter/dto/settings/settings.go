package settings

import "time"

// UpdateSettingsRequest is a partial update; omitted fields are unchanged
type UpdateSettingsRequest struct {
	OpenAIKey *string `json:"openai_key,omitempty"`
	SMTPHost  *string `json:"smtp_host,omitempty" validate:"omitempty,hostname|ip"`
	SMTPPort  *int    `json:"smtp_port,omitempty" validate:"omitempty,min=0,max=65535"`
	SMTPUser  *string `json:"smtp_user,omitempty"`
	SMTPPass  *string `json:"smtp_pass,omitempty"`
}

// SettingsResponse shows settings with secrets masked
type SettingsResponse struct {
	OpenAIKey string     `json:"openai_key"`
	SMTPHost  string     `json:"smtp_host"`
	SMTPPort  int        `json:"smtp_port"`
	SMTPUser  string     `json:"smtp_user"`
	SMTPPass  string     `json:"smtp_pass"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
