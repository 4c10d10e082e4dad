package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user overrides of the server SMTP and LLM configuration
type UserSettings struct {
	OwnerUserID uuid.UUID `json:"owner_user_id" gorm:"type:uuid;primary_key"`
	LLMAPIKey   string    `json:"-" gorm:"column:llm_api_key;type:text;not null;default:''"`
	SMTPHost    string    `json:"smtp_host" gorm:"column:smtp_host;type:varchar(255);not null;default:''"`
	SMTPPort    int       `json:"smtp_port" gorm:"column:smtp_port;not null;default:0"`
	SMTPUser    string    `json:"smtp_user" gorm:"column:smtp_user;type:varchar(255);not null;default:''"`
	SMTPPass    string    `json:"-" gorm:"column:smtp_pass;type:text;not null;default:''"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserSettings) TableName() string {
	return "user_settings"
}

// HasSMTP reports whether the user configured a complete SMTP relay
func (s *UserSettings) HasSMTP() bool {
	return s != nil && s.SMTPHost != "" && s.SMTPPort > 0 && s.SMTPUser != "" && s.SMTPPass != ""
}

// SettingsPatch is a partial update; nil fields are left unchanged
type SettingsPatch struct {
	LLMAPIKey *string
	SMTPHost  *string
	SMTPPort  *int
	SMTPUser  *string
	SMTPPass  *string
}

// Apply copies the non-nil fields of p onto s
func (p SettingsPatch) Apply(s *UserSettings) {
	if p.LLMAPIKey != nil {
		s.LLMAPIKey = *p.LLMAPIKey
	}
	if p.SMTPHost != nil {
		s.SMTPHost = *p.SMTPHost
	}
	if p.SMTPPort != nil {
		s.SMTPPort = *p.SMTPPort
	}
	if p.SMTPUser != nil {
		s.SMTPUser = *p.SMTPUser
	}
	if p.SMTPPass != nil {
		s.SMTPPass = *p.SMTPPass
	}
}

// IsEmpty reports whether the patch changes nothing
func (p SettingsPatch) IsEmpty() bool {
	return p.LLMAPIKey == nil && p.SMTPHost == nil && p.SMTPPort == nil && p.SMTPUser == nil && p.SMTPPass == nil
}
