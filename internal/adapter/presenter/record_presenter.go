package presenter

import (
	contactDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/contact"
	emailDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/email"
	meetingDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/meeting"
	settingsDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/settings"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

const secretMask = "********"

// ToContactResponse converts a Contact entity
func ToContactResponse(c *entities.Contact) *contactDTO.ContactResponse {
	return &contactDTO.ContactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToContactList converts contacts in order
func ToContactList(in []*entities.Contact) []*contactDTO.ContactResponse {
	out := make([]*contactDTO.ContactResponse, len(in))
	for i, c := range in {
		out[i] = ToContactResponse(c)
	}
	return out
}

// ToMeetingResponse converts a Meeting entity
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	return &meetingDTO.MeetingResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Attendees: m.AttendeeNames,
		Notes:     m.Notes,
		Minutes:   m.MinutesText,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		EndedAt:   m.EndedAt,
	}
}

// ToMeetingList converts meetings in order
func ToMeetingList(in []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, len(in))
	for i, m := range in {
		out[i] = ToMeetingResponse(m)
	}
	return out
}

// ToEmailList converts email log entries in order
func ToEmailList(in []*entities.EmailLog) []*emailDTO.EmailResponse {
	out := make([]*emailDTO.EmailResponse, len(in))
	for i, e := range in {
		out[i] = &emailDTO.EmailResponse{
			ID:        e.ID.String(),
			Recipient: e.Recipient,
			Subject:   e.Subject,
			Body:      e.Body,
			Category:  string(e.Category),
			RelatedID: uuidString(e.RelatedID),
			SentAt:    e.SentAt,
		}
	}
	return out
}

// ToSettingsResponse converts settings, masking secrets that are set
func ToSettingsResponse(s *entities.UserSettings) *settingsDTO.SettingsResponse {
	resp := &settingsDTO.SettingsResponse{
		OpenAIKey: mask(s.LLMAPIKey),
		SMTPHost:  s.SMTPHost,
		SMTPPort:  s.SMTPPort,
		SMTPUser:  s.SMTPUser,
		SMTPPass:  mask(s.SMTPPass),
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// ToSettingsPatch converts the request into a partial update
func ToSettingsPatch(req *settingsDTO.UpdateSettingsRequest) entities.SettingsPatch {
	return entities.SettingsPatch{
		LLMAPIKey: req.OpenAIKey,
		SMTPHost:  req.SMTPHost,
		SMTPPort:  req.SMTPPort,
		SMTPUser:  req.SMTPUser,
		SMTPPass:  req.SMTPPass,
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return secretMask
}
