package meeting

import "time"

// ListMeetingsRequest pages the meeting history
type ListMeetingsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// MeetingResponse represents a meeting record
type MeetingResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Attendees string     `json:"attendees"`
	Notes     string     `json:"notes"`
	Minutes   *string    `json:"mom,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// MinutesURLResponse is a presigned download link for archived minutes
type MinutesURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
