package presenter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/usecase/meetingflow"
)

func TestToSettingsResponse_MasksSecrets(t *testing.T) {
	resp := ToSettingsResponse(&entities.UserSettings{
		LLMAPIKey: "sk-live",
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		SMTPUser:  "me",
	})

	assert.Equal(t, secretMask, resp.OpenAIKey)
	assert.Equal(t, "", resp.SMTPPass)
	assert.Equal(t, "smtp.example.com", resp.SMTPHost)
	assert.Nil(t, resp.UpdatedAt)
}

func TestToStartResponse_NeverNullLists(t *testing.T) {
	resp := ToStartResponse(&meetingflow.StartResult{
		FlowID: uuid.New(),
		State:  entities.FlowStateCollectingNotes,
	})

	assert.NotNil(t, resp.Attendees)
	assert.NotNil(t, resp.MissingEmails)
	assert.Equal(t, "collecting_notes", resp.FlowState)
}

func TestToStatusResponse_None(t *testing.T) {
	resp := ToStatusResponse(&meetingflow.StatusResult{State: entities.FlowStateNone})

	assert.Equal(t, "none", resp.FlowState)
	assert.Nil(t, resp.FlowID)
	assert.Equal(t, "No active meeting flow", resp.Message)
}

func TestToConfirmSummaryResponse_Rejected(t *testing.T) {
	resp := ToConfirmSummaryResponse(&meetingflow.ConfirmResult{State: entities.FlowStateConfirmingSummary})

	assert.False(t, resp.Approved)
	assert.Empty(t, resp.MeetingID)
	assert.Equal(t, "confirming_summary", resp.FlowState)
}
