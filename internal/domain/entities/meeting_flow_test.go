package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeetingFlow_InitialState(t *testing.T) {
	owner := uuid.New()

	withUnresolved, err := NewMeetingFlow(owner, AttendeesPayload{Unresolved: []string{"Bob"}})
	require.NoError(t, err)
	assert.Equal(t, FlowStateCollectingEmails, withUnresolved.State)
	assert.Equal(t, 1, withUnresolved.Version)

	allResolved, err := NewMeetingFlow(owner, AttendeesPayload{
		Resolved: []Attendee{{Name: "Alice", Email: "alice@x.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, FlowStateCollectingNotes, allResolved.State)
}

func TestMeetingFlow_PayloadsDecode(t *testing.T) {
	flow, err := NewMeetingFlow(uuid.New(), AttendeesPayload{
		Resolved:   []Attendee{{Name: "Alice", Email: "alice@x.com"}},
		Unresolved: []string{"Bob"},
	})
	require.NoError(t, err)

	attendees, err := flow.Attendees()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, attendees.Names())
	assert.Equal(t, []string{"Bob"}, attendees.Unresolved)

	notes, err := flow.Notes()
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.JSONEq(t, `[]`, string(flow.NotesPayload))

	summary, err := flow.Summary()
	require.NoError(t, err)
	assert.Empty(t, summary.SummaryText)
}

func TestMeetingFlow_NotesKeepOrder(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	encoded, err := EncodeNotes([]Note{{Text: "a", Timestamp: now}, {Text: "b", Timestamp: now}})
	require.NoError(t, err)

	flow := &MeetingFlow{NotesPayload: encoded}
	notes, err := flow.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Text)
	assert.Equal(t, "b", notes[1].Text)
}

func TestMeetingFlow_CorruptPayload(t *testing.T) {
	flow := &MeetingFlow{AttendeesPayload: []byte(`{not json`)}

	_, err := flow.Attendees()
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestFlowState(t *testing.T) {
	assert.True(t, FlowStateSendingEmails.IsActive())
	assert.False(t, FlowStateCompleted.IsActive())
	assert.False(t, FlowStateNone.IsValid())
	assert.False(t, FlowState("bogus").IsActive())
}
