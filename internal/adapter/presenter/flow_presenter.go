package presenter

import (
	"fmt"

	"github.com/google/uuid"

	flowDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/flow"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/usecase/meetingflow"
)

func toAttendees(in []entities.Attendee) []flowDTO.AttendeeResponse {
	out := make([]flowDTO.AttendeeResponse, len(in))
	for i, a := range in {
		out[i] = flowDTO.AttendeeResponse{Name: a.Name, Email: a.Email}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ToStartResponse converts the start result
func ToStartResponse(r *meetingflow.StartResult) *flowDTO.StartResponse {
	msg := "All attendees found. You can start taking notes."
	if len(r.Unresolved) > 0 {
		msg = fmt.Sprintf("I need email addresses for: %d attendee(s)", len(r.Unresolved))
	}
	return &flowDTO.StartResponse{
		FlowID:        r.FlowID.String(),
		FlowState:     string(r.State),
		Attendees:     toAttendees(r.Resolved),
		MissingEmails: nonNil(r.Unresolved),
		Message:       msg,
	}
}

// ToAddEmailResponse converts the add-email result
func ToAddEmailResponse(r *meetingflow.AddEmailResult) *flowDTO.AddEmailResponse {
	msg := "Email saved. All attendees have emails, you can start taking notes."
	if len(r.Unresolved) > 0 {
		msg = fmt.Sprintf("Email saved. Still missing %d email(s).", len(r.Unresolved))
	}
	return &flowDTO.AddEmailResponse{
		FlowState:     string(r.State),
		Attendees:     toAttendees(r.Resolved),
		MissingEmails: nonNil(r.Unresolved),
		Message:       msg,
	}
}

// ToAddNoteResponse converts the add-note result
func ToAddNoteResponse(r *meetingflow.AddNoteResult) *flowDTO.AddNoteResponse {
	return &flowDTO.AddNoteResponse{
		FlowState: string(r.State),
		NoteCount: r.NoteCount,
		Message:   "Note recorded",
	}
}

// ToEndNotesResponse converts the end-notes result
func ToEndNotesResponse(r *meetingflow.EndNotesResult) *flowDTO.EndNotesResponse {
	return &flowDTO.EndNotesResponse{
		FlowState: string(r.State),
		Summary:   r.Summary,
		Message:   "Meeting ended. Please review the summary.",
	}
}

// ToConfirmSummaryResponse converts the confirm result
func ToConfirmSummaryResponse(r *meetingflow.ConfirmResult) *flowDTO.ConfirmSummaryResponse {
	if !r.Approved {
		return &flowDTO.ConfirmSummaryResponse{
			Approved:  false,
			FlowState: string(r.State),
			Message:   "Summary not approved. Please provide corrections.",
		}
	}

	msg := "MoM generated. Ready to send emails."
	if !r.MinutesGenerated {
		msg = "MoM generation failed. The diagnostic was saved; you can still send emails."
	}
	return &flowDTO.ConfirmSummaryResponse{
		Approved:         true,
		FlowState:        string(r.State),
		MeetingID:        r.MeetingID.String(),
		Title:            r.Title,
		Minutes:          r.Minutes,
		MinutesGenerated: r.MinutesGenerated,
		MinutesError:     r.MinutesError,
		Attendees:        toAttendees(r.Attendees),
		Message:          msg,
	}
}

// ToReopenNotesResponse converts the reopen result
func ToReopenNotesResponse(r *meetingflow.ReopenResult) *flowDTO.ReopenNotesResponse {
	return &flowDTO.ReopenNotesResponse{
		FlowState: string(r.State),
		NoteCount: r.NoteCount,
		Message:   "Summary discarded. You can keep taking notes.",
	}
}

// ToSendEmailsResponse converts the dispatch result
func ToSendEmailsResponse(r *meetingflow.SendResult) *flowDTO.SendEmailsResponse {
	failed := make([]flowDTO.FailedEmailResponse, len(r.Failed))
	for i, f := range r.Failed {
		failed[i] = flowDTO.FailedEmailResponse{Name: f.Name, Email: f.Email, Error: f.Error}
	}
	return &flowDTO.SendEmailsResponse{
		FlowState:    string(r.State),
		MeetingID:    r.MeetingID.String(),
		SentEmails:   nonNil(r.Sent),
		FailedEmails: failed,
		Message:      fmt.Sprintf("Meeting flow completed. Emails sent to %d attendees.", len(r.Sent)),
	}
}

// ToStatusResponse converts the status result
func ToStatusResponse(r *meetingflow.StatusResult) *flowDTO.StatusResponse {
	if r.State == entities.FlowStateNone {
		return &flowDTO.StatusResponse{
			FlowState: string(r.State),
			Message:   "No active meeting flow",
		}
	}
	return &flowDTO.StatusResponse{
		FlowState:     string(r.State),
		FlowID:        uuidString(r.FlowID),
		MeetingID:     uuidString(r.MeetingID),
		Attendees:     toAttendees(r.Resolved),
		MissingEmails: r.Unresolved,
		NoteCount:     r.NoteCount,
		Summary:       r.Summary,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Message:       fmt.Sprintf("Active meeting flow in %s state", r.State),
	}
}
