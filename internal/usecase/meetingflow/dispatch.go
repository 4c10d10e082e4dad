package meetingflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
)

// SendEmails mails the minutes to every resolved attendee and completes
// the flow whatever the individual outcomes. meetingID is optional; when
// given it must match the flow's meeting.
func (s *FlowService) SendEmails(ctx context.Context, owner uuid.UUID, meetingID *uuid.UUID) (*SendResult, error) {
	var out *SendResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "send emails", entities.FlowStateSendingEmails)
		if err != nil {
			return err
		}
		if flow.MeetingID == nil {
			return fmt.Errorf("meeting flow %s has no meeting", flow.ID)
		}
		if meetingID != nil && *meetingID != *flow.MeetingID {
			return ucErrors.Invalid("meeting %s does not belong to the active flow", meetingID)
		}

		meeting, err := s.Meetings.FindByID(ctx, owner, *flow.MeetingID)
		if err != nil {
			if errors.Is(err, entities.ErrMeetingNotFound) {
				return ucErrors.ErrMeetingNotFound
			}
			return fmt.Errorf("failed to load meeting: %w", err)
		}
		attendees, err := flow.Attendees()
		if err != nil {
			return err
		}

		var minutesText string
		if meeting.MinutesText != nil {
			minutesText = *meeting.MinutesText
		}
		results := s.dispatch(ctx, owner, meeting, minutesText, attendees.Resolved)

		res := &SendResult{
			State:     entities.FlowStateCompleted,
			MeetingID: meeting.ID,
			Sent:      []string{},
			Failed:    []FailedRecipient{},
		}
		for i, r := range results {
			if r.Success {
				res.Sent = append(res.Sent, r.Recipient)
				continue
			}
			res.Failed = append(res.Failed, FailedRecipient{
				Name:  attendees.Resolved[i].Name,
				Email: r.Recipient,
				Error: r.Error,
			})
		}

		// Mail has gone out; the completion must land even if the caller left.
		err = s.update(context.WithoutCancel(ctx), s.Flows, flow, repositories.FlowPatch{State: statePtr(entities.FlowStateCompleted)})
		if err != nil {
			return err
		}

		s.transitioned("send_emails", owner, entities.FlowStateCompleted)
		s.Logger.Info("📧 Meeting minutes dispatched",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("sent", len(res.Sent)),
			zap.Int("failed", len(res.Failed)),
		)
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dispatch sends one email per attendee with bounded concurrency.
// results[i] belongs to attendees[i].
func (s *FlowService) dispatch(ctx context.Context, owner uuid.UUID, meeting *entities.Meeting, minutesText string, attendees []entities.Attendee) []notification.Result {
	results := make([]notification.Result, len(attendees))

	var g errgroup.Group
	g.SetLimit(s.cfg.DispatchConcurrency)

	subject := EmailSubject(meeting.Title)
	for i, a := range attendees {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = notification.Result{
						Recipient: a.Email,
						Error:     fmt.Sprintf("panic during delivery: %v", r),
					}
				}
			}()

			results[i] = s.Dispatcher.Send(ctx, notification.Message{
				Owner:     owner,
				Recipient: a.Email,
				Subject:   subject,
				Body:      EmailBody(a.Name, minutesText, s.cfg.SenderName),
				Category:  entities.EmailCategoryMeetingMinutes,
				RelatedID: &meeting.ID,
			})
			if !results[i].Success {
				s.Logger.Warn("⚠️ Failed to send minutes",
					zap.String("recipient", a.Email),
					zap.String("error", results[i].Error),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
