package meetingflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/cache"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/internal/usecase/minutes"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
	"github.com/jarvis-assistant/assistant/pkg/config"
	"github.com/jarvis-assistant/assistant/pkg/metrics"
)

// Service drives the per-user meeting wizard
type Service interface {
	Start(ctx context.Context, owner uuid.UUID, names []string) (*StartResult, error)
	AddEmail(ctx context.Context, owner uuid.UUID, name, email string) (*AddEmailResult, error)
	AddNote(ctx context.Context, owner uuid.UUID, text string) (*AddNoteResult, error)
	EndNotes(ctx context.Context, owner uuid.UUID) (*EndNotesResult, error)
	ConfirmSummary(ctx context.Context, owner uuid.UUID, approved bool) (*ConfirmResult, error)
	ReopenNotes(ctx context.Context, owner uuid.UUID) (*ReopenResult, error)
	SendEmails(ctx context.Context, owner uuid.UUID, meetingID *uuid.UUID) (*SendResult, error)
	Status(ctx context.Context, owner uuid.UUID) (*StatusResult, error)
}

// Locker serializes mutations of one owner's flow
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (cache.ReleaseFunc, error)
}

// MinutesGenerator turns notes into minutes
type MinutesGenerator interface {
	GenerateMinutes(ctx context.Context, owner uuid.UUID, title, attendees, notes string) minutes.Result
}

// Dispatcher delivers a single email
type Dispatcher interface {
	Send(ctx context.Context, msg notification.Message) notification.Result
}

// MinutesArchive stores a copy of approved minutes
type MinutesArchive interface {
	ArchiveMinutes(ctx context.Context, owner, meetingID uuid.UUID, minutes string) error
}

// EmailChecker validates email syntax
type EmailChecker interface {
	Email(s string) bool
}

// Deps are the collaborators of FlowService. Archive and Metrics may be nil.
type Deps struct {
	Contacts   repositories.ContactRepository
	Flows      repositories.MeetingFlowRepository
	Meetings   repositories.MeetingRepository
	UnitOfWork repositories.UnitOfWork
	Locker     Locker
	Generator  MinutesGenerator
	Dispatcher Dispatcher
	Archive    MinutesArchive
	Emails     EmailChecker
	Metrics    *metrics.FlowMetrics
	Logger     *zap.Logger
}

// FlowService implements Service
type FlowService struct {
	Deps
	cfg config.FlowConfig
	now func() time.Time
}

// NewFlowService creates a new meeting flow service
func NewFlowService(deps Deps, cfg config.FlowConfig) *FlowService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.DispatchConcurrency < 1 {
		cfg.DispatchConcurrency = 1
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 2 * time.Minute
	}
	return &FlowService{Deps: deps, cfg: cfg, now: time.Now}
}

func lockKey(owner uuid.UUID) string {
	return "flow:lock:" + owner.String()
}

// locked runs fn while holding the owner's flow lock
func (s *FlowService) locked(ctx context.Context, owner uuid.UUID, fn func(ctx context.Context) error) error {
	release, err := s.Locker.Acquire(ctx, lockKey(owner), s.cfg.LockTTL)
	if err != nil {
		if errors.Is(err, cache.ErrLockNotAcquired) {
			return ucErrors.ErrFlowBusy
		}
		return fmt.Errorf("failed to lock meeting flow: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.Logger.Warn("⚠️ Failed to release flow lock",
				zap.String("owner_id", owner.String()),
				zap.Error(err),
			)
		}
	}()

	return fn(ctx)
}

// activeFlow loads the owner's flow and checks it is in state expected
func (s *FlowService) activeFlow(ctx context.Context, owner uuid.UUID, op string, expected entities.FlowState) (*entities.MeetingFlow, error) {
	flow, err := s.Flows.GetActive(ctx, owner)
	if err != nil {
		if errors.Is(err, entities.ErrFlowNotFound) {
			return nil, ucErrors.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to load meeting flow: %w", err)
	}
	if flow.State != expected {
		return nil, &ucErrors.StateError{
			Operation: op,
			Current:   string(flow.State),
			Expected:  string(expected),
		}
	}
	return flow, nil
}

func (s *FlowService) update(ctx context.Context, flows repositories.MeetingFlowRepository, flow *entities.MeetingFlow, patch repositories.FlowPatch) error {
	if err := flows.Update(ctx, flow.ID, flow.Version, patch); err != nil {
		if errors.Is(err, entities.ErrFlowVersionStale) {
			return ucErrors.ErrStaleFlow
		}
		return fmt.Errorf("failed to update meeting flow: %w", err)
	}
	return nil
}

func (s *FlowService) transitioned(op string, owner uuid.UUID, state entities.FlowState) {
	s.Metrics.Transition(op, string(state))
	s.Logger.Info("🔁 Meeting flow transition",
		zap.String("operation", op),
		zap.String("owner_id", owner.String()),
		zap.String("state", string(state)),
	)
}

func statePtr(s entities.FlowState) *entities.FlowState {
	return &s
}

// Start resolves names against the contact directory and opens a flow
func (s *FlowService) Start(ctx context.Context, owner uuid.UUID, names []string) (*StartResult, error) {
	names = normalizeNames(names)
	if len(names) == 0 {
		return nil, ucErrors.Invalid("at least one attendee name is required")
	}

	var out *StartResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		_, err := s.Flows.GetActive(ctx, owner)
		switch {
		case err == nil:
			return ucErrors.ErrFlowConflict
		case !errors.Is(err, entities.ErrFlowNotFound):
			return fmt.Errorf("failed to load meeting flow: %w", err)
		}

		attendees := entities.AttendeesPayload{
			Resolved:   []entities.Attendee{},
			Unresolved: []string{},
		}
		for _, name := range names {
			contact, err := s.Contacts.FindByName(ctx, owner, name)
			if err != nil {
				if errors.Is(err, entities.ErrContactNotFound) {
					attendees.Unresolved = append(attendees.Unresolved, name)
					continue
				}
				return fmt.Errorf("failed to look up contact %q: %w", name, err)
			}
			attendees.Resolved = append(attendees.Resolved, entities.Attendee{Name: contact.Name, Email: contact.Email})
		}

		flow, err := entities.NewMeetingFlow(owner, attendees)
		if err != nil {
			return err
		}
		if err := s.Flows.Create(ctx, flow); err != nil {
			if errors.Is(err, entities.ErrFlowAlreadyActive) {
				return ucErrors.ErrFlowConflict
			}
			return fmt.Errorf("failed to create meeting flow: %w", err)
		}

		s.transitioned("start", owner, flow.State)
		out = &StartResult{
			FlowID:     flow.ID,
			State:      flow.State,
			Resolved:   attendees.Resolved,
			Unresolved: attendees.Unresolved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddEmail records an attendee's email and saves it as a contact
func (s *FlowService) AddEmail(ctx context.Context, owner uuid.UUID, name, email string) (*AddEmailResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ucErrors.Invalid("attendee name is required")
	}
	if !s.Emails.Email(email) {
		return nil, ucErrors.Invalid("invalid email address: %q", email)
	}

	var out *AddEmailResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "add email", entities.FlowStateCollectingEmails)
		if err != nil {
			return err
		}
		current, err := flow.Attendees()
		if err != nil {
			return err
		}

		return s.UnitOfWork.Do(ctx, func(ctx context.Context, tx repositories.TxRepositories) error {
			contact, err := tx.Contacts.Upsert(ctx, owner, name, email)
			if err != nil {
				return fmt.Errorf("failed to save contact: %w", err)
			}

			next := withEmail(current, name, contact.Email)
			state := entities.FlowStateCollectingEmails
			if len(next.Unresolved) == 0 {
				state = entities.FlowStateCollectingNotes
			}

			err = s.update(ctx, tx.Flows, flow, repositories.FlowPatch{
				State:     statePtr(state),
				Attendees: &next,
			})
			if err != nil {
				return err
			}

			s.transitioned("add_email", owner, state)
			out = &AddEmailResult{State: state, Resolved: next.Resolved, Unresolved: next.Unresolved}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddNote appends a timestamped note
func (s *FlowService) AddNote(ctx context.Context, owner uuid.UUID, text string) (*AddNoteResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ucErrors.Invalid("note text is required")
	}

	var out *AddNoteResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "add note", entities.FlowStateCollectingNotes)
		if err != nil {
			return err
		}
		notes, err := flow.Notes()
		if err != nil {
			return err
		}
		notes = append(notes, entities.Note{Text: text, Timestamp: s.now().UTC()})

		if err := s.update(ctx, s.Flows, flow, repositories.FlowPatch{Notes: notes, SetNotes: true}); err != nil {
			return err
		}

		s.transitioned("add_note", owner, flow.State)
		out = &AddNoteResult{State: flow.State, NoteCount: len(notes)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EndNotes renders the bullet summary and waits for confirmation
func (s *FlowService) EndNotes(ctx context.Context, owner uuid.UUID) (*EndNotesResult, error) {
	var out *EndNotesResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "end notes", entities.FlowStateCollectingNotes)
		if err != nil {
			return err
		}
		notes, err := flow.Notes()
		if err != nil {
			return err
		}

		summary := entities.SummaryPayload{SummaryText: RenderSummary(notes)}
		err = s.update(ctx, s.Flows, flow, repositories.FlowPatch{
			State:   statePtr(entities.FlowStateConfirmingSummary),
			Summary: &summary,
		})
		if err != nil {
			return err
		}

		s.transitioned("end_notes", owner, entities.FlowStateConfirmingSummary)
		out = &EndNotesResult{State: entities.FlowStateConfirmingSummary, Summary: summary.SummaryText}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmSummary creates the meeting and its minutes when approved.
// A rejection leaves the flow untouched.
func (s *FlowService) ConfirmSummary(ctx context.Context, owner uuid.UUID, approved bool) (*ConfirmResult, error) {
	var out *ConfirmResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "confirm summary", entities.FlowStateConfirmingSummary)
		if err != nil {
			return err
		}
		if !approved {
			out = &ConfirmResult{Approved: false, State: flow.State}
			return nil
		}

		attendees, err := flow.Attendees()
		if err != nil {
			return err
		}
		notes, err := flow.Notes()
		if err != nil {
			return err
		}

		now := s.now()
		title := MeetingTitle(now)
		attendeeNames := strings.Join(attendees.Names(), ", ")
		notesText := NotesText(notes)

		gen := s.Generator.GenerateMinutes(ctx, owner, title, attendeeNames, notesText)
		if !gen.Success && s.cfg.AbortOnSummaryFailure {
			return fmt.Errorf("%w: %s", ucErrors.ErrSummaryFailed, gen.Error)
		}

		meeting := entities.NewMeeting(owner, title, attendeeNames, notesText)
		err = s.UnitOfWork.Do(ctx, func(ctx context.Context, tx repositories.TxRepositories) error {
			if err := tx.Meetings.Create(ctx, meeting); err != nil {
				return fmt.Errorf("failed to create meeting: %w", err)
			}
			if err := tx.Meetings.Complete(ctx, owner, meeting.ID, gen.Text, now); err != nil {
				return fmt.Errorf("failed to store minutes: %w", err)
			}
			return s.update(ctx, tx.Flows, flow, repositories.FlowPatch{
				State:     statePtr(entities.FlowStateSendingEmails),
				MeetingID: &meeting.ID,
			})
		})
		if err != nil {
			return err
		}

		s.transitioned("confirm_summary", owner, entities.FlowStateSendingEmails)
		s.archive(ctx, owner, meeting.ID, gen.Text)

		out = &ConfirmResult{
			Approved:         true,
			State:            entities.FlowStateSendingEmails,
			MeetingID:        meeting.ID,
			Title:            title,
			Minutes:          gen.Text,
			MinutesGenerated: gen.Success,
			MinutesError:     gen.Error,
			Attendees:        attendees.Resolved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// archive stores a copy of the minutes; failures are only logged
func (s *FlowService) archive(ctx context.Context, owner, meetingID uuid.UUID, text string) {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.ArchiveMinutes(ctx, owner, meetingID, text); err != nil {
		s.Logger.Warn("⚠️ Failed to archive minutes",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err),
		)
	}
}

// ReopenNotes returns from summary confirmation to note taking.
// Notes are kept and the pending summary is discarded.
func (s *FlowService) ReopenNotes(ctx context.Context, owner uuid.UUID) (*ReopenResult, error) {
	var out *ReopenResult
	err := s.locked(ctx, owner, func(ctx context.Context) error {
		flow, err := s.activeFlow(ctx, owner, "reopen notes", entities.FlowStateConfirmingSummary)
		if err != nil {
			return err
		}
		notes, err := flow.Notes()
		if err != nil {
			return err
		}

		err = s.update(ctx, s.Flows, flow, repositories.FlowPatch{
			State:        statePtr(entities.FlowStateCollectingNotes),
			ClearSummary: true,
		})
		if err != nil {
			return err
		}

		s.transitioned("reopen_notes", owner, entities.FlowStateCollectingNotes)
		out = &ReopenResult{State: entities.FlowStateCollectingNotes, NoteCount: len(notes)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Status reports the active flow, or state none when there is none
func (s *FlowService) Status(ctx context.Context, owner uuid.UUID) (*StatusResult, error) {
	flow, err := s.Flows.GetActive(ctx, owner)
	if err != nil {
		if errors.Is(err, entities.ErrFlowNotFound) {
			return &StatusResult{State: entities.FlowStateNone}, nil
		}
		return nil, fmt.Errorf("failed to load meeting flow: %w", err)
	}

	attendees, err := flow.Attendees()
	if err != nil {
		return nil, err
	}
	notes, err := flow.Notes()
	if err != nil {
		return nil, err
	}
	summary, err := flow.Summary()
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		State:      flow.State,
		FlowID:     &flow.ID,
		MeetingID:  flow.MeetingID,
		Resolved:   attendees.Resolved,
		Unresolved: attendees.Unresolved,
		NoteCount:  len(notes),
		Summary:    summary.SummaryText,
		CreatedAt:  &flow.CreatedAt,
		UpdatedAt:  &flow.UpdatedAt,
	}, nil
}
