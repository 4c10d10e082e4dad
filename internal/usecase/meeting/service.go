package meeting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/storage"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	minutesURLExpiry = 15 * time.Minute
)

// MinutesLinker presigns download links for archived minutes
type MinutesLinker interface {
	MinutesURL(ctx context.Context, owner, meetingID uuid.UUID, expiry time.Duration) (string, error)
}

// Service reads the meeting history
type Service struct {
	meetings repositories.MeetingRepository
	archive  MinutesLinker
}

// NewService creates a new meeting service. archive may be nil when
// object storage is disabled.
func NewService(meetings repositories.MeetingRepository, archive MinutesLinker) *Service {
	return &Service{meetings: meetings, archive: archive}
}

// List returns the owner's meetings newest first
func (s *Service) List(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.Meeting, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.meetings.ListByOwner(ctx, owner, limit)
}

// Get returns one of the owner's meetings
func (s *Service) Get(ctx context.Context, owner, id uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetings.FindByID(ctx, owner, id)
	if errors.Is(err, entities.ErrMeetingNotFound) {
		return nil, ucErrors.ErrMeetingNotFound
	}
	return m, err
}

// MinutesURL returns a short-lived link to the archived minutes
func (s *Service) MinutesURL(ctx context.Context, owner, id uuid.UUID) (string, time.Time, error) {
	if s.archive == nil {
		return "", time.Time{}, ucErrors.ErrArchiveDisabled
	}
	if _, err := s.Get(ctx, owner, id); err != nil {
		return "", time.Time{}, err
	}

	url, err := s.archive.MinutesURL(ctx, owner, id, minutesURLExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", time.Time{}, ucErrors.ErrMinutesNotFound
		}
		return "", time.Time{}, err
	}
	return url, time.Now().Add(minutesURLExpiry), nil
}
