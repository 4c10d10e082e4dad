package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/storage"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

type memMeetings struct {
	items     []*entities.Meeting
	lastLimit int
}

func (m *memMeetings) Create(context.Context, *entities.Meeting) error { return nil }

func (m *memMeetings) Complete(context.Context, uuid.UUID, uuid.UUID, string, time.Time) error {
	return nil
}

func (m *memMeetings) FindByID(_ context.Context, owner, id uuid.UUID) (*entities.Meeting, error) {
	for _, it := range m.items {
		if it.ID == id && it.OwnerUserID == owner {
			return it, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (m *memMeetings) ListByOwner(_ context.Context, owner uuid.UUID, limit int) ([]*entities.Meeting, error) {
	m.lastLimit = limit
	var out []*entities.Meeting
	for _, it := range m.items {
		if it.OwnerUserID == owner {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeLinker struct {
	url string
	err error
}

func (f fakeLinker) MinutesURL(context.Context, uuid.UUID, uuid.UUID, time.Duration) (string, error) {
	return f.url, f.err
}

func TestList_ClampsLimit(t *testing.T) {
	repo := &memMeetings{}
	svc := NewService(repo, nil)
	owner := uuid.New()

	_, err := svc.List(context.Background(), owner, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, repo.lastLimit)

	_, err = svc.List(context.Background(), owner, 5000)
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, repo.lastLimit)
}

func TestGet_OtherOwnerIsNotFound(t *testing.T) {
	owner := uuid.New()
	m := entities.NewMeeting(owner, "Meeting - x", "Alice", "n")
	svc := NewService(&memMeetings{items: []*entities.Meeting{m}}, nil)

	got, err := svc.Get(context.Background(), owner, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New(), m.ID)
	require.ErrorIs(t, err, ucErrors.ErrMeetingNotFound)
}

func TestMinutesURL(t *testing.T) {
	owner := uuid.New()
	m := entities.NewMeeting(owner, "Meeting - x", "Alice", "n")
	repo := &memMeetings{items: []*entities.Meeting{m}}
	ctx := context.Background()

	_, _, err := NewService(repo, nil).MinutesURL(ctx, owner, m.ID)
	require.ErrorIs(t, err, ucErrors.ErrArchiveDisabled)

	_, _, err = NewService(repo, fakeLinker{err: storage.ErrObjectNotFound}).MinutesURL(ctx, owner, m.ID)
	require.ErrorIs(t, err, ucErrors.ErrMinutesNotFound)

	_, _, err = NewService(repo, fakeLinker{url: "u"}).MinutesURL(ctx, owner, uuid.New())
	require.ErrorIs(t, err, ucErrors.ErrMeetingNotFound)

	url, expires, err := NewService(repo, fakeLinker{url: "https://minio/x"}).MinutesURL(ctx, owner, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://minio/x", url)
	assert.True(t, expires.After(time.Now()))
}
