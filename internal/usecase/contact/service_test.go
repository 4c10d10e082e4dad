package contact

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/pkg/validator"
)

type recordingContacts struct {
	upserts []*entities.Contact
}

func (r *recordingContacts) Upsert(_ context.Context, owner uuid.UUID, name, email string) (*entities.Contact, error) {
	c := entities.NewContact(owner, name, email)
	r.upserts = append(r.upserts, c)
	return c, nil
}

func (r *recordingContacts) FindByName(context.Context, uuid.UUID, string) (*entities.Contact, error) {
	return nil, entities.ErrContactNotFound
}

func (r *recordingContacts) ListAll(context.Context, uuid.UUID) ([]*entities.Contact, error) {
	return r.upserts, nil
}

func TestSave_NormalizesAndStores(t *testing.T) {
	repo := &recordingContacts{}
	svc := NewService(repo, validator.New())

	c, err := svc.Save(context.Background(), uuid.New(), "  Bob ", "Bob@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "bob@example.com", c.Email)
	assert.Len(t, repo.upserts, 1)
}

func TestSave_RejectsInvalid(t *testing.T) {
	repo := &recordingContacts{}
	svc := NewService(repo, validator.New())

	_, err := svc.Save(context.Background(), uuid.New(), "Bob", "not-an-email")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)
	assert.ErrorIs(t, err, ucErrors.ErrInvalidContact)

	_, err = svc.Save(context.Background(), uuid.New(), "  ", "bob@example.com")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)

	assert.Empty(t, repo.upserts)
}
