package settings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/pkg/config"
)

type memSettings map[uuid.UUID]*entities.UserSettings

func (m memSettings) Get(_ context.Context, owner uuid.UUID) (*entities.UserSettings, error) {
	if s, ok := m[owner]; ok {
		return s, nil
	}
	return nil, entities.ErrSettingsNotFound
}

func (m memSettings) Save(_ context.Context, owner uuid.UUID, patch entities.SettingsPatch) (*entities.UserSettings, error) {
	s, ok := m[owner]
	if !ok {
		s = &entities.UserSettings{OwnerUserID: owner}
		m[owner] = s
	}
	patch.Apply(s)
	return s, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newService(repo memSettings) *Service {
	return NewService(repo,
		config.SMTPConfig{Host: "relay.local", Port: 587, User: "server", Password: "pw", From: "noreply@local", Timeout: time.Second},
		config.LLMConfig{APIKey: "server-key"},
	)
}

func TestSMTP_FallsBackToServerDefaults(t *testing.T) {
	svc := newService(memSettings{})

	s, err := svc.SMTP(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "relay.local", s.Host)
	assert.Equal(t, "noreply@local", s.From)
}

func TestSMTP_UsesCompleteUserSettings(t *testing.T) {
	owner := uuid.New()
	svc := newService(memSettings{})

	_, err := svc.Update(context.Background(), owner, entities.SettingsPatch{
		SMTPHost: strPtr("smtp.gmail.com"),
		SMTPPort: intPtr(587),
		SMTPUser: strPtr("me@gmail.com"),
		SMTPPass: strPtr("app-password"),
	})
	require.NoError(t, err)

	s, err := svc.SMTP(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "smtp.gmail.com", s.Host)
	assert.Equal(t, "me@gmail.com", s.From)
	assert.Equal(t, time.Second, s.Timeout)
}

func TestSMTP_IncompleteUserSettingsIgnored(t *testing.T) {
	owner := uuid.New()
	svc := newService(memSettings{owner: {OwnerUserID: owner, SMTPHost: "smtp.gmail.com"}})

	s, err := svc.SMTP(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "relay.local", s.Host)
}

func TestLLMKey(t *testing.T) {
	owner := uuid.New()
	svc := newService(memSettings{})

	key, err := svc.LLMKey(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "server-key", key)

	_, err = svc.Update(context.Background(), owner, entities.SettingsPatch{LLMAPIKey: strPtr("user-key")})
	require.NoError(t, err)

	key, err = svc.LLMKey(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "user-key", key)
}

func TestUpdate_Validation(t *testing.T) {
	svc := newService(memSettings{})

	_, err := svc.Update(context.Background(), uuid.New(), entities.SettingsPatch{})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)

	_, err = svc.Update(context.Background(), uuid.New(), entities.SettingsPatch{SMTPPort: intPtr(70000)})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)
}
