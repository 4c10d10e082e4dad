package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/pkg/jwt"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*entities.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return entities.ErrUserAlreadyExists
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[entities.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (m *memUsers) UpdateLastLogin(context.Context, uuid.UUID) error { return nil }

func newTestService() (*PasswordService, *jwt.Manager) {
	manager := jwt.NewManager("secret", time.Minute, "")
	svc := NewPasswordService(newMemUsers(), manager)
	svc.cost = bcrypt.MinCost
	return svc, manager
}

func TestRegisterThenLogin(t *testing.T) {
	svc, manager := newTestService()
	ctx := context.Background()

	out, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: " Ada@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.NotEqual(t, "correct horse", out.User.PasswordHash)
	assert.Equal(t, int64(60), out.ExpiresIn)

	claims, err := manager.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)

	login, err := svc.Login(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, login.User.ID)
	assert.NotNil(t, login.User.LastLoginAt)
}

func TestRegister_Rejections(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Name: "", Email: "ada@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "long enough"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "long enough"})
	assert.ErrorIs(t, err, ucErrors.ErrEmailAlreadyUsed)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "long enough"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong password")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "long enough")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	out, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "long enough"})
	require.NoError(t, err)

	user, err := svc.Me(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ucErrors.ErrUserNotFound)
}
