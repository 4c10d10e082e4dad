package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Minute, "")
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "ada@example.com", "Ada")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret", time.Minute, "").GenerateAccessToken(uuid.New(), "a@b.c", "")
	require.NoError(t, err)

	_, err = NewManager("other", time.Minute, "").ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", -time.Minute, "")
	token, err := m.GenerateAccessToken(uuid.New(), "a@b.c", "")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsForeignIssuer(t *testing.T) {
	token, err := NewManager("secret", time.Minute, "someone-else").GenerateAccessToken(uuid.New(), "a@b.c", "")
	require.NoError(t, err)

	_, err = NewManager("secret", time.Minute, "").ValidateAccessToken(token)
	assert.Error(t, err)
}
