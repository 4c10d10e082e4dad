package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(signup{Email: "nope", Password: "short"})
	require.Error(t, err)

	msg := Message(err)
	assert.Contains(t, msg, "email must be a valid email")
	assert.Contains(t, msg, "password must have at least 8")
}

func TestEmail(t *testing.T) {
	v := New()

	assert.True(t, v.Email("bob@example.com"))
	assert.False(t, v.Email(""))
	assert.False(t, v.Email("bob@"))
}
