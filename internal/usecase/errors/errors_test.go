package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateError(t *testing.T) {
	err := fmt.Errorf("add note: %w", &StateError{Operation: "add_note", Current: "collecting_emails", Expected: "collecting_notes"})

	assert.True(t, errors.Is(err, ErrInvalidFlowState))

	var stateErr *StateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, "collecting_emails", stateErr.Current)
	assert.Contains(t, err.Error(), "expected collecting_notes")
}

func TestInputError(t *testing.T) {
	err := Invalid("note text is %s", "blank")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "note text is blank", err.Error())
}

func TestInvalidContact(t *testing.T) {
	err := fmt.Errorf("save: %w", InvalidContact("invalid email address: %q", "x"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, ErrInvalidContact))
	assert.False(t, errors.Is(Invalid("x"), ErrInvalidContact))
}

func TestExternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("draft: %w", External("llm", cause))

	assert.True(t, errors.Is(err, ErrExternalService))
	assert.True(t, errors.Is(err, cause))

	var extErr *ExternalError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "llm", extErr.Service)
	assert.Equal(t, "draft: llm: connection refused", err.Error())
}
