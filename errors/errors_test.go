package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorIncludesCodeAndCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := ErrSummaryFailed(cause)

	assert.Equal(t, http.StatusBadGateway, err.HTTPCode)
	assert.Equal(t, "[SUMMARY_FAILED] Failed to generate meeting minutes: connection refused", err.Error())
	assert.True(t, stdErrors.Is(err, cause))
}

func TestAppError_WithDetailDoesNotMutateOriginal(t *testing.T) {
	base := ErrMeetingNotFound("m-1")
	extended := base.WithDetail("owner", "u-1")

	assert.Len(t, base.Details, 1)
	assert.Len(t, extended.Details, 2)
	assert.Equal(t, "m-1", extended.Details["meeting_id"])
}

func TestErrFlowInvalidState_Details(t *testing.T) {
	err := ErrFlowInvalidState("add_email", "collecting_notes", "collecting_emails")

	require.Equal(t, http.StatusConflict, err.HTTPCode)
	assert.Equal(t, "collecting_notes", err.Details["current_state"])
	assert.Equal(t, "collecting_emails", err.Details["expected_state"])
	assert.Equal(t, "add_email", err.Details["operation"])
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "FLOW_CONFLICT", ErrorCode_FLOW_CONFLICT.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())
}

func TestAppError_AsThroughWrapping(t *testing.T) {
	wrapped := wrap(ErrFlowConflict())

	var appErr AppError
	require.True(t, stdErrors.As(wrapped, &appErr))
	assert.Equal(t, ErrorCode_FLOW_CONFLICT, appErr.Code)
}

type wrapper struct{ err error }

func (w wrapper) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapper) Unwrap() error { return w.err }

func wrap(err error) error { return wrapper{err: err} }
