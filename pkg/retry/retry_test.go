package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(retries uint64) Policy {
	return Policy{MaxRetries: retries, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("llm returned status 503")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++
		return fmt.Errorf("llm returned status 401")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "401")
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(2), func(context.Context) error {
		calls++
		return fmt.Errorf("connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_RecoversPanic(t *testing.T) {
	err := Do(context.Background(), fastPolicy(3), func(context.Context) error {
		panic("boom")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: boom")
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastPolicy(3), func(context.Context) error {
		calls++
		return nil
	})

	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("llm returned status 429"), true},
		{errors.New("llm returned status 502"), true},
		{context.DeadlineExceeded, true},
		{context.Canceled, false},
		{errors.New("llm returned status 400"), false},
		{Permanent(errors.New("service unavailable")), false},
		{&StatusError{Service: "llm", StatusCode: 503}, true},
		{&StatusError{Service: "llm", StatusCode: 429}, true},
		{&StatusError{Service: "llm", StatusCode: 408}, true},
		{fmt.Errorf("draft: %w", &StatusError{Service: "llm", StatusCode: 500}), true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRetryableError(tc.err), "%v", tc.err)
	}
}

func TestIsRetryableError_StatusCodeWinsOverBodyText(t *testing.T) {
	bodies := []string{
		`{"error":"invalid model, try again with another"}`,
		`{"error":"unexpected EOF in request body"}`,
		`{"error":"rate limit settings are invalid"}`,
	}
	for _, body := range bodies {
		for _, code := range []int{400, 401, 403, 404, 422} {
			err := &StatusError{Service: "llm", StatusCode: code, Body: body}
			assert.False(t, IsRetryableError(err), "%d %s", code, body)
		}
	}
}

func TestDo_StopsOnClientStatusWithTransientLookingBody(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), func(context.Context) error {
		calls++
		return &StatusError{Service: "llm", StatusCode: 400, Body: "please try again"}
	})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, 1, calls)
}
