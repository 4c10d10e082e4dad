package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvis-assistant/assistant/pkg/config"
	"github.com/jarvis-assistant/assistant/pkg/retry"
)

func testConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		BaseURL:     url,
		Model:       "gpt-3.5-turbo",
		Timeout:     time.Second,
		MaxRetries:  2,
		RetryDelay:  time.Millisecond,
		MaxTokens:   800,
		Temperature: 0.3,
	}
}

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer user-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 800, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "summarize", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"MoM text"}}]}`))
	}))
	defer ts.Close()

	out, err := NewChatClient(testConfig(ts.URL)).Complete(context.Background(), "user-key", "summarize")
	require.NoError(t, err)
	assert.Equal(t, "MoM text", out)
}

func TestComplete_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer ts.Close()

	out, err := NewChatClient(testConfig(ts.URL)).Complete(context.Background(), "k", "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestComplete_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer ts.Close()

	_, err := NewChatClient(testConfig(ts.URL)).Complete(context.Background(), "k", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComplete_DoesNotRetryBadRequestWithTransientWording(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"context too long, shorten it and try again"}}`))
	}))
	defer ts.Close()

	_, err := NewChatClient(testConfig(ts.URL)).Complete(context.Background(), "k", "p")
	var statusErr *retry.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	_, err := NewChatClient(testConfig(ts.URL)).Complete(context.Background(), "k", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestComplete_MissingKey(t *testing.T) {
	_, err := NewChatClient(testConfig("http://unused")).Complete(context.Background(), "", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key not configured")
}
