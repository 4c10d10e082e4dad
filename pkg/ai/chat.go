package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jarvis-assistant/assistant/pkg/config"
	"github.com/jarvis-assistant/assistant/pkg/retry"
)

// ChatClient calls an OpenAI-compatible chat completion endpoint
type ChatClient struct {
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	policy      retry.Policy
	client      *http.Client
}

// NewChatClient creates a chat client using values from the provided config
func NewChatClient(cfg config.LLMConfig) *ChatClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	policy := retry.DefaultPolicy()
	policy.MaxRetries = cfg.MaxRetries
	if cfg.RetryDelay > 0 {
		policy.InitialInterval = cfg.RetryDelay
	}

	return &ChatClient{
		baseURL:     base,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		policy:      policy,
		client:      &http.Client{Timeout: timeout},
	}
}

// Message is a single chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a single user prompt and returns the assistant content.
// Transient failures are retried according to the client's policy.
func (c *ChatClient) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("llm api key not configured")
	}

	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	var content string
	err = retry.Do(ctx, c.policy, func(ctx context.Context) error {
		out, err := c.do(ctx, apiKey, b)
		if err != nil {
			return err
		}
		content = out
		return nil
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

func (c *ChatClient) do(ctx context.Context, apiKey string, body []byte) (string, error) {
	endpoint := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", retry.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &retry.StatusError{Service: "llm", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", retry.Permanent(fmt.Errorf("failed to decode llm response: %w", err))
	}
	if cr.Error != nil {
		return "", retry.Permanent(fmt.Errorf("llm error: %s", cr.Error.Message))
	}
	if len(cr.Choices) == 0 {
		return "", retry.Permanent(fmt.Errorf("empty response from llm"))
	}
	return cr.Choices[0].Message.Content, nil
}
