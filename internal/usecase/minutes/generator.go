package minutes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/pkg/metrics"
)

// Completer sends a prompt to a chat model
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// KeyResolver picks the LLM API key for an owner
type KeyResolver interface {
	LLMKey(ctx context.Context, owner uuid.UUID) (string, error)
}

// Result is the outcome of one generation. On failure Text holds a
// human-readable diagnostic and Error the cause.
type Result struct {
	Text    string
	Success bool
	Error   string
}

// Generator turns meeting notes into formal minutes
type Generator struct {
	llm     Completer
	keys    KeyResolver
	metrics *metrics.FlowMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewGenerator creates a new minutes generator
func NewGenerator(llm Completer, keys KeyResolver, m *metrics.FlowMetrics, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{llm: llm, keys: keys, metrics: m, logger: logger, now: time.Now}
}

// GenerateMinutes never returns an error; failures are described in the result
func (g *Generator) GenerateMinutes(ctx context.Context, owner uuid.UUID, title, attendees, notes string) Result {
	start := time.Now()
	res := g.generate(ctx, owner, title, attendees, notes)
	g.metrics.Minutes(res.Success, time.Since(start))

	if !res.Success {
		g.logger.Error("❌ Minutes generation failed",
			zap.String("owner_id", owner.String()),
			zap.String("title", title),
			zap.String("error", res.Error),
		)
	}
	return res
}

func (g *Generator) generate(ctx context.Context, owner uuid.UUID, title, attendees, notes string) Result {
	key, err := g.keys.LLMKey(ctx, owner)
	if err != nil {
		return failure(fmt.Errorf("failed to resolve llm api key: %w", err))
	}
	if key == "" {
		return failure(fmt.Errorf("llm api key not configured"))
	}

	text, err := g.llm.Complete(ctx, key, BuildPrompt(title, attendees, notes, g.now()))
	if err != nil {
		return failure(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return failure(fmt.Errorf("llm returned empty minutes"))
	}
	return Result{Text: text, Success: true}
}

func failure(err error) Result {
	return Result{
		Text:  "Failed to generate minutes: " + err.Error(),
		Error: err.Error(),
	}
}

// BuildPrompt renders the minutes request sent to the model
func BuildPrompt(title, attendees, notes string, date time.Time) string {
	var b strings.Builder
	b.WriteString("Generate professional Meeting Minutes (MoM) from the following:\n\n")
	fmt.Fprintf(&b, "Meeting Title: %s\n", title)
	fmt.Fprintf(&b, "Date: %s\n", date.Format("January 02, 2006"))
	fmt.Fprintf(&b, "Attendees: %s\n", attendees)
	fmt.Fprintf(&b, "Notes:\n%s\n\n", notes)
	b.WriteString("Format:\n")
	b.WriteString("Subject: [Meeting Title]\n")
	b.WriteString("Date: [Meeting Date]\n")
	b.WriteString("Attendees: [List of attendees]\n\n")
	b.WriteString("Meeting Summary:\n• [Key point]\n\n")
	b.WriteString("Action Items:\n• [Action item]\n\n")
	b.WriteString("Powered by: Jarvis AI Assistant\n")
	return b.String()
}
