package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

// Completer sends a prompt to a chat model
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// KeyResolver picks the LLM API key for an owner
type KeyResolver interface {
	LLMKey(ctx context.Context, owner uuid.UUID) (string, error)
}

// DraftRequest describes the email to write
type DraftRequest struct {
	Recipient string
	Context   string
	Category  entities.EmailCategory
}

// Draft is a model-written email awaiting review
type Draft struct {
	Subject string
	Body    string
}

// Drafter asks the chat model to write emails
type Drafter struct {
	llm    Completer
	keys   KeyResolver
	logger *zap.Logger
}

// NewDrafter creates a new email drafter
func NewDrafter(llm Completer, keys KeyResolver, logger *zap.Logger) *Drafter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drafter{llm: llm, keys: keys, logger: logger}
}

// Draft writes an email for req. Nothing is sent.
func (d *Drafter) Draft(ctx context.Context, owner uuid.UUID, req DraftRequest) (*Draft, error) {
	recipient := strings.TrimSpace(req.Recipient)
	brief := strings.TrimSpace(req.Context)
	if recipient == "" || brief == "" {
		return nil, ucErrors.Invalid("recipient and context are required")
	}

	key, err := d.keys.LLMKey(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve llm api key: %w", err)
	}
	if key == "" {
		return nil, ucErrors.Invalid("llm api key not configured; add one in settings")
	}

	text, err := d.llm.Complete(ctx, key, DraftPrompt(recipient, brief, req.Category))
	if err != nil {
		d.logger.Error("❌ Email draft failed", zap.String("owner_id", owner.String()), zap.Error(err))
		return nil, ucErrors.External("llm", err)
	}

	draft := ParseDraft(text)
	if draft.Subject == "" && draft.Body == "" {
		return nil, ucErrors.External("llm", fmt.Errorf("model returned no subject or body"))
	}
	return draft, nil
}

// DraftPrompt renders the drafting request sent to the model
func DraftPrompt(recipient, brief string, category entities.EmailCategory) string {
	var b strings.Builder
	if category == entities.EmailCategoryTaskAssignment {
		b.WriteString("Draft a professional email for task assignment:\n\n")
	} else {
		b.WriteString("Draft a professional email:\n\n")
	}
	fmt.Fprintf(&b, "Recipient: %s\n", recipient)
	fmt.Fprintf(&b, "Context: %s\n\n", brief)
	if category == entities.EmailCategoryTaskAssignment {
		b.WriteString("Create a professional email with:\n")
		b.WriteString("- Clear subject line\n")
		b.WriteString("- Professional greeting\n")
		b.WriteString("- Task description and requirements\n")
		b.WriteString("- Deadline if mentioned\n")
		b.WriteString("- Professional closing\n\n")
	} else {
		b.WriteString("Create a well-structured email with appropriate subject and body.\n\n")
	}
	b.WriteString("Format as:\n")
	b.WriteString("Subject: [subject]\n")
	b.WriteString("Body: [email body]\n")
	return b.String()
}

// ParseDraft reads the "Subject:" line and everything after "Body:".
// Text after "Body:" on the same line is kept.
func ParseDraft(text string) *Draft {
	draft := &Draft{}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case draft.Subject == "" && strings.HasPrefix(trimmed, "Subject:"):
			draft.Subject = strings.TrimSpace(strings.TrimPrefix(trimmed, "Subject:"))
		case strings.HasPrefix(trimmed, "Body:"):
			rest := []string{strings.TrimPrefix(trimmed, "Body:")}
			rest = append(rest, lines[i+1:]...)
			draft.Body = strings.TrimSpace(strings.Join(rest, "\n"))
			return draft
		}
	}
	return draft
}
