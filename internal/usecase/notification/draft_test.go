package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

type fakeLLM struct {
	reply  string
	err    error
	key    string
	prompt string
}

func (f *fakeLLM) Complete(_ context.Context, apiKey, prompt string) (string, error) {
	f.key, f.prompt = apiKey, prompt
	return f.reply, f.err
}

type fixedKey string

func (k fixedKey) LLMKey(context.Context, uuid.UUID) (string, error) { return string(k), nil }

func TestDraft_ParsesSubjectAndBody(t *testing.T) {
	llm := &fakeLLM{reply: "Subject: Q3 report owner\nBody:\nHi Bob,\n\nPlease own the Q3 report.\n\nThanks"}
	d := NewDrafter(llm, fixedKey("sk-user"), nil)

	draft, err := d.Draft(context.Background(), uuid.New(), DraftRequest{
		Recipient: "Bob",
		Context:   "ask Bob to own the Q3 report by Friday",
		Category:  entities.EmailCategoryTaskAssignment,
	})
	require.NoError(t, err)
	assert.Equal(t, "Q3 report owner", draft.Subject)
	assert.Equal(t, "Hi Bob,\n\nPlease own the Q3 report.\n\nThanks", draft.Body)

	assert.Equal(t, "sk-user", llm.key)
	assert.Contains(t, llm.prompt, "for task assignment")
	assert.Contains(t, llm.prompt, "Recipient: Bob")
	assert.Contains(t, llm.prompt, "Deadline if mentioned")
}

func TestDraft_RequiresKeyAndInput(t *testing.T) {
	llm := &fakeLLM{reply: "Subject: x\nBody: y"}

	_, err := NewDrafter(llm, fixedKey(""), nil).Draft(context.Background(), uuid.New(), DraftRequest{Recipient: "Bob", Context: "hi"})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)

	_, err = NewDrafter(llm, fixedKey("k"), nil).Draft(context.Background(), uuid.New(), DraftRequest{Recipient: " ", Context: "hi"})
	assert.ErrorIs(t, err, ucErrors.ErrInvalidInput)
	assert.Empty(t, llm.prompt)
}

func TestDraft_ModelFailureIsExternal(t *testing.T) {
	cause := errors.New("llm returned status 503")
	_, err := NewDrafter(&fakeLLM{err: cause}, fixedKey("k"), nil).Draft(context.Background(), uuid.New(), DraftRequest{Recipient: "Bob", Context: "hi"})

	assert.ErrorIs(t, err, ucErrors.ErrExternalService)
	assert.ErrorIs(t, err, cause)

	_, err = NewDrafter(&fakeLLM{reply: "sure!"}, fixedKey("k"), nil).Draft(context.Background(), uuid.New(), DraftRequest{Recipient: "Bob", Context: "hi"})
	assert.ErrorIs(t, err, ucErrors.ErrExternalService)
}

func TestParseDraft(t *testing.T) {
	cases := map[string]struct {
		in   string
		want Draft
	}{
		"inline body": {"Subject: Hello\nBody: Short note", Draft{Subject: "Hello", Body: "Short note"}},
		"crlf":        {"Subject: Hello\r\nBody:\r\nLine one\r\nLine two", Draft{Subject: "Hello", Body: "Line one\nLine two"}},
		"indented":    {"  Subject: Hello\n  Body:\nText", Draft{Subject: "Hello", Body: "Text"}},
		"no body":     {"Subject: Only subject", Draft{Subject: "Only subject"}},
		"no markers":  {"just text", Draft{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, *ParseDraft(tc.in))
		})
	}
}

func TestDraftPrompt_General(t *testing.T) {
	p := DraftPrompt("Carol", "thank her for the demo", entities.EmailCategoryGeneral)

	assert.Contains(t, p, "Draft a professional email:")
	assert.NotContains(t, p, "task assignment")
	assert.Contains(t, p, "Context: thank her for the demo")
	assert.Contains(t, p, "Subject: [subject]\nBody: [email body]")
}
