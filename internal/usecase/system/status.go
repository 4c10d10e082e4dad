package system

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jarvis-assistant/assistant/internal/infrastructure/external/smtp"
)

const (
	defaultCheckTimeout = 10 * time.Second
	maxErrorLen         = 50
	llmCheckPrompt      = "Hello"
)

var errLLMKeyMissing = errors.New("llm api key not configured")

// Completer sends a prompt to a chat model
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// RelayVerifier dials and authenticates against an SMTP relay
type RelayVerifier interface {
	Verify(ctx context.Context, settings smtp.Settings) error
}

// Resolver picks an owner's effective integration settings
type Resolver interface {
	LLMKey(ctx context.Context, owner uuid.UUID) (string, error)
	SMTP(ctx context.Context, owner uuid.UUID) (smtp.Settings, error)
}

// Status is the connectivity report for one owner
type Status struct {
	LLMConnected      bool
	SMTPConnected     bool
	DatabaseConnected bool
	LLMError          string
	SMTPError         string
	DatabaseError     string
	Message           string
}

// Service checks the integrations an owner's requests depend on
type Service struct {
	llm      Completer
	relay    RelayVerifier
	settings Resolver
	database func(ctx context.Context) error
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService creates a new status service. database may be nil.
func NewService(llm Completer, relay RelayVerifier, settings Resolver, database func(ctx context.Context) error, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		llm:      llm,
		relay:    relay,
		settings: settings,
		database: database,
		timeout:  timeout,
		logger:   logger,
	}
}

// Status runs the LLM, SMTP and database checks concurrently.
// Check failures are reported in the result, never returned.
func (s *Service) Status(ctx context.Context, owner uuid.UUID) *Status {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var llmErr, smtpErr, dbErr error
	var g errgroup.Group
	g.Go(func() error {
		llmErr = s.checkLLM(ctx, owner)
		return nil
	})
	g.Go(func() error {
		smtpErr = s.checkSMTP(ctx, owner)
		return nil
	})
	g.Go(func() error {
		if s.database != nil {
			dbErr = s.database(ctx)
		}
		return nil
	})
	_ = g.Wait()

	st := &Status{
		LLMConnected:      llmErr == nil,
		SMTPConnected:     smtpErr == nil,
		DatabaseConnected: dbErr == nil,
		LLMError:          errText(llmErr),
		SMTPError:         errText(smtpErr),
		DatabaseError:     errText(dbErr),
	}
	st.Message = statusMessage(st)

	if llmErr != nil || smtpErr != nil || dbErr != nil {
		s.logger.Info("🩺 System check degraded",
			zap.String("owner_id", owner.String()),
			zap.Bool("llm", st.LLMConnected),
			zap.Bool("smtp", st.SMTPConnected),
			zap.Bool("database", st.DatabaseConnected),
		)
	}
	return st
}

func (s *Service) checkLLM(ctx context.Context, owner uuid.UUID) error {
	key, err := s.settings.LLMKey(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to resolve llm api key: %w", err)
	}
	if key == "" {
		return errLLMKeyMissing
	}
	_, err = s.llm.Complete(ctx, key, llmCheckPrompt)
	return err
}

func (s *Service) checkSMTP(ctx context.Context, owner uuid.UUID) error {
	relay, err := s.settings.SMTP(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to resolve smtp settings: %w", err)
	}
	return s.relay.Verify(ctx, relay)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func truncate(s string) string {
	if len(s) <= maxErrorLen {
		return s
	}
	return s[:maxErrorLen] + "..."
}

func checkLine(b *strings.Builder, label string, ok bool, errMsg string) {
	fmt.Fprintf(b, "> %s: %s", label, mark(ok))
	if errMsg != "" {
		fmt.Fprintf(b, " (%s)", truncate(errMsg))
	}
	b.WriteString("\n")
}

// statusMessage renders the console-style summary shown on the dashboard
func statusMessage(st *Status) string {
	var b strings.Builder
	b.WriteString("> Initializing Jarvis AI...\n")
	checkLine(&b, "Checking LLM API Key", st.LLMConnected, st.LLMError)
	checkLine(&b, "Verifying SMTP Connection", st.SMTPConnected, st.SMTPError)
	checkLine(&b, "Connecting to database", st.DatabaseConnected, st.DatabaseError)

	switch {
	case st.LLMConnected && st.SMTPConnected:
		b.WriteString("> All systems online. Ready to assist.")
	case st.LLMConnected:
		b.WriteString("> AI ready. Email configuration needed.")
	case st.SMTPConnected:
		b.WriteString("> Email ready. AI configuration needed.")
	default:
		b.WriteString("> Configuration required. Please update settings.")
	}
	return b.String()
}
