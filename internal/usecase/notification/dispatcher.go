package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/external/smtp"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/pkg/metrics"
)

// Transport delivers one message over a relay
type Transport interface {
	Send(ctx context.Context, settings smtp.Settings, mail smtp.Mail) error
}

// RelayResolver picks the SMTP relay for an owner
type RelayResolver interface {
	SMTP(ctx context.Context, owner uuid.UUID) (smtp.Settings, error)
}

// Message is one email to deliver on behalf of Owner
type Message struct {
	Owner     uuid.UUID
	Recipient string
	Subject   string
	Body      string
	Category  entities.EmailCategory
	RelatedID *uuid.UUID
}

// Result is the outcome of one delivery
type Result struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// Dispatcher sends single emails and records the delivered ones
type Dispatcher struct {
	transport Transport
	relays    RelayResolver
	emails    repositories.EmailRepository
	metrics   *metrics.FlowMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(transport Transport, relays RelayResolver, emails repositories.EmailRepository, m *metrics.FlowMetrics, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		transport: transport,
		relays:    relays,
		emails:    emails,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Send delivers msg once. Failures are reported in the result, never
// returned or retried.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (res Result) {
	res = Result{Recipient: msg.Recipient}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Error = fmt.Sprintf("panic during delivery: %v", r)
		}
		d.metrics.Dispatch(res.Success)
	}()

	relay, err := d.relays.SMTP(ctx, msg.Owner)
	if err != nil {
		res.Error = fmt.Sprintf("failed to resolve smtp settings: %v", err)
		return res
	}
	if err := relay.Validate(); err != nil {
		res.Error = err.Error()
		return res
	}

	sendCtx := ctx
	if relay.Timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, relay.Timeout)
		defer cancel()
	}

	err = d.transport.Send(sendCtx, relay, smtp.Mail{
		To:      msg.Recipient,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			res.Error = "smtp send timed out"
		} else {
			res.Error = err.Error()
		}
		return res
	}
	res.Success = true

	// Delivered; a log write failure does not change the result.
	if err := d.emails.Create(ctx, &entities.EmailLog{
		ID:          uuid.New(),
		OwnerUserID: msg.Owner,
		Recipient:   msg.Recipient,
		Subject:     msg.Subject,
		Body:        msg.Body,
		Category:    msg.Category,
		RelatedID:   msg.RelatedID,
		SentAt:      d.now(),
	}); err != nil {
		d.logger.Warn("⚠️ Failed to record sent email",
			zap.String("recipient", msg.Recipient),
			zap.Error(err),
		)
	}
	return res
}

// Deliver sends one ad-hoc email and reports a failed delivery as an error
func (d *Dispatcher) Deliver(ctx context.Context, msg Message) error {
	if msg.Category == "" {
		msg.Category = entities.EmailCategoryGeneral
	}
	res := d.Send(ctx, msg)
	if !res.Success {
		return ucErrors.External("smtp", errors.New(res.Error))
	}
	d.logger.Info("📧 Email sent",
		zap.String("owner_id", msg.Owner.String()),
		zap.String("category", string(msg.Category)),
	)
	return nil
}

// Recent lists the owner's latest delivered emails
func (d *Dispatcher) Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.EmailLog, error) {
	return d.emails.ListRecent(ctx, owner, limit)
}
