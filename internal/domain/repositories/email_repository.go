package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
)

// EmailRepository records delivered emails
type EmailRepository interface {
	Create(ctx context.Context, log *entities.EmailLog) error
	ListRecent(ctx context.Context, owner uuid.UUID, limit int) ([]*entities.EmailLog, error)
}
