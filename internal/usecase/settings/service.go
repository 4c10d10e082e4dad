package settings

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/external/smtp"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/pkg/config"
)

// Service reads and updates per-user integration settings and resolves
// them against the server-wide defaults
type Service struct {
	repo repositories.SettingsRepository
	smtp config.SMTPConfig
	llm  config.LLMConfig
}

// NewService creates a new settings service
func NewService(repo repositories.SettingsRepository, smtpDefaults config.SMTPConfig, llmDefaults config.LLMConfig) *Service {
	return &Service{repo: repo, smtp: smtpDefaults, llm: llmDefaults}
}

// Get returns the owner's settings, empty when none were saved
func (s *Service) Get(ctx context.Context, owner uuid.UUID) (*entities.UserSettings, error) {
	st, err := s.repo.Get(ctx, owner)
	if errors.Is(err, entities.ErrSettingsNotFound) {
		return &entities.UserSettings{OwnerUserID: owner}, nil
	}
	return st, err
}

// Update applies a partial patch
func (s *Service) Update(ctx context.Context, owner uuid.UUID, patch entities.SettingsPatch) (*entities.UserSettings, error) {
	if patch.IsEmpty() {
		return nil, ucErrors.Invalid("no settings to update")
	}
	if patch.SMTPPort != nil && (*patch.SMTPPort < 0 || *patch.SMTPPort > 65535) {
		return nil, ucErrors.Invalid("smtp_port must be between 0 and 65535")
	}
	return s.repo.Save(ctx, owner, patch)
}

// SMTP returns the relay to use for the owner: their own when complete,
// otherwise the server default
func (s *Service) SMTP(ctx context.Context, owner uuid.UUID) (smtp.Settings, error) {
	st, err := s.Get(ctx, owner)
	if err != nil {
		return smtp.Settings{}, err
	}
	if st.HasSMTP() {
		return smtp.Settings{
			Host:     st.SMTPHost,
			Port:     st.SMTPPort,
			Username: st.SMTPUser,
			Password: st.SMTPPass,
			From:     st.SMTPUser,
			Timeout:  s.smtp.Timeout,
		}, nil
	}
	return smtp.Settings{
		Host:     s.smtp.Host,
		Port:     s.smtp.Port,
		Username: s.smtp.User,
		Password: s.smtp.Password,
		From:     s.smtp.From,
		Timeout:  s.smtp.Timeout,
	}, nil
}

// LLMKey returns the owner's API key or the server key
func (s *Service) LLMKey(ctx context.Context, owner uuid.UUID) (string, error) {
	st, err := s.Get(ctx, owner)
	if err != nil {
		return "", err
	}
	if st.LLMAPIKey != "" {
		return st.LLMAPIKey, nil
	}
	return s.llm.APIKey, nil
}
