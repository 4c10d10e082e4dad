package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/adapter/repository"
	"github.com/jarvis-assistant/assistant/internal/infrastructure/database"
	"github.com/jarvis-assistant/assistant/internal/usecase/auth"
	"github.com/jarvis-assistant/assistant/internal/usecase/contact"
	"github.com/jarvis-assistant/assistant/pkg/jwt"
	pkgvalidator "github.com/jarvis-assistant/assistant/pkg/validator"
)

func newSeedUserCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
		contacts []string
	)

	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Create a user, optionally with contacts, and print an access token",
		Example: `  assistant seed-user --email alice@test.local --password secret123 \
    --contact "Bob=bob@test.local" --contact "Carol=carol@test.local"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := database.NewPostgresDB(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = database.CloseDB(db, logger) }()

			ctx := cmd.Context()
			jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
			authService := auth.NewPasswordService(repository.NewUserRepository(db), jwtManager)

			out, err := authService.Register(ctx, auth.RegisterInput{Name: name, Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", email, err)
			}
			logger.Info("✅ User created", zap.String("user_id", out.User.ID.String()), zap.String("email", out.User.Email))

			contactService := contact.NewService(repository.NewContactRepository(db), pkgvalidator.New())
			for _, entry := range contacts {
				contactName, contactEmail, ok := strings.Cut(entry, "=")
				if !ok {
					return fmt.Errorf("contact %q must look like Name=email", entry)
				}
				if _, err := contactService.Save(ctx, out.User.ID, contactName, contactEmail); err != nil {
					return fmt.Errorf("failed to save contact %q: %w", entry, err)
				}
			}
			if len(contacts) > 0 {
				logger.Info("📇 Contacts saved", zap.Int("count", len(contacts)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Test User", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.Flags().StringArrayVar(&contacts, "contact", nil, "contact as Name=email (repeatable)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
