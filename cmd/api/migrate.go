package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(migrate.Up, steps)
		},
	}
	up.Flags().IntVar(&steps, "steps", 0, "maximum migrations to apply (0 = all)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(migrate.Down, steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := database.NewPostgresDB(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = database.CloseDB(db, logger) }()

			applied, pending, err := database.MigrationStatus(db)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range applied {
				fmt.Fprintf(out, "applied  %s\n", id)
			}
			for _, id := range pending {
				fmt.Fprintf(out, "pending  %s\n", id)
			}
			return nil
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func runMigrate(direction migrate.MigrationDirection, steps int) error {
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

	n, err := database.Migrate(db, direction, steps, logger)
	if err != nil {
		return err
	}
	logger.Info("✅ Migration finished", zap.Int("count", n))
	return nil
}
