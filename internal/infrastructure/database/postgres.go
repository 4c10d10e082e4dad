package database

import (
	"embed"
	"fmt"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jarvis-assistant/assistant/pkg/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationDialect = "postgres"

// NewPostgresDB creates a new PostgreSQL database connection using GORM
func NewPostgresDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("✅ Database connected successfully",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name),
	)

	return db, nil
}

// MigrationSource returns the embedded schema migrations
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies (or with migrate.Down, rolls back) up to max migrations.
// max <= 0 means no limit.
func Migrate(db *gorm.DB, direction migrate.MigrationDirection, max int, log *zap.Logger) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate: %w", err)
	}

	n, err := migrate.ExecMax(sqlDB, migrationDialect, MigrationSource(), direction, max)
	if err != nil {
		return n, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("✅ Migrations applied", zap.Int("count", n), zap.Bool("up", direction == migrate.Up))
	return n, nil
}

// AutoMigrate applies all pending migrations
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("🔄 Applying embedded migrations using sql-migrate...")
	_, err := Migrate(db, migrate.Up, 0, log)
	return err
}

// MigrationStatus lists applied migration ids and the pending ones
func MigrationStatus(db *gorm.DB) (applied []string, pending []string, err error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get db connection: %w", err)
	}

	records, err := migrate.GetMigrationRecords(sqlDB, migrationDialect)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read migration records: %w", err)
	}
	done := make(map[string]bool, len(records))
	for _, r := range records {
		done[r.Id] = true
		applied = append(applied, r.Id)
	}

	all, err := MigrationSource().FindMigrations()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	for _, m := range all {
		if !done[m.Id] {
			pending = append(pending, m.Id)
		}
	}
	return applied, pending, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Info("✅ Database connection closed")
	return nil
}
