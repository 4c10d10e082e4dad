package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `envconfig:"SERVER"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	JWT      JWTConfig      `envconfig:"JWT"`
	Storage  StorageConfig  `envconfig:"STORAGE"`
	LLM      LLMConfig      `envconfig:"LLM"`
	SMTP     SMTPConfig     `envconfig:"SMTP"`
	Flow     FlowConfig     `envconfig:"FLOW"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`

	// StatusCheckTimeout bounds GET /v1/system/status
	StatusCheckTimeout time.Duration `envconfig:"STATUS_CHECK_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"HOST" default:"localhost"`
	Port        string `envconfig:"PORT" default:"5432"`
	User        string `envconfig:"USER" default:"postgres"`
	Password    string `envconfig:"PASSWORD" default:"postgres"`
	Name        string `envconfig:"NAME" default:"assistant"`
	SSLMode     string `envconfig:"SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration.
// When disabled, flow locks are held in process memory.
type RedisConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret string        `envconfig:"ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	AccessExpiry time.Duration `envconfig:"ACCESS_EXPIRY" default:"30m"`
	Issuer       string        `envconfig:"ISSUER" default:"jarvis-assistant"`
}

// StorageConfig holds object storage configuration for the minutes archive
type StorageConfig struct {
	Enabled         bool   `envconfig:"ENABLED" default:"false"`
	Endpoint        string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"BUCKET" default:"meeting-minutes"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
}

// LLMConfig holds the OpenAI-compatible chat completion settings.
// APIKey is the server-wide fallback; users may store their own key.
type LLMConfig struct {
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.openai.com"`
	Model       string        `envconfig:"MODEL" default:"gpt-3.5-turbo"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
	MaxRetries  uint64        `envconfig:"MAX_RETRIES" default:"2"`
	RetryDelay  time.Duration `envconfig:"RETRY_DELAY" default:"1s"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"800"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.3"`
}

// SMTPConfig holds the server-wide SMTP relay, used when a user has none
type SMTPConfig struct {
	Host     string        `envconfig:"HOST"`
	Port     int           `envconfig:"PORT" default:"587"`
	User     string        `envconfig:"USER"`
	Password string        `envconfig:"PASSWORD"`
	From     string        `envconfig:"FROM"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// FlowConfig tunes the meeting flow engine
type FlowConfig struct {
	DispatchConcurrency   int           `envconfig:"DISPATCH_CONCURRENCY" default:"4"`
	LockTTL               time.Duration `envconfig:"LOCK_TTL" default:"2m"`
	LockWait              time.Duration `envconfig:"LOCK_WAIT" default:"5s"`
	AbortOnSummaryFailure bool          `envconfig:"ABORT_ON_SUMMARY_FAILURE" default:"false"`
	SenderName            string        `envconfig:"SENDER_NAME" default:"Jarvis"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.IsProduction() && c.JWT.AccessSecret == "your-access-secret-change-in-production" {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set in production")
	}
	if c.Flow.DispatchConcurrency < 1 {
		return fmt.Errorf("FLOW_DISPATCH_CONCURRENCY must be at least 1")
	}
	if c.JWT.AccessExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
