package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 4, cfg.Flow.DispatchConcurrency)
	assert.False(t, cfg.Flow.AbortOnSummaryFailure)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "https://api.openai.com", cfg.LLM.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Server.StatusCheckTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("FLOW_DISPATCH_CONCURRENCY", "8")
	t.Setenv("FLOW_ABORT_ON_SUMMARY_FAILURE", "true")
	t.Setenv("SMTP_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 8, cfg.Flow.DispatchConcurrency)
	assert.True(t, cfg.Flow.AbortOnSummaryFailure)
	assert.Equal(t, 5*time.Second, cfg.SMTP.Timeout)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("SERVER_ENVIRONMENT", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")

	t.Setenv("JWT_ACCESS_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_DispatchConcurrency(t *testing.T) {
	t.Setenv("FLOW_DISPATCH_CONCURRENCY", "0")

	_, err := Load()
	require.Error(t, err)
}
