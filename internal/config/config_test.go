package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("NAV_MAX_SESSIONS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 10000, cfg.Navigation.MaxSessions)
	assert.Equal(t, 10, cfg.Navigation.MaxEntries)
	assert.Equal(t, time.Hour, cfg.Navigation.SessionTTL())
	assert.Equal(t, 5*time.Minute, cfg.Roles.CacheTTL())
	assert.Equal(t, "/auth/verify-email", cfg.Auth.VerifyEmailPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("NAV_SESSION_TTL_MINUTES", "15")
	t.Setenv("ROLES_CACHE_TTL_SECONDS", "0")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.Navigation.SessionTTL())
	assert.Equal(t, time.Duration(0), cfg.Roles.CacheTTL())
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "one")
	_, err := Load()
	assert.Error(t, err)
}

func TestAuditDefaults(t *testing.T) {
	t.Setenv("AUDIT_WEBHOOK_TIMEOUT_SECONDS", "")
	t.Setenv("AUDIT_QUEUE_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Audit.WebhookTimeout())
	assert.Equal(t, 256, cfg.Audit.QueueSize)
	assert.Equal(t, 5*time.Second, AuditConfig{WebhookTimeoutSeconds: -1}.WebhookTimeout())
}
