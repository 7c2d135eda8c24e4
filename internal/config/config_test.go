package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 60*time.Second, cfg.RoleCacheTTL)
	require.Equal(t, 30*time.Second, cfg.MetricsCacheTTL)
	require.Equal(t, 256, cfg.AuditQueueSize)
	require.True(t, cfg.EscalationEnabled)
	require.Equal(t, "@every 15m", cfg.EscalationSchedule)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ROLE_CACHE_TTL", "5")
	t.Setenv("AUDIT_QUEUE_SIZE", "32")
	t.Setenv("ESCALATION_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.RoleCacheTTL)
	require.Equal(t, 32, cfg.AuditQueueSize)
	require.False(t, cfg.EscalationEnabled)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("ROLE_CACHE_TTL", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
