package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Pipeline.PollIntervalMinutes)
	assert.Equal(t, 90, cfg.Retention.RetentionDays)
	assert.Equal(t, discordWebhookPattern, cfg.Webhook.AllowPattern)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MINUTES", "15")
	t.Setenv("RETENTION_DAYS", "30")
	t.Setenv("UPSTREAM_USER_AGENT", "keywatch-test/1.0")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Pipeline.PollIntervalMinutes)
	assert.Equal(t, 30, cfg.Retention.RetentionDays)
	assert.Equal(t, "keywatch-test/1.0", cfg.Ingest.UserAgent)
}

func TestLoadFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("POLL_INTERVAL_MINUTES", "not-a-number")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL_MINUTES")
}
