package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIngestConfig(t *testing.T) {
	cfg := DefaultIngestConfig()

	assert.Equal(t, 5, cfg.CommunityConcurrency)
	assert.Equal(t, 1*time.Second, cfg.InterFetchDelay)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, 25, cfg.FetchLimit)
}

func TestIngestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*IngestConfig)
		wantErr string
	}{
		{name: "valid defaults"},
		{
			name:    "zero concurrency",
			mutate:  func(c *IngestConfig) { c.CommunityConcurrency = 0 },
			wantErr: "community_concurrency must be at least 1",
		},
		{
			name:    "negative delay",
			mutate:  func(c *IngestConfig) { c.InterFetchDelay = -1 * time.Second },
			wantErr: "inter_fetch_delay must be non-negative",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *IngestConfig) { c.UpstreamTimeout = 0 },
			wantErr: "upstream_timeout must be positive",
		},
		{
			name:    "empty user agent",
			mutate:  func(c *IngestConfig) { c.UserAgent = "" },
			wantErr: "user_agent must not be empty",
		},
		{
			name:    "zero fetch limit",
			mutate:  func(c *IngestConfig) { c.FetchLimit = 0 },
			wantErr: "fetch_limit must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIngestConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIngestConfigValidate_Nil(t *testing.T) {
	var cfg *IngestConfig
	require.Error(t, cfg.validate())
}
