package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetentionConfig(t *testing.T) {
	cfg := DefaultRetentionConfig()
	assert.Equal(t, 90, cfg.RetentionDays)
	assert.Equal(t, 3, cfg.DailyRunHour)
}

func TestRetentionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RetentionConfig)
		wantErr string
	}{
		{name: "valid defaults"},
		{
			name:    "zero retention days",
			mutate:  func(c *RetentionConfig) { c.RetentionDays = 0 },
			wantErr: "retention_days must be at least 1",
		},
		{
			name:    "negative run hour",
			mutate:  func(c *RetentionConfig) { c.DailyRunHour = -1 },
			wantErr: "daily_run_hour must be between 0 and 23",
		},
		{
			name:    "run hour too large",
			mutate:  func(c *RetentionConfig) { c.DailyRunHour = 24 },
			wantErr: "daily_run_hour must be between 0 and 23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRetentionConfig()
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

func TestRetentionConfigValidate_Nil(t *testing.T) {
	var cfg *RetentionConfig
	require.Error(t, cfg.validate())
}
