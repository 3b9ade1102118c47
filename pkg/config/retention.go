package config

import "fmt"

// RetentionConfig controls the daily retention sweep: Match rows older
// than RetentionDays are hard-deleted before ContentItem rows older than
// RetentionDays, preserving FK order.
type RetentionConfig struct {
	// RetentionDays is how many days of Match/ContentItem history to keep.
	RetentionDays int `yaml:"retention_days"`

	// DailyRunHour is the local hour (0-23) at which the sweep runs once
	// per day.
	DailyRunHour int `yaml:"daily_run_hour"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RetentionDays: 90,
		DailyRunHour:  3,
	}
}

func (c *RetentionConfig) validate() error {
	if c == nil {
		return fmt.Errorf("retention configuration is nil")
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("retention_days must be at least 1")
	}
	if c.DailyRunHour < 0 || c.DailyRunHour > 23 {
		return fmt.Errorf("daily_run_hour must be between 0 and 23")
	}
	return nil
}
