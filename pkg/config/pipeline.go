package config

import (
	"fmt"
	"time"
)

// PipelineConfig controls the scheduler's pipeline tick cadence.
type PipelineConfig struct {
	// PollIntervalMinutes is how often ingest→match→dispatch runs. The
	// pipeline also always runs once at process startup.
	PollIntervalMinutes int `yaml:"poll_interval_minutes"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{PollIntervalMinutes: 60}
}

// Interval returns PollIntervalMinutes as a time.Duration.
func (c *PipelineConfig) Interval() time.Duration {
	return time.Duration(c.PollIntervalMinutes) * time.Minute
}

func (c *PipelineConfig) validate() error {
	if c == nil {
		return fmt.Errorf("pipeline configuration is nil")
	}
	if c.PollIntervalMinutes < 1 {
		return fmt.Errorf("poll_interval_minutes must be at least 1")
	}
	return nil
}
