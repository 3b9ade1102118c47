// Package config loads keywatch's runtime configuration from environment
// variables, following the same LoadFromEnv/Validate shape pkg/database
// uses for its own connection settings.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the umbrella runtime configuration for the pipeline, ingest,
// dispatch, retention, and webhook-acceptance components.
type Config struct {
	Pipeline  *PipelineConfig
	Ingest    *IngestConfig
	Dispatch  *DispatchConfig
	Retention *RetentionConfig
	Webhook   *WebhookConfig
}

// LoadFromEnv builds a Config from environment variables, falling back to
// built-in defaults. An error is returned if any value fails validation.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Pipeline:  DefaultPipelineConfig(),
		Ingest:    DefaultIngestConfig(),
		Dispatch:  DefaultDispatchConfig(),
		Retention: DefaultRetentionConfig(),
		Webhook:   DefaultWebhookConfig(),
	}

	if v, ok := os.LookupEnv("POLL_INTERVAL_MINUTES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, NewLoadError("POLL_INTERVAL_MINUTES", err)
		}
		cfg.Pipeline.PollIntervalMinutes = n
	}

	if v, ok := os.LookupEnv("RETENTION_DAYS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, NewLoadError("RETENTION_DAYS", err)
		}
		cfg.Retention.RetentionDays = n
	}

	if v := os.Getenv("UPSTREAM_USER_AGENT"); v != "" {
		cfg.Ingest.UserAgent = v
	}

	if v := os.Getenv("WEBHOOK_ALLOW_PATTERN"); v != "" {
		cfg.Webhook.AllowPattern = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every sub-config. Called once at startup; a failure here
// is fatal and the process should exit.
func (c *Config) Validate() error {
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if err := c.Retention.validate(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	return nil
}
