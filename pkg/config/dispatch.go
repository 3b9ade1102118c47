package config

import (
	"fmt"
	"time"
)

// DispatchConfig controls outbound webhook delivery: retry/backoff and the
// batching rule for tenants with several pending matches in a short span.
type DispatchConfig struct {
	// WebhookTimeout bounds each outbound POST.
	WebhookTimeout time.Duration `yaml:"webhook_timeout"`

	// MaxAttempts is the maximum number of delivery attempts per message
	// (so up to MaxAttempts-1 sleeps).
	MaxAttempts int `yaml:"max_attempts"`

	// InitialBackoff is the sleep before the first retry; it doubles on
	// every subsequent retry.
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// BatchMinCount is the minimum number of a tenant's pending matches
	// required to form a single batched message.
	BatchMinCount int `yaml:"batch_min_count"`

	// BatchWindow is the maximum span between the earliest and latest
	// detected_at within a tenant's group for it to batch.
	BatchWindow time.Duration `yaml:"batch_window"`

	// SendRateLimitPerSecond paces outbound webhook POSTs.
	SendRateLimitPerSecond float64 `yaml:"send_rate_limit_per_second"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		WebhookTimeout:         10 * time.Second,
		MaxAttempts:            3,
		InitialBackoff:         1 * time.Second,
		BatchMinCount:          3,
		BatchWindow:            120 * time.Second,
		SendRateLimitPerSecond: 5,
	}
}

func (c *DispatchConfig) validate() error {
	if c == nil {
		return fmt.Errorf("dispatch configuration is nil")
	}
	if c.WebhookTimeout <= 0 {
		return fmt.Errorf("webhook_timeout must be positive")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.BatchMinCount < 1 {
		return fmt.Errorf("batch_min_count must be at least 1")
	}
	if c.BatchWindow <= 0 {
		return fmt.Errorf("batch_window must be positive")
	}
	if c.SendRateLimitPerSecond <= 0 {
		return fmt.Errorf("send_rate_limit_per_second must be positive")
	}
	return nil
}
