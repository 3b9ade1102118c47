package config

import (
	"fmt"
	"time"
)

// IngestConfig controls how the ingestor fetches upstream feeds.
type IngestConfig struct {
	// CommunityConcurrency is the maximum number of monitored communities
	// fetched in parallel. Per-community ordering and inter-request delay
	// are preserved regardless of this value.
	CommunityConcurrency int `yaml:"community_concurrency"`

	// InterFetchDelay is the pause between a community's posts fetch and
	// its comments fetch, for upstream fairness.
	InterFetchDelay time.Duration `yaml:"inter_fetch_delay"`

	// UpstreamTimeout bounds each upstream HTTP GET.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`

	// UserAgent is sent on every upstream request.
	UserAgent string `yaml:"user_agent"`

	// FetchLimit is the `limit` query parameter sent to the upstream feed.
	FetchLimit int `yaml:"fetch_limit"`
}

// DefaultIngestConfig returns the built-in ingest defaults.
func DefaultIngestConfig() *IngestConfig {
	return &IngestConfig{
		CommunityConcurrency: 5,
		InterFetchDelay:      1 * time.Second,
		UpstreamTimeout:      30 * time.Second,
		UserAgent:            "keywatch/1.0",
		FetchLimit:           25,
	}
}

func (c *IngestConfig) validate() error {
	if c == nil {
		return fmt.Errorf("ingest configuration is nil")
	}
	if c.CommunityConcurrency < 1 {
		return fmt.Errorf("community_concurrency must be at least 1")
	}
	if c.InterFetchDelay < 0 {
		return fmt.Errorf("inter_fetch_delay must be non-negative")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be positive")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user_agent must not be empty")
	}
	if c.FetchLimit < 1 {
		return fmt.Errorf("fetch_limit must be at least 1")
	}
	return nil
}
