// Package webhook sends outbound chat-provider alerts: SSRF-guarded URL
// acceptance, a paced HTTP client, and exponential-backoff delivery retry.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client POSTs JSON payloads to webhook endpoints, rate-limited and with
// retry on transport errors or any status other than 200 or 204.
type Client struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	logger         *slog.Logger
}

// NewClient builds a webhook Client. timeout bounds each individual POST;
// ratePerSecond paces outbound sends; maxAttempts/initialBackoff drive the
// retry schedule (initialBackoff, then doubling on each retry).
func NewClient(timeout time.Duration, ratePerSecond float64, maxAttempts int, initialBackoff time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newSafeTransport(),
		},
		limiter:        rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
		logger:         logger,
	}
}

// Send POSTs payload as JSON to targetURL, retrying on failure per the
// configured backoff schedule. Returns true only if some attempt received
// HTTP 200 or 204.
func (c *Client) Send(ctx context.Context, targetURL string, payload any) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("failed to marshal webhook payload", "error", err)
		return false
	}

	backoff := c.initialBackoff
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return false
		}

		ok, err := c.attempt(ctx, targetURL, body)
		if ok {
			return true
		}
		if err != nil {
			c.logger.Warn("webhook request failed", "attempt", attempt, "max_attempts", c.maxAttempts, "error", err)
		} else {
			c.logger.Warn("webhook returned non-success status", "attempt", attempt, "max_attempts", c.maxAttempts)
		}

		if attempt < c.maxAttempts {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return false
}

func (c *Client) attempt(ctx context.Context, targetURL string, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent, nil
}
