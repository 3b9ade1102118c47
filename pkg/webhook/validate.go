package webhook

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
)

// ValidateURL enforces the webhook-URL acceptance rules: HTTPS,
// matching the configured accepted-provider pattern, and resolving only to
// public addresses. It returns a descriptive error suitable for a generic
// 4xx response; callers must not leak it beyond that.
func ValidateURL(ctx context.Context, rawURL string, allowPattern string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed webhook url: %w", err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("webhook url must use https")
	}

	pattern, err := regexp.Compile(allowPattern)
	if err != nil {
		return fmt.Errorf("invalid allow pattern: %w", err)
	}
	if !pattern.MatchString(rawURL) {
		return fmt.Errorf("webhook url does not match an accepted chat-provider host")
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("webhook url has no hostname")
	}
	if _, err := resolvePublicIP(ctx, parsed.Hostname()); err != nil {
		return fmt.Errorf("webhook url must not resolve to a private or internal address: %w", err)
	}

	return nil
}
