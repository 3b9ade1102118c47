package config

import (
	"fmt"
	"regexp"
)

// discordWebhookPattern is the accepted chat-provider webhook URL shape.
const discordWebhookPattern = `^https://discord(?:app)?\.com/api/webhooks/\d+/[\w-]+$`

// WebhookConfig controls which outbound webhook URLs are accepted.
type WebhookConfig struct {
	// AllowPattern is the regexp a webhook URL's full string must match.
	AllowPattern string `yaml:"allow_pattern"`
}

// DefaultWebhookConfig returns the built-in webhook defaults: the Discord
// webhook URL shape.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{AllowPattern: discordWebhookPattern}
}

func (c *WebhookConfig) validate() error {
	if c == nil {
		return fmt.Errorf("webhook configuration is nil")
	}
	if c.AllowPattern == "" {
		return fmt.Errorf("allow_pattern must not be empty")
	}
	if _, err := regexp.Compile(c.AllowPattern); err != nil {
		return fmt.Errorf("allow_pattern is not a valid regexp: %w", err)
	}
	return nil
}
