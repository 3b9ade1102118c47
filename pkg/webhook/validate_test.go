package webhook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDiscordPattern = `^https://discord(?:app)?\.com/api/webhooks/\d+/[\w-]+$`

func TestValidateURL_RejectsNonHTTPS(t *testing.T) {
	err := ValidateURL(context.Background(), "http://discord.com/api/webhooks/1/abc", testDiscordPattern)
	assert.ErrorContains(t, err, "https")
}

func TestValidateURL_RejectsNonMatchingHost(t *testing.T) {
	err := ValidateURL(context.Background(), "https://evil.example.com/api/webhooks/1/abc", testDiscordPattern)
	assert.ErrorContains(t, err, "accepted chat-provider host")
}

func TestValidateURL_AcceptsDiscordShape(t *testing.T) {
	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	err := ValidateURL(context.Background(), "https://discord.com/api/webhooks/123456789/abcDEF_-123", testDiscordPattern)
	assert.NoError(t, err)
}

func TestValidateURL_AcceptsDiscordappAlias(t *testing.T) {
	allowPrivateForTests = true
	defer func() { allowPrivateForTests = false }()

	err := ValidateURL(context.Background(), "https://discordapp.com/api/webhooks/123456789/abcDEF_-123", testDiscordPattern)
	assert.NoError(t, err)
}

func TestValidateURL_RejectsPrivateAddress(t *testing.T) {
	err := ValidateURL(context.Background(), "https://localhost/api/webhooks/123/abc", `.*`)
	assert.Error(t, err)
}
