package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("keyword_rule", "rule-1", "phrases", baseErr),
			contains: []string{
				"keyword_rule",
				"rule-1",
				"phrases",
				"base error",
			},
		},
		{
			name: "create-time error has no id",
			err:  NewValidationError("webhook_endpoint", "", "url", errors.New("not https")),
			contains: []string{
				"webhook_endpoint",
				"url",
				"not https",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	validationErr := NewValidationError("keyword_rule", "rule-1", "phrases", baseErr)

	assert.Equal(t, baseErr, validationErr.Unwrap())
	assert.True(t, errors.Is(validationErr, baseErr))
}

func TestLoadErrorError(t *testing.T) {
	loadErr := NewLoadError("RETENTION_DAYS", errors.New("not an integer"))

	errStr := loadErr.Error()
	assert.Contains(t, errStr, "RETENTION_DAYS")
	assert.Contains(t, errStr, "not an integer")
}

func TestLoadErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	loadErr := NewLoadError("POLL_INTERVAL_MINUTES", baseErr)

	assert.Equal(t, baseErr, loadErr.Unwrap())
	assert.True(t, errors.Is(loadErr, baseErr))
}
