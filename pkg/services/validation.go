package services

import (
	"regexp"
	"strings"
)

// Input bounds enforced at the write boundary. There is no HTTP CRUD
// surface in keywatch, but anything that writes a KeywordRule,
// MonitoredCommunity or WebhookEndpoint still goes through these checks.
const (
	MaxKeywordPhrases  = 20
	MaxPhraseLength    = 200
	MaxExclusions      = 20
	MaxExclusionLength = 100
)

var communityNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,50}$`)

// sanitizePhrase strips angle brackets and trims surrounding whitespace.
func sanitizePhrase(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

func validatePhrases(phrases []string) error {
	if len(phrases) == 0 {
		return NewValidationError("phrases", "at least one phrase is required")
	}
	if len(phrases) > MaxKeywordPhrases {
		return NewValidationError("phrases", "too many phrases")
	}
	for _, p := range phrases {
		if sanitizePhrase(p) == "" {
			return NewValidationError("phrases", "phrase must not be empty")
		}
		if len(p) > MaxPhraseLength {
			return NewValidationError("phrases", "phrase exceeds maximum length")
		}
	}
	return nil
}

func validateExclusions(exclusions []string) error {
	if len(exclusions) > MaxExclusions {
		return NewValidationError("exclusions", "too many exclusions")
	}
	for _, e := range exclusions {
		if len(e) > MaxExclusionLength {
			return NewValidationError("exclusions", "exclusion exceeds maximum length")
		}
	}
	return nil
}

// normalizeCommunityName strips a leading "r/" (case-insensitively) and
// lowercases, then validates the remaining name against the accepted
// character set.
func normalizeCommunityName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	name = strings.ToLower(name)
	if !communityNamePattern.MatchString(name) {
		return "", NewValidationError("name", "community name must be 1-50 characters of letters, digits or underscore")
	}
	return name, nil
}
