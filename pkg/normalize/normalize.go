// Package normalize turns raw upstream text into a deterministic,
// matchable form: lowercased, markdown-stripped, tokenized, and
// sentence-segmented.
package normalize

import (
	"regexp"
	"strings"
)

// Result is the output of normalizing a single piece of text.
type Result struct {
	Text      string
	Tokens    []string
	Sentences []string
}

var (
	urlPattern         = regexp.MustCompile(`https?://\S+`)
	linkPattern        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	boldPattern        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern      = regexp.MustCompile(`\*([^*\n]+?)\*`)
	strikePattern      = regexp.MustCompile(`~~(.+?)~~`)
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	blockquotePattern  = regexp.MustCompile(`(?m)^>\s?`)
	headingPattern     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	horizontalRulePat  = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	superscriptPattern = regexp.MustCompile(`\^(\S+)`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	sentenceBoundary   = regexp.MustCompile(`[.!?]\s+`)
	tokenPattern       = regexp.MustCompile(`[a-z0-9'-]+`)
)

// Normalize cleans raw text into a Result. Empty or whitespace-only input
// yields a zero Result. Deterministic across platforms.
func Normalize(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}

	text := strings.ToLower(raw)
	text = stripMarkdown(text)
	text = stripURLs(text)
	text = normalizeWhitespace(text)

	return Result{
		Text:      text,
		Tokens:    tokenize(text),
		Sentences: segmentSentences(text),
	}
}

func stripURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

func stripMarkdown(text string) string {
	text = linkPattern.ReplaceAllString(text, "$1")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = blockquotePattern.ReplaceAllString(text, "")
	text = headingPattern.ReplaceAllString(text, "")
	text = horizontalRulePat.ReplaceAllString(text, "")
	text = superscriptPattern.ReplaceAllString(text, "$1")
	return text
}

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// segmentSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation attached to the preceding sentence
// (Go's RE2 engine has no lookbehind, so the boundary is found and the
// split point placed one rune after it instead).
func segmentSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		boundary := loc[0] + 1 // keep the punctuation mark itself
		sentence := strings.TrimSpace(text[last:boundary])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
