// Package match implements the proximity keyword matcher: phrase OR
// groups, positional proximity windows, ordering constraints, and
// anywhere/proximity-scoped exclusions, over normalized text.
package match

import (
	"strings"

	"github.com/keywatch/keywatch/pkg/normalize"
)

// ExclusionScope controls where an exclusion term must appear to suppress
// a match.
type ExclusionScope string

const (
	// ExclusionAnywhere rejects the whole rule if an exclusion term
	// appears anywhere in the content, before phrase search even runs.
	ExclusionAnywhere ExclusionScope = "anywhere"
	// ExclusionProximity rejects only occurrences with an exclusion term
	// within the rule's proximity window of the match.
	ExclusionProximity ExclusionScope = "proximity"
)

// Rule is a matcher-ready view of a keyword rule. Phrases is an OR group;
// each entry is the whitespace-split tokens of one phrase.
type Rule struct {
	Phrases         [][]string
	Exclusions      []string
	ProximityWindow int
	RequireOrder    bool
	UseStemming     bool
	ExclusionScope  ExclusionScope
}

// Result is a single phrase occurrence found in content.
type Result struct {
	MatchedPhrase  string
	SpanStart      int
	SpanEnd        int
	Snippet        string
	ProximityScore float64
}

const snippetLength = 200

// FindMatches evaluates rule against normalized content and returns every
// occurrence that survives the rule's exclusions.
func FindMatches(content normalize.Result, rule Rule) []Result {
	if content.Text == "" || len(content.Tokens) == 0 {
		return nil
	}

	tokens := content.Tokens
	text := content.Text
	offsets := buildTokenOffsets(tokens, text)

	compareTokens := tokens
	if rule.UseStemming {
		compareTokens = make([]string, len(tokens))
		for i, t := range tokens {
			compareTokens[i] = stem(t)
		}
	}

	window := rule.ProximityWindow
	if window <= 0 {
		window = 15
	}

	if len(rule.Exclusions) > 0 && rule.ExclusionScope == ExclusionAnywhere {
		if anywhereExcluded(compareTokens, rule.Exclusions, rule.UseStemming) {
			return nil
		}
	}

	var results []Result

	for _, phraseTokens := range rule.Phrases {
		if len(phraseTokens) == 0 {
			continue
		}

		phraseStemmed := make([]string, len(phraseTokens))
		for i, t := range phraseTokens {
			lower := strings.ToLower(t)
			if rule.UseStemming {
				phraseStemmed[i] = stem(lower)
			} else {
				phraseStemmed[i] = lower
			}
		}

		occurrences := findPhraseMatches(compareTokens, phraseStemmed, window, rule.RequireOrder)

		for _, indices := range occurrences {
			if len(rule.Exclusions) > 0 && rule.ExclusionScope == ExclusionProximity {
				if hasProximityExclusion(compareTokens, indices, rule.Exclusions, window, rule.UseStemming) {
					continue
				}
			}

			first := indices[0]
			last := indices[len(indices)-1]
			spanStart := offsets[first]
			spanEnd := offsets[last] + len(tokens[last])

			results = append(results, Result{
				MatchedPhrase:  strings.Join(phraseTokens, " "),
				SpanStart:      spanStart,
				SpanEnd:        spanEnd,
				Snippet:        generateSnippet(text, spanStart, spanEnd),
				ProximityScore: proximityScore(indices),
			})
		}
	}

	return results
}

func buildTokenOffsets(tokens []string, text string) []int {
	offsets := make([]int, len(tokens))
	searchStart := 0
	for i, token := range tokens {
		idx := strings.Index(text[searchStart:], token)
		if idx == -1 {
			offsets[i] = searchStart
			continue
		}
		idx += searchStart
		offsets[i] = idx
		searchStart = idx + len(token)
	}
	return offsets
}

func anywhereExcluded(tokens []string, exclusions []string, useStemming bool) bool {
	set := exclusionSet(exclusions, useStemming)
	for _, t := range tokens {
		if set[t] {
			return true
		}
	}
	return false
}

func exclusionSet(exclusions []string, useStemming bool) map[string]bool {
	set := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		lower := strings.ToLower(e)
		if useStemming {
			lower = stem(lower)
		}
		set[lower] = true
	}
	return set
}

// findPhraseMatches returns, for each occurrence of phraseStemmed within
// tokens, the list of token indices that form the match.
func findPhraseMatches(tokens []string, phraseStemmed []string, window int, requireOrder bool) [][]int {
	if len(phraseStemmed) == 1 {
		target := phraseStemmed[0]
		var matches [][]int
		for i, t := range tokens {
			if t == target {
				matches = append(matches, []int{i})
			}
		}
		return matches
	}

	positions := make([][]int, len(phraseStemmed))
	for j, pt := range phraseStemmed {
		for i, t := range tokens {
			if t == pt {
				positions[j] = append(positions[j], i)
			}
		}
		if len(positions[j]) == 0 {
			return nil
		}
	}

	var matches [][]int
	for _, anchor := range positions[0] {
		combo := findCombination(positions, window, requireOrder, []int{anchor}, 1)
		if combo != nil {
			matches = append(matches, combo)
		}
	}
	return matches
}

func findCombination(positions [][]int, window int, requireOrder bool, current []int, tokenIdx int) []int {
	if tokenIdx >= len(positions) {
		return current
	}

	for _, pos := range positions[tokenIdx] {
		if containsInt(current, pos) {
			continue
		}

		candidate := append(append([]int{}, current...), pos)
		if spanOf(candidate) >= window {
			continue
		}
		if requireOrder && pos <= current[len(current)-1] {
			continue
		}

		if result := findCombination(positions, window, requireOrder, candidate, tokenIdx+1); result != nil {
			return result
		}
	}
	return nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func spanOf(positions []int) int {
	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return hi - lo
}

func hasProximityExclusion(tokens []string, matchedIndices []int, exclusions []string, window int, useStemming bool) bool {
	set := exclusionSet(exclusions, useStemming)

	lo, hi := matchedIndices[0], matchedIndices[0]
	for _, p := range matchedIndices[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}

	windowStart := lo - window
	if windowStart < 0 {
		windowStart = 0
	}
	windowEnd := hi + window + 1
	if windowEnd > len(tokens) {
		windowEnd = len(tokens)
	}

	for i := windowStart; i < windowEnd; i++ {
		if set[tokens[i]] {
			return true
		}
	}
	return false
}

func generateSnippet(text string, spanStart, spanEnd int) string {
	if len(text) <= snippetLength {
		return text
	}

	center := (spanStart + spanEnd) / 2
	half := snippetLength / 2
	start := center - half
	if start < 0 {
		start = 0
	}
	end := start + snippetLength
	if end > len(text) {
		end = len(text)
		start = end - snippetLength
		if start < 0 {
			start = 0
		}
	}

	snippet := []byte(text[start:end])
	if start > 0 && len(snippet) >= 3 {
		copy(snippet[:3], "...")
	}
	if end < len(text) && len(snippet) >= 3 {
		copy(snippet[len(snippet)-3:], "...")
	}
	return string(snippet)
}

func proximityScore(positions []int) float64 {
	if len(positions) <= 1 {
		return 1.0
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	span := hi - lo
	minSpan := len(positions) - 1
	if span <= minSpan {
		return 1.0
	}

	score := float64(minSpan) / float64(span)
	if score < 0.1 {
		return 0.1
	}
	return score
}
