package match

import (
	"strings"
	"testing"

	"github.com/keywatch/keywatch/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phrases(words ...string) [][]string {
	var out [][]string
	for _, w := range words {
		out = append(out, strings.Fields(w))
	}
	return out
}

func TestFindMatches_SingleTokenHit(t *testing.T) {
	content := normalize.Normalize("I love arbitrage betting strategies")
	rule := Rule{Phrases: phrases("arbitrage"), ProximityWindow: 15}

	results := FindMatches(content, rule)

	require.Len(t, results, 1)
	assert.Equal(t, "arbitrage", results[0].MatchedPhrase)
	assert.Equal(t, 1.0, results[0].ProximityScore)
}

func TestFindMatches_ProximityWithinWindow(t *testing.T) {
	content := normalize.Normalize("arbitrage is a common strategy in sports betting")
	rule := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 15}

	results := FindMatches(content, rule)

	require.Len(t, results, 1)
	assert.Less(t, results[0].ProximityScore, 1.0)
}

func TestFindMatches_OutOfWindow(t *testing.T) {
	filler := strings.Repeat("word ", 20)
	content := normalize.Normalize("arbitrage " + filler + "betting")
	rule := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 5}

	assert.Empty(t, FindMatches(content, rule))
}

func TestFindMatches_AnywhereExclusion(t *testing.T) {
	content := normalize.Normalize("arbitrage betting is a scam")
	rule := Rule{
		Phrases:         phrases("arbitrage betting"),
		Exclusions:      []string{"scam"},
		ExclusionScope:  ExclusionAnywhere,
		ProximityWindow: 15,
	}

	assert.Empty(t, FindMatches(content, rule))
}

func TestFindMatches_Ordering(t *testing.T) {
	content := normalize.Normalize("betting on arbitrage opportunities")

	ordered := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 15, RequireOrder: true}
	assert.Empty(t, FindMatches(content, ordered))

	unordered := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 15, RequireOrder: false}
	assert.Len(t, FindMatches(content, unordered), 1)
}

func TestFindMatches_ProximityExclusionScope(t *testing.T) {
	content := normalize.Normalize("arbitrage betting far away scam word padding padding padding padding padding padding padding padding")
	rule := Rule{
		Phrases:         phrases("arbitrage betting"),
		Exclusions:      []string{"scam"},
		ExclusionScope:  ExclusionProximity,
		ProximityWindow: 2,
	}

	// "scam" sits just outside the narrow proximity window, so the match survives.
	assert.Len(t, FindMatches(content, rule), 1)
}

func TestFindMatches_MonotoneInWindow(t *testing.T) {
	filler := strings.Repeat("word ", 10)
	content := normalize.Normalize("arbitrage " + filler + "betting")

	narrow := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 3}
	wide := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 100}

	assert.Empty(t, FindMatches(content, narrow))
	assert.Len(t, FindMatches(content, wide), 1)
}

func TestFindMatches_NoMatchWhenTokenMissing(t *testing.T) {
	content := normalize.Normalize("nothing relevant here")
	rule := Rule{Phrases: phrases("arbitrage betting"), ProximityWindow: 15}

	assert.Empty(t, FindMatches(content, rule))
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"betting": "bet",
		"runs":    "run",
		"cat":     "cat",
		"the":     "the",
	}
	for input, want := range cases {
		assert.Equal(t, want, stem(input), "stem(%q)", input)
	}
}
