// Package matchengine runs newly ingested content against every tenant's
// active keyword rules and persists the hits as matches.
package matchengine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/contentitem"
	entmatch "github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/pkg/match"
	"github.com/keywatch/keywatch/pkg/normalize"
	"github.com/keywatch/keywatch/pkg/services"
)

// RuleLister returns every active keyword rule across all tenants.
// Satisfied by *services.RuleService.
type RuleLister interface {
	ListActive(ctx context.Context, now time.Time) ([]*ent.KeywordRule, error)
}

// TenantResolver maps a community name to the tenants actively monitoring
// it. Satisfied by *services.CommunityService.
type TenantResolver interface {
	ActiveTenantsForCommunity(ctx context.Context, community string) ([]string, error)
}

// MatchStore persists matches. Satisfied by *services.MatchService.
type MatchStore interface {
	Create(ctx context.Context, input services.NewMatchInput) (*ent.Match, error)
}

// Engine evaluates content against rules and records matches.
type Engine struct {
	rules   RuleLister
	tenants TenantResolver
	store   MatchStore
	logger  *slog.Logger
}

// NewEngine builds a match Engine.
func NewEngine(rules RuleLister, tenants TenantResolver, store MatchStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{rules: rules, tenants: tenants, store: store, logger: logger}
}

// candidatePair is one active rule paired with the matcher-ready view of
// its phrases, cached per ProcessBatch call.
type candidatePair struct {
	rule    *ent.KeywordRule
	matcher match.Rule
}

// ProcessBatch evaluates every content item against all applicable active
// rules and returns the matches created. A single database round trip
// loads all active rules up front; tenant-for-community lookups are cached
// per distinct community within the batch.
func (e *Engine) ProcessBatch(ctx context.Context, contents []*ent.ContentItem) ([]*ent.Match, error) {
	rules, err := e.rules.ListActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}

	byTenant := make(map[string][]candidatePair)
	for _, r := range rules {
		byTenant[r.TenantID] = append(byTenant[r.TenantID], candidatePair{rule: r, matcher: toMatchRule(r)})
	}

	tenantsByCommunity := make(map[string][]string)

	var created []*ent.Match
	for _, content := range contents {
		matches, err := e.processContent(ctx, content, byTenant, tenantsByCommunity)
		if err != nil {
			return created, err
		}
		created = append(created, matches...)
	}
	return created, nil
}

// ProcessContent evaluates a single content item against applicable rules.
func (e *Engine) ProcessContent(ctx context.Context, content *ent.ContentItem) ([]*ent.Match, error) {
	rules, err := e.rules.ListActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}
	byTenant := make(map[string][]candidatePair)
	for _, r := range rules {
		byTenant[r.TenantID] = append(byTenant[r.TenantID], candidatePair{rule: r, matcher: toMatchRule(r)})
	}
	return e.processContent(ctx, content, byTenant, make(map[string][]string))
}

func (e *Engine) processContent(ctx context.Context, content *ent.ContentItem, byTenant map[string][]candidatePair, tenantsByCommunity map[string][]string) ([]*ent.Match, error) {
	tenantIDs, ok := tenantsByCommunity[content.Community]
	if !ok {
		var err error
		tenantIDs, err = e.tenants.ActiveTenantsForCommunity(ctx, content.Community)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tenants for community %s: %w", content.Community, err)
		}
		tenantsByCommunity[content.Community] = tenantIDs
	}
	if len(tenantIDs) == 0 {
		return nil, nil
	}

	normalized := normalize.Result{
		Text:   content.NormalizedText,
		Tokens: strings.Fields(content.NormalizedText),
	}

	var created []*ent.Match
	for _, tenantID := range tenantIDs {
		candidates := byTenant[tenantID]
		if len(candidates) == 0 {
			continue
		}

		type hit struct {
			rule   *ent.KeywordRule
			result match.Result
		}
		var hits []hit
		for _, c := range candidates {
			for _, r := range match.FindMatches(normalized, c.matcher) {
				hits = append(hits, hit{rule: c.rule, result: r})
			}
		}
		if len(hits) == 0 {
			continue
		}

		distinctPhrases := make(map[string]struct{}, len(hits))
		var orderedPhrases []string
		for _, h := range hits {
			if _, seen := distinctPhrases[h.result.MatchedPhrase]; !seen {
				distinctPhrases[h.result.MatchedPhrase] = struct{}{}
				orderedPhrases = append(orderedPhrases, h.result.MatchedPhrase)
			}
		}

		redditURL := fmt.Sprintf("https://reddit.com/r/%s/comments/%s", content.Community, content.SourceID)

		for _, h := range hits {
			var also []string
			for _, p := range orderedPhrases {
				if p != h.result.MatchedPhrase {
					also = append(also, p)
				}
			}

			m, err := e.store.Create(ctx, services.NewMatchInput{
				TenantID:       tenantID,
				KeywordRuleID:  h.rule.ID,
				ContentID:      content.ID,
				Kind:           toMatchKind(content.Kind),
				Community:      content.Community,
				MatchedPhrase:  h.result.MatchedPhrase,
				AlsoMatched:    also,
				Snippet:        h.result.Snippet,
				FullText:       content.Body,
				ProximityScore: h.result.ProximityScore,
				RedditURL:      redditURL,
				Author:         content.Author,
			})
			if err != nil {
				if err == services.ErrAlreadyExists {
					continue
				}
				return created, fmt.Errorf("failed to persist match: %w", err)
			}
			created = append(created, m)
		}
	}

	if len(created) > 0 {
		e.logger.Info("created matches for content", "content_id", content.ID, "count", len(created))
	}

	return created, nil
}

// toMatchKind maps a content item's kind onto the Match entity's own kind
// enum, which mirrors it field-for-field.
func toMatchKind(k contentitem.Kind) entmatch.Kind {
	if k == contentitem.KindComment {
		return entmatch.KindComment
	}
	return entmatch.KindPost
}

// toMatchRule converts a stored keyword rule into the matcher's Rule shape.
// Phrases are stored as flat strings (each may contain multiple words); the
// matcher expects tokenized phrases.
func toMatchRule(r *ent.KeywordRule) match.Rule {
	phrases := make([][]string, 0, len(r.Phrases))
	for _, p := range r.Phrases {
		phrases = append(phrases, strings.Fields(p))
	}

	scope := match.ExclusionAnywhere
	if string(r.ExclusionScope) == string(match.ExclusionProximity) {
		scope = match.ExclusionProximity
	}

	return match.Rule{
		Phrases:         phrases,
		Exclusions:      r.Exclusions,
		ProximityWindow: r.ProximityWindow,
		RequireOrder:    r.RequireOrder,
		UseStemming:     r.UseStemming,
		ExclusionScope:  scope,
	}
}
