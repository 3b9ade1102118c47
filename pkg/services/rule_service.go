package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/keywordrule"
)

// NewRuleInput is the input for provisioning a keyword rule. There is no
// HTTP CRUD surface over this, but tests and any future provisioning entry
// point construct rules through here so the validation bounds are always
// enforced.
type NewRuleInput struct {
	TenantID        string
	Phrases         []string
	Exclusions      []string
	ProximityWindow int
	RequireOrder    bool
	UseStemming     bool
	ExclusionScope  keywordrule.ExclusionScope
}

// RuleService reads keyword rules for the match engine.
type RuleService struct {
	client *ent.Client
}

// NewRuleService creates a new RuleService.
func NewRuleService(client *ent.Client) *RuleService {
	if client == nil {
		panic("NewRuleService: client must not be nil")
	}
	return &RuleService{client: client}
}

// Create validates and persists a new keyword rule.
func (s *RuleService) Create(ctx context.Context, input NewRuleInput) (*ent.KeywordRule, error) {
	if err := validatePhrases(input.Phrases); err != nil {
		return nil, err
	}
	if err := validateExclusions(input.Exclusions); err != nil {
		return nil, err
	}

	phrases := make([]string, len(input.Phrases))
	for i, p := range input.Phrases {
		phrases[i] = sanitizePhrase(p)
	}

	scope := input.ExclusionScope
	if scope == "" {
		scope = keywordrule.ExclusionScopeAnywhere
	}

	builder := s.client.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetPhrases(phrases).
		SetProximityWindow(input.ProximityWindow).
		SetRequireOrder(input.RequireOrder).
		SetUseStemming(input.UseStemming).
		SetExclusionScope(scope)
	if len(input.Exclusions) > 0 {
		builder.SetExclusions(input.Exclusions)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword rule: %w", err)
	}
	return rule, nil
}

// ListActive returns every rule that is active and not currently silenced,
// with its owning tenant eager-loaded, for a single match-engine pass.
func (s *RuleService) ListActive(ctx context.Context, now time.Time) ([]*ent.KeywordRule, error) {
	rules, err := s.client.KeywordRule.Query().
		Where(
			keywordrule.IsActiveEQ(true),
			keywordrule.Or(
				keywordrule.SilencedUntilIsNil(),
				keywordrule.SilencedUntilLT(now),
			),
		).
		WithTenant().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active keyword rules: %w", err)
	}
	return rules, nil
}
