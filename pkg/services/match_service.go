package services

import (
	"context"
	"fmt"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/match"
	"github.com/google/uuid"
)

// NewMatchInput is a single keyword-rule hit produced by the match engine,
// ready to persist.
type NewMatchInput struct {
	TenantID       string
	KeywordRuleID  string
	ContentID      string
	Kind           match.Kind
	Community      string
	MatchedPhrase  string
	AlsoMatched    []string
	Snippet        string
	FullText       string
	ProximityScore float64
	RedditURL      string
	Author         *string
}

// MatchService persists rule matches and serves the dispatcher's
// pending-delivery queries.
type MatchService struct {
	client *ent.Client
}

// NewMatchService creates a new MatchService.
func NewMatchService(client *ent.Client) *MatchService {
	if client == nil {
		panic("NewMatchService: client must not be nil")
	}
	return &MatchService{client: client}
}

// Create persists a single match in "pending" alert status.
func (s *MatchService) Create(ctx context.Context, input NewMatchInput) (*ent.Match, error) {
	builder := s.client.Match.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetKeywordRuleID(input.KeywordRuleID).
		SetContentID(input.ContentID).
		SetKind(input.Kind).
		SetCommunity(input.Community).
		SetMatchedPhrase(input.MatchedPhrase).
		SetSnippet(input.Snippet).
		SetFullText(input.FullText).
		SetProximityScore(input.ProximityScore).
		SetRedditURL(input.RedditURL).
		SetAlertStatus(match.AlertStatusPending)

	if len(input.AlsoMatched) > 0 {
		builder.SetAlsoMatched(input.AlsoMatched)
	}
	if input.Author != nil {
		builder.SetAuthor(*input.Author)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return m, nil
}

// ListPendingForTenant returns every undelivered match for a tenant, oldest
// first, for the dispatcher's batching window.
func (s *MatchService) ListPendingForTenant(ctx context.Context, tenantID string) ([]*ent.Match, error) {
	matches, err := s.client.Match.Query().
		Where(
			match.TenantIDEQ(tenantID),
			match.AlertStatusEQ(match.AlertStatusPending),
		).
		WithKeywordRule().
		Order(ent.Asc(match.FieldDetectedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending matches: %w", err)
	}
	return matches, nil
}

// ListDistinctPendingTenants returns the tenant IDs with at least one
// pending match, so the dispatcher only visits tenants with work to do.
func (s *MatchService) ListDistinctPendingTenants(ctx context.Context) ([]string, error) {
	var tenantIDs []string
	err := s.client.Match.Query().
		Where(match.AlertStatusEQ(match.AlertStatusPending)).
		GroupBy(match.FieldTenantID).
		Scan(ctx, &tenantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants with pending matches: %w", err)
	}
	return tenantIDs, nil
}

// MarkSent flags the given matches as delivered.
func (s *MatchService) MarkSent(ctx context.Context, ids []string) error {
	_, err := s.client.Match.Update().
		Where(match.IDIn(ids...)).
		SetAlertStatus(match.AlertStatusSent).
		SetAlertSentAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark matches sent: %w", err)
	}
	return nil
}

// MarkFailed flags the given matches as failed after exhausting delivery
// retries.
func (s *MatchService) MarkFailed(ctx context.Context, ids []string) error {
	_, err := s.client.Match.Update().
		Where(match.IDIn(ids...)).
		SetAlertStatus(match.AlertStatusFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark matches failed: %w", err)
	}
	return nil
}

// DeleteDetectedBefore removes matches detected before cutoff. Must run
// before ContentService.DeleteFetchedBefore since matches hold a required
// foreign key to content items.
func (s *MatchService) DeleteDetectedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Match.Delete().
		Where(match.DetectedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old matches: %w", err)
	}
	return count, nil
}
