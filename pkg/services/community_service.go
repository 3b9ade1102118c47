package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/monitoredcommunity"
)

// NewCommunityInput is the input for provisioning a monitored community.
type NewCommunityInput struct {
	TenantID          string
	Name              string
	IncludeMediaPosts bool
	DedupeCrossposts  bool
	FilterBots        bool
}

// CommunityService manages monitored communities (subreddit-equivalent feeds).
type CommunityService struct {
	client *ent.Client
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(client *ent.Client) *CommunityService {
	if client == nil {
		panic("NewCommunityService: client must not be nil")
	}
	return &CommunityService{client: client}
}

// Create strips a leading "r/", lowercases, validates the name against the
// accepted character set, and persists a new monitor.
func (s *CommunityService) Create(ctx context.Context, input NewCommunityInput) (*ent.MonitoredCommunity, error) {
	name, err := normalizeCommunityName(input.Name)
	if err != nil {
		return nil, err
	}

	community, err := s.client.MonitoredCommunity.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetName(name).
		SetIncludeMediaPosts(input.IncludeMediaPosts).
		SetDedupeCrossposts(input.DedupeCrossposts).
		SetFilterBots(input.FilterBots).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create monitored community: %w", err)
	}
	return community, nil
}

// ListActive returns every community with status "active", across all
// tenants, for the ingestor's polling pass.
func (s *CommunityService) ListActive(ctx context.Context) ([]*ent.MonitoredCommunity, error) {
	communities, err := s.client.MonitoredCommunity.Query().
		Where(monitoredcommunity.StatusEQ(monitoredcommunity.StatusActive)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active communities: %w", err)
	}
	return communities, nil
}

// DistinctActiveNames returns the set of distinct community names that have
// at least one active monitor, so the ingestor fetches each upstream feed
// once regardless of how many tenants watch it.
func (s *CommunityService) DistinctActiveNames(ctx context.Context) ([]string, error) {
	communities, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(communities))
	var names []string
	for _, c := range communities {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	return names, nil
}

// ActiveTenantsForCommunity returns the tenant IDs actively monitoring the
// given community name, for the match engine to scope rule evaluation.
func (s *CommunityService) ActiveTenantsForCommunity(ctx context.Context, community string) ([]string, error) {
	communities, err := s.client.MonitoredCommunity.Query().
		Where(
			monitoredcommunity.NameEQ(community),
			monitoredcommunity.StatusEQ(monitoredcommunity.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenants for community %q: %w", community, err)
	}

	tenantIDs := make([]string, 0, len(communities))
	for _, c := range communities {
		tenantIDs = append(tenantIDs, c.TenantID)
	}
	return tenantIDs, nil
}

// MarkInaccessible flips every monitor of the given community name to the
// "inaccessible" status after the upstream feed returns 403/404, so future
// polling passes skip it until an operator re-activates it.
func (s *CommunityService) MarkInaccessible(ctx context.Context, name string) error {
	_, err := s.client.MonitoredCommunity.Update().
		Where(monitoredcommunity.NameEQ(name)).
		SetStatus(monitoredcommunity.StatusInaccessible).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark community %q inaccessible: %w", name, err)
	}
	return nil
}
