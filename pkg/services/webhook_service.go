package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/webhookendpoint"
	"github.com/keywatch/keywatch/pkg/webhook"
)

// NewWebhookEndpointInput is the input for provisioning a webhook endpoint.
type NewWebhookEndpointInput struct {
	TenantID  string
	URL       string
	GuildName *string
	IsPrimary bool
}

// WebhookEndpointService resolves a tenant's delivery target.
type WebhookEndpointService struct {
	client       *ent.Client
	allowPattern string
}

// NewWebhookEndpointService creates a new WebhookEndpointService.
// allowPattern is the accepted chat-provider URL pattern (the same
// pattern pkg/config's WebhookConfig validates at load time).
func NewWebhookEndpointService(client *ent.Client, allowPattern string) *WebhookEndpointService {
	if client == nil {
		panic("NewWebhookEndpointService: client must not be nil")
	}
	return &WebhookEndpointService{client: client, allowPattern: allowPattern}
}

// Create validates the URL (accepted-provider shape, HTTPS, SSRF guard)
// and persists a new endpoint.
func (s *WebhookEndpointService) Create(ctx context.Context, input NewWebhookEndpointInput) (*ent.WebhookEndpoint, error) {
	if err := webhook.ValidateURL(ctx, input.URL, s.allowPattern); err != nil {
		return nil, NewValidationError("url", err.Error())
	}

	builder := s.client.WebhookEndpoint.Create().
		SetID(uuid.New().String()).
		SetTenantID(input.TenantID).
		SetURL(input.URL).
		SetIsPrimary(input.IsPrimary)
	if input.GuildName != nil {
		builder.SetGuildName(*input.GuildName)
	}

	endpoint, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook endpoint: %w", err)
	}
	return endpoint, nil
}

// ResolveForTenant returns the tenant's primary active webhook if one
// exists, falling back to any other active webhook. Returns ErrNotFound if
// the tenant has no active webhook at all.
func (s *WebhookEndpointService) ResolveForTenant(ctx context.Context, tenantID string) (*ent.WebhookEndpoint, error) {
	primary, err := s.client.WebhookEndpoint.Query().
		Where(
			webhookendpoint.TenantIDEQ(tenantID),
			webhookendpoint.IsActiveEQ(true),
			webhookendpoint.IsPrimaryEQ(true),
		).
		First(ctx)
	if err == nil {
		return primary, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query primary webhook: %w", err)
	}

	any, err := s.client.WebhookEndpoint.Query().
		Where(
			webhookendpoint.TenantIDEQ(tenantID),
			webhookendpoint.IsActiveEQ(true),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query active webhook: %w", err)
	}
	return any, nil
}

// MarkTested stamps the endpoint's last_tested_at after a successful
// delivery attempt, so an operator can see a webhook is still live.
func (s *WebhookEndpointService) MarkTested(ctx context.Context, id string, testedAt time.Time) error {
	_, err := s.client.WebhookEndpoint.UpdateOneID(id).
		SetLastTestedAt(testedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark webhook tested: %w", err)
	}
	return nil
}
