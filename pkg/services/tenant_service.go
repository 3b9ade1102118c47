package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/keywatch/keywatch/ent"
)

// NewTenantInput is the input for provisioning a tenant.
type NewTenantInput struct {
	ContactEmail        *string
	PollIntervalMinutes int
}

// TenantService reads tenant records for other services and handlers that
// need tenant-scoped context (contact email for the dispatcher's failure
// fallback, poll interval for per-tenant overrides).
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService.
func NewTenantService(client *ent.Client) *TenantService {
	if client == nil {
		panic("NewTenantService: client must not be nil")
	}
	return &TenantService{client: client}
}

// Create provisions a new tenant. PollIntervalMinutes of 0 falls back to the
// schema default of 60.
func (s *TenantService) Create(ctx context.Context, input NewTenantInput) (*ent.Tenant, error) {
	builder := s.client.Tenant.Create().SetID(uuid.New().String())
	if input.ContactEmail != nil {
		builder.SetContactEmail(*input.ContactEmail)
	}
	if input.PollIntervalMinutes > 0 {
		builder.SetPollIntervalMinutes(input.PollIntervalMinutes)
	}

	tenant, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

// Get returns a tenant by ID.
func (s *TenantService) Get(ctx context.Context, id string) (*ent.Tenant, error) {
	tenant, err := s.client.Tenant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}
