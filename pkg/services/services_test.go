package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywatch/keywatch/ent/keywordrule"
	"github.com/keywatch/keywatch/pkg/services"
	testdb "github.com/keywatch/keywatch/test/database"
)

const discordAllowPattern = `^https://discord\.com/api/webhooks/\d+/[\w-]+$`

func TestTenantService_Create(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	svc := services.NewTenantService(client.Client)

	email := "ops@example.com"
	tenant, err := svc.Create(ctx, services.NewTenantInput{ContactEmail: &email})
	require.NoError(t, err)
	assert.Equal(t, 60, tenant.PollIntervalMinutes)
	assert.Equal(t, email, *tenant.ContactEmail)

	fetched, err := svc.Get(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, fetched.ID)
}

func TestCommunityService_Create_NormalizesName(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewCommunityService(client.Client)
	community, err := svc.Create(ctx, services.NewCommunityInput{
		TenantID: tenant.ID,
		Name:     "r/GoLang",
	})
	require.NoError(t, err)
	assert.Equal(t, "golang", community.Name)
}

func TestCommunityService_Create_RejectsInvalidName(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewCommunityService(client.Client)
	_, err = svc.Create(ctx, services.NewCommunityInput{
		TenantID: tenant.ID,
		Name:     "not a valid name!",
	})
	require.Error(t, err)
}

func TestRuleService_Create_SanitizesAndValidatesPhrases(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewRuleService(client.Client)
	rule, err := svc.Create(ctx, services.NewRuleInput{
		TenantID:        tenant.ID,
		Phrases:         []string{"<script>zero day</script>", "rce"},
		ProximityWindow: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"scriptzero day/script", "rce"}, rule.Phrases)
	assert.Equal(t, keywordrule.ExclusionScopeAnywhere, rule.ExclusionScope)
}

func TestRuleService_Create_RejectsEmptyPhrases(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewRuleService(client.Client)
	_, err = svc.Create(ctx, services.NewRuleInput{TenantID: tenant.ID})
	require.Error(t, err)
}

func TestRuleService_Create_RejectsTooManyPhrases(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	phrases := make([]string, services.MaxKeywordPhrases+1)
	for i := range phrases {
		phrases[i] = "phrase"
	}

	svc := services.NewRuleService(client.Client)
	_, err = svc.Create(ctx, services.NewRuleInput{TenantID: tenant.ID, Phrases: phrases})
	require.Error(t, err)
}

func TestWebhookEndpointService_Create_RejectsNonAllowedURL(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewWebhookEndpointService(client.Client, discordAllowPattern)
	_, err = svc.Create(ctx, services.NewWebhookEndpointInput{
		TenantID: tenant.ID,
		URL:      "https://evil.example.com/webhook",
	})
	require.Error(t, err)
}

func TestWebhookEndpointService_Create_AcceptsAllowedURL(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tenantSvc := services.NewTenantService(client.Client)
	tenant, err := tenantSvc.Create(ctx, services.NewTenantInput{})
	require.NoError(t, err)

	svc := services.NewWebhookEndpointService(client.Client, discordAllowPattern)
	endpoint, err := svc.Create(ctx, services.NewWebhookEndpointInput{
		TenantID:  tenant.ID,
		URL:       "https://discord.com/api/webhooks/123456/abcDEF-ghi",
		IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, endpoint.IsPrimary)

	resolved, err := svc.ResolveForTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, endpoint.ID, resolved.ID)
}
