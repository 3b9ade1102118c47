// Package dispatch batches pending matches per tenant, renders chat
// embeds, and delivers them over outgoing webhooks with retry, updating
// each match's alert status on completion.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/pkg/config"
)

// MatchLister serves the dispatcher's pending-delivery queries. Satisfied
// by *services.MatchService.
type MatchLister interface {
	ListDistinctPendingTenants(ctx context.Context) ([]string, error)
	ListPendingForTenant(ctx context.Context, tenantID string) ([]*ent.Match, error)
}

// MatchUpdater flips delivered/failed matches' alert status. Satisfied by
// *services.MatchService.
type MatchUpdater interface {
	MarkSent(ctx context.Context, ids []string) error
	MarkFailed(ctx context.Context, ids []string) error
}

// WebhookResolver resolves a tenant's outbound delivery target. Satisfied
// by *services.WebhookEndpointService.
type WebhookResolver interface {
	ResolveForTenant(ctx context.Context, tenantID string) (*ent.WebhookEndpoint, error)
}

// TenantGetter reads a tenant's contact email for the failure fallback.
// Satisfied by *services.TenantService.
type TenantGetter interface {
	Get(ctx context.Context, id string) (*ent.Tenant, error)
}

// Sender POSTs a JSON payload to a URL, retrying per its own backoff
// policy, and reports overall success. Satisfied by *webhook.Client.
type Sender interface {
	Send(ctx context.Context, targetURL string, payload any) bool
}

// Summary reports the outcome of one dispatch pass. Total counts every
// pending match loaded, including those of tenants that were skipped.
type Summary struct {
	Sent   int
	Failed int
	Total  int
}

// Dispatcher drains pending matches, batching per tenant within a short
// detection window, and delivers them over webhook.
type Dispatcher struct {
	matches  MatchLister
	updater  MatchUpdater
	webhooks WebhookResolver
	tenants  TenantGetter
	sender   Sender
	fallback FallbackNotifier
	cfg      *config.DispatchConfig
	logger   *slog.Logger
}

// NewDispatcher builds a Dispatcher.
func NewDispatcher(
	matches MatchLister,
	updater MatchUpdater,
	webhooks WebhookResolver,
	tenants TenantGetter,
	sender Sender,
	fallback FallbackNotifier,
	cfg *config.DispatchConfig,
	logger *slog.Logger,
) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if fallback == nil {
		fallback = NewLogOnlyNotifier(logger)
	}
	return &Dispatcher{
		matches:  matches,
		updater:  updater,
		webhooks: webhooks,
		tenants:  tenants,
		sender:   sender,
		fallback: fallback,
		cfg:      cfg,
		logger:   logger,
	}
}

// DispatchPending loads every pending match grouped by tenant, renders and
// sends either one batched message per tenant (when the batching rule
// applies) or one message per match, and updates each match's alert status.
func (d *Dispatcher) DispatchPending(ctx context.Context) (Summary, error) {
	tenantIDs, err := d.matches.ListDistinctPendingTenants(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list tenants with pending matches: %w", err)
	}

	var summary Summary
	for _, tenantID := range tenantIDs {
		matches, err := d.matches.ListPendingForTenant(ctx, tenantID)
		if err != nil {
			d.logger.Error("failed to list pending matches for tenant", "tenant_id", tenantID, "error", err)
			continue
		}
		if len(matches) == 0 {
			continue
		}

		sent, failed := d.dispatchTenant(ctx, tenantID, matches)
		summary.Sent += sent
		summary.Failed += failed
		summary.Total += len(matches)
	}

	return summary, nil
}

// dispatchTenant resolves the tenant's endpoint and sends either one
// batched message (if the batching rule applies) or one message per match,
// returning counts of matches marked sent/failed.
func (d *Dispatcher) dispatchTenant(ctx context.Context, tenantID string, matches []*ent.Match) (sent, failed int) {
	endpoint, err := d.webhooks.ResolveForTenant(ctx, tenantID)
	if err != nil {
		d.logger.Warn("skipping tenant with no active webhook endpoint", "tenant_id", tenantID, "error", err)
		return 0, 0
	}

	groups := d.groupForDispatch(matches)
	for _, group := range groups {
		var payload embedPayload
		if len(group) > 1 {
			payload = batchEmbed(group)
		} else {
			payload = singleEmbed(group[0])
		}

		ok := d.sender.Send(ctx, endpoint.URL, payload)
		ids := matchIDs(group)
		if ok {
			if err := d.updater.MarkSent(ctx, ids); err != nil {
				d.logger.Error("failed to mark matches sent", "tenant_id", tenantID, "error", err)
				continue
			}
			sent += len(group)
			continue
		}

		if err := d.updater.MarkFailed(ctx, ids); err != nil {
			d.logger.Error("failed to mark matches failed", "tenant_id", tenantID, "error", err)
		}
		failed += len(group)

		tenant, tErr := d.tenants.Get(ctx, tenantID)
		if tErr != nil {
			d.logger.Error("failed to load tenant for fallback notification", "tenant_id", tenantID, "error", tErr)
			tenant = nil
		}
		d.maybeNotify(ctx, tenant, group)
	}

	return sent, failed
}

// groupForDispatch splits a tenant's pending matches (already ordered by
// detected_at ascending) into outgoing messages: one batched message when
// count >= BatchMinCount and the detected_at span is within BatchWindow,
// otherwise one message per match.
func (d *Dispatcher) groupForDispatch(matches []*ent.Match) [][]*ent.Match {
	if len(matches) >= d.cfg.BatchMinCount {
		span := matches[len(matches)-1].DetectedAt.Sub(matches[0].DetectedAt)
		if span <= d.cfg.BatchWindow {
			return [][]*ent.Match{matches}
		}
	}

	groups := make([][]*ent.Match, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, []*ent.Match{m})
	}
	return groups
}

func matchIDs(matches []*ent.Match) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}
