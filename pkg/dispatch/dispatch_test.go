package dispatch

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchStore struct {
	mu      sync.Mutex
	pending map[string][]*ent.Match
	sentIDs []string
	failIDs []string
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{pending: make(map[string][]*ent.Match)}
}

func (f *fakeMatchStore) ListDistinctPendingTenants(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, ms := range f.pending {
		if len(ms) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeMatchStore) ListPendingForTenant(_ context.Context, tenantID string) ([]*ent.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]*ent.Match(nil), f.pending[tenantID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].DetectedAt.Before(out[j].DetectedAt) })
	return out, nil
}

func (f *fakeMatchStore) MarkSent(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentIDs = append(f.sentIDs, ids...)
	f.remove(ids)
	return nil
}

func (f *fakeMatchStore) MarkFailed(_ context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs = append(f.failIDs, ids...)
	f.remove(ids)
	return nil
}

func (f *fakeMatchStore) remove(ids []string) {
	done := make(map[string]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	for tenant, ms := range f.pending {
		var kept []*ent.Match
		for _, m := range ms {
			if !done[m.ID] {
				kept = append(kept, m)
			}
		}
		f.pending[tenant] = kept
	}
}

type fakeWebhookResolver struct {
	endpoints map[string]*ent.WebhookEndpoint
}

func (f *fakeWebhookResolver) ResolveForTenant(_ context.Context, tenantID string) (*ent.WebhookEndpoint, error) {
	ep, ok := f.endpoints[tenantID]
	if !ok {
		return nil, errNotFound
	}
	return ep, nil
}

type fakeTenantGetter struct {
	tenants map[string]*ent.Tenant
}

func (f *fakeTenantGetter) Get(_ context.Context, id string) (*ent.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

type fakeSender struct {
	mu       sync.Mutex
	results  []bool
	payloads []any
}

func (f *fakeSender) Send(_ context.Context, _ string, payload any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	if len(f.results) == 0 {
		return true
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r
}

type fakeNotifier struct {
	notices []FallbackNotice
}

func (f *fakeNotifier) Notify(_ context.Context, n FallbackNotice) {
	f.notices = append(f.notices, n)
}

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

const errNotFound = simpleErr("not found")

func match(tenantID, id string, detectedAt time.Time) *ent.Match {
	return &ent.Match{
		ID:             id,
		TenantID:       tenantID,
		MatchedPhrase:  "arbitrage",
		Community:      "sportsbetting",
		Snippet:        "arbitrage betting snippet",
		ProximityScore: 1.0,
		RedditURL:      "https://reddit.com/r/sportsbetting/comments/" + id,
		DetectedAt:     detectedAt,
	}
}

func TestDispatcher_BatchesThreeMatchesWithinWindow(t *testing.T) {
	store := newFakeMatchStore()
	base := time.Now()
	store.pending["t1"] = []*ent.Match{
		match("t1", "m1", base),
		match("t1", "m2", base.Add(30*time.Second)),
		match("t1", "m3", base.Add(60*time.Second)),
	}

	resolver := &fakeWebhookResolver{endpoints: map[string]*ent.WebhookEndpoint{
		"t1": {URL: "https://discord.com/api/webhooks/1/abc", IsActive: true, IsPrimary: true},
	}}
	sender := &fakeSender{}

	d := NewDispatcher(store, store, resolver, &fakeTenantGetter{}, sender, nil, config.DefaultDispatchConfig(), nil)

	summary, err := d.DispatchPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Len(t, sender.payloads, 1, "three matches within the batch window must be sent as a single message")
	assert.ElementsMatch(t, []string{"m1", "m2", "m3"}, store.sentIDs)
}

func TestDispatcher_DoesNotBatchWhenSpanExceedsWindow(t *testing.T) {
	store := newFakeMatchStore()
	base := time.Now()
	store.pending["t1"] = []*ent.Match{
		match("t1", "m1", base),
		match("t1", "m2", base.Add(30*time.Second)),
		match("t1", "m3", base.Add(200*time.Second)),
	}

	resolver := &fakeWebhookResolver{endpoints: map[string]*ent.WebhookEndpoint{
		"t1": {URL: "https://discord.com/api/webhooks/1/abc", IsActive: true, IsPrimary: true},
	}}
	sender := &fakeSender{}

	d := NewDispatcher(store, store, resolver, &fakeTenantGetter{}, sender, nil, config.DefaultDispatchConfig(), nil)

	summary, err := d.DispatchPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Sent)
	assert.Len(t, sender.payloads, 3, "matches spanning more than the batch window must be sent individually")
}

func TestDispatcher_FailureMarksFailedAndNotifiesFallback(t *testing.T) {
	store := newFakeMatchStore()
	store.pending["t1"] = []*ent.Match{match("t1", "m1", time.Now())}

	resolver := &fakeWebhookResolver{endpoints: map[string]*ent.WebhookEndpoint{
		"t1": {URL: "https://discord.com/api/webhooks/1/abc", IsActive: true, IsPrimary: true},
	}}
	email := "ops@example.com"
	tenants := &fakeTenantGetter{tenants: map[string]*ent.Tenant{
		"t1": {ID: "t1", ContactEmail: &email},
	}}
	sender := &fakeSender{results: []bool{false}}
	notifier := &fakeNotifier{}

	d := NewDispatcher(store, store, resolver, tenants, sender, notifier, config.DefaultDispatchConfig(), nil)

	summary, err := d.DispatchPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"m1"}, store.failIDs)
	require.Len(t, notifier.notices, 1)
	assert.Equal(t, email, notifier.notices[0].Email)
}

func TestDispatcher_SkipsTenantWithNoActiveWebhook(t *testing.T) {
	store := newFakeMatchStore()
	store.pending["t1"] = []*ent.Match{match("t1", "m1", time.Now())}

	d := NewDispatcher(store, store, &fakeWebhookResolver{endpoints: map[string]*ent.WebhookEndpoint{}},
		&fakeTenantGetter{}, &fakeSender{}, nil, config.DefaultDispatchConfig(), nil)

	summary, err := d.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
}
