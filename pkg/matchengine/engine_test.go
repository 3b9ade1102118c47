package matchengine

import (
	"context"
	"testing"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/contentitem"
	entmatch "github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleLister struct {
	rules []*ent.KeywordRule
}

func (f *fakeRuleLister) ListActive(_ context.Context, _ time.Time) ([]*ent.KeywordRule, error) {
	return f.rules, nil
}

type fakeTenantResolver struct {
	byCommunity map[string][]string
	calls       int
}

func (f *fakeTenantResolver) ActiveTenantsForCommunity(_ context.Context, community string) ([]string, error) {
	f.calls++
	return f.byCommunity[community], nil
}

type fakeMatchStore struct {
	created  []services.NewMatchInput
	existing map[string]bool
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{existing: make(map[string]bool)}
}

func (f *fakeMatchStore) Create(_ context.Context, input services.NewMatchInput) (*ent.Match, error) {
	key := input.TenantID + "|" + input.KeywordRuleID + "|" + input.ContentID
	if f.existing[key] {
		return nil, services.ErrAlreadyExists
	}
	f.existing[key] = true
	f.created = append(f.created, input)
	return &ent.Match{
		ID:            key,
		TenantID:      input.TenantID,
		MatchedPhrase: input.MatchedPhrase,
	}, nil
}

func rule(id, tenantID string, phrases ...string) *ent.KeywordRule {
	return &ent.KeywordRule{
		ID:              id,
		TenantID:        tenantID,
		Phrases:         phrases,
		ProximityWindow: 15,
		IsActive:        true,
	}
}

func content(id, community, normalized string) *ent.ContentItem {
	return &ent.ContentItem{
		ID:             id,
		SourceID:       "src-" + id,
		Community:      community,
		Kind:           contentitem.KindPost,
		Body:           normalized,
		NormalizedText: normalized,
	}
}

func TestEngine_ProcessBatch_RecordsAlsoMatchedAcrossRules(t *testing.T) {
	rules := &fakeRuleLister{rules: []*ent.KeywordRule{
		rule("r1", "t1", "arbitrage"),
		rule("r2", "t1", "betting"),
	}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{
		"sportsbook": {"t1"},
	}}
	store := newFakeMatchStore()

	e := NewEngine(rules, tenants, store, nil)
	created, err := e.ProcessBatch(context.Background(),
		[]*ent.ContentItem{content("c1", "sportsbook", "arbitrage is a common strategy in sports betting")})
	require.NoError(t, err)
	require.Len(t, created, 2)

	byPhrase := make(map[string]services.NewMatchInput, len(store.created))
	for _, in := range store.created {
		byPhrase[in.MatchedPhrase] = in
	}
	assert.Equal(t, []string{"betting"}, byPhrase["arbitrage"].AlsoMatched)
	assert.Equal(t, []string{"arbitrage"}, byPhrase["betting"].AlsoMatched)
	assert.Equal(t, entmatch.KindPost, byPhrase["arbitrage"].Kind)
	assert.Contains(t, byPhrase["arbitrage"].RedditURL, "/r/sportsbook/")
}

func TestEngine_ProcessBatch_SkipsUnmonitoredCommunity(t *testing.T) {
	rules := &fakeRuleLister{rules: []*ent.KeywordRule{rule("r1", "t1", "arbitrage")}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{}}
	store := newFakeMatchStore()

	e := NewEngine(rules, tenants, store, nil)
	created, err := e.ProcessBatch(context.Background(),
		[]*ent.ContentItem{content("c1", "gardening", "arbitrage everywhere")})
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, store.created)
}

func TestEngine_ProcessBatch_CachesTenantLookupPerCommunity(t *testing.T) {
	rules := &fakeRuleLister{rules: []*ent.KeywordRule{rule("r1", "t1", "arbitrage")}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{
		"sportsbook": {"t1"},
	}}
	store := newFakeMatchStore()

	e := NewEngine(rules, tenants, store, nil)
	_, err := e.ProcessBatch(context.Background(), []*ent.ContentItem{
		content("c1", "sportsbook", "arbitrage one"),
		content("c2", "sportsbook", "arbitrage two"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tenants.calls)
	assert.Len(t, store.created, 2)
}

func TestEngine_ProcessContent_SkipsDuplicateDetection(t *testing.T) {
	rules := &fakeRuleLister{rules: []*ent.KeywordRule{rule("r1", "t1", "arbitrage")}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{
		"sportsbook": {"t1"},
	}}
	store := newFakeMatchStore()
	store.existing["t1|r1|c1"] = true

	e := NewEngine(rules, tenants, store, nil)
	created, err := e.ProcessContent(context.Background(),
		content("c1", "sportsbook", "arbitrage spotted"))
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, store.created)
}

func TestEngine_ProcessContent_HonorsRuleExclusions(t *testing.T) {
	excluded := rule("r1", "t1", "arbitrage betting")
	excluded.Exclusions = []string{"scam"}

	rules := &fakeRuleLister{rules: []*ent.KeywordRule{excluded}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{
		"sportsbook": {"t1"},
	}}
	store := newFakeMatchStore()

	e := NewEngine(rules, tenants, store, nil)
	created, err := e.ProcessContent(context.Background(),
		content("c1", "sportsbook", "arbitrage betting is a scam"))
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestEngine_CommentContentMapsToCommentMatchKind(t *testing.T) {
	rules := &fakeRuleLister{rules: []*ent.KeywordRule{rule("r1", "t1", "arbitrage")}}
	tenants := &fakeTenantResolver{byCommunity: map[string][]string{
		"sportsbook": {"t1"},
	}}
	store := newFakeMatchStore()

	item := content("c1", "sportsbook", "arbitrage in the comments")
	item.Kind = contentitem.KindComment

	e := NewEngine(rules, tenants, store, nil)
	_, err := e.ProcessContent(context.Background(), item)
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, entmatch.KindComment, store.created[0].Kind)
}
