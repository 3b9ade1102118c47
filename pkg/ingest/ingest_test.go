package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/pkg/config"
	"github.com/keywatch/keywatch/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedClient struct {
	posts    map[string][]FeedItem
	comments map[string][]FeedItem
	err      map[string]error
}

func (f *fakeFeedClient) FetchPosts(ctx context.Context, community string, limit int) ([]FeedItem, error) {
	if err, ok := f.err[community]; ok {
		return nil, err
	}
	return f.posts[community], nil
}

func (f *fakeFeedClient) FetchComments(ctx context.Context, community string, limit int) ([]FeedItem, error) {
	return f.comments[community], nil
}

type fakeLister struct {
	names              []string
	markedInaccessible []string
	mu                 sync.Mutex
}

func (f *fakeLister) DistinctActiveNames(ctx context.Context) ([]string, error) {
	return f.names, nil
}

func (f *fakeLister) MarkInaccessible(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedInaccessible = append(f.markedInaccessible, name)
	return nil
}

type fakeContentStore struct {
	bySourceID map[string]bool
	byDigest   map[string]bool
	created    []services.NewContentInput
	mu         sync.Mutex
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{bySourceID: map[string]bool{}, byDigest: map[string]bool{}}
}

func (f *fakeContentStore) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bySourceID[sourceID], nil
}

func (f *fakeContentStore) ExistsByDigest(ctx context.Context, digest string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byDigest[digest], nil
}

func (f *fakeContentStore) Create(ctx context.Context, input services.NewContentInput) (*ent.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bySourceID[input.SourceID] = true
	f.byDigest[input.Digest] = true
	f.created = append(f.created, input)
	return &ent.ContentItem{ID: input.SourceID}, nil
}

func testIngestConfig() *config.IngestConfig {
	cfg := config.DefaultIngestConfig()
	cfg.InterFetchDelay = time.Millisecond
	cfg.CommunityConcurrency = 2
	return cfg
}

func TestIngestor_PollCommunity_StoresNewItems(t *testing.T) {
	feed := &fakeFeedClient{
		posts: map[string][]FeedItem{
			"golang": {
				{SourceID: "p1", Community: "golang", Kind: contentitem.KindPost, Title: "hello", Body: "world", Author: "alice", CreatedAt: time.Now()},
			},
		},
		comments: map[string][]FeedItem{
			"golang": {
				{SourceID: "c1", Community: "golang", Kind: contentitem.KindComment, Body: "a comment", Author: "bob", CreatedAt: time.Now()},
			},
		},
	}
	store := newFakeContentStore()
	in := NewIngestor(feed, &fakeLister{}, store, testIngestConfig(), nil)

	stored, err := in.PollCommunity(context.Background(), "golang")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Len(t, store.created, 2)
}

func TestIngestor_PollCommunity_SkipsDuplicateSourceID(t *testing.T) {
	feed := &fakeFeedClient{
		posts: map[string][]FeedItem{
			"golang": {{SourceID: "p1", Community: "golang", Kind: contentitem.KindPost, Body: "same text", CreatedAt: time.Now()}},
		},
	}
	store := newFakeContentStore()
	store.bySourceID["p1"] = true
	in := NewIngestor(feed, &fakeLister{}, store, testIngestConfig(), nil)

	stored, err := in.PollCommunity(context.Background(), "golang")
	require.NoError(t, err)
	assert.Len(t, stored, 0)
}

func TestIngestor_PollCommunity_SkipsDuplicateDigest(t *testing.T) {
	feed := &fakeFeedClient{
		posts: map[string][]FeedItem{
			"golang": {{SourceID: "p1", Community: "golang", Kind: contentitem.KindPost, Body: "identical content", CreatedAt: time.Now()}},
		},
	}
	store := newFakeContentStore()
	store.byDigest[contentDigest("identical content")] = true
	in := NewIngestor(feed, &fakeLister{}, store, testIngestConfig(), nil)

	stored, err := in.PollCommunity(context.Background(), "golang")
	require.NoError(t, err)
	assert.Len(t, stored, 0)
}

func TestIngestor_PollCommunity_DedupesWithinBatch(t *testing.T) {
	feed := &fakeFeedClient{
		posts: map[string][]FeedItem{
			"golang": {
				{SourceID: "p1", Community: "golang", Kind: contentitem.KindPost, Body: "dup text", CreatedAt: time.Now()},
			},
		},
		comments: map[string][]FeedItem{
			"golang": {
				{SourceID: "c1", Community: "golang", Kind: contentitem.KindComment, Body: "dup text", CreatedAt: time.Now()},
			},
		},
	}
	store := newFakeContentStore()
	in := NewIngestor(feed, &fakeLister{}, store, testIngestConfig(), nil)

	stored, err := in.PollCommunity(context.Background(), "golang")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestIngestor_PollAll_IsolatesFailures(t *testing.T) {
	feed := &fakeFeedClient{
		posts: map[string][]FeedItem{
			"golang": {{SourceID: "p1", Community: "golang", Kind: contentitem.KindPost, Body: "fine", CreatedAt: time.Now()}},
		},
		err: map[string]error{
			"gone": &FeedError{StatusCode: 404},
		},
	}
	lister := &fakeLister{names: []string{"golang", "gone"}}
	store := newFakeContentStore()
	in := NewIngestor(feed, lister, store, testIngestConfig(), nil)

	summary, newItems, err := in.PollAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CommunitiesPolled)
	assert.Equal(t, 1, summary.CommunitiesFailed)
	assert.Equal(t, 1, summary.ItemsStored)
	assert.Len(t, newItems, 1)
	assert.Contains(t, lister.markedInaccessible, "gone")
}

func TestFeedError_Inaccessible(t *testing.T) {
	assert.True(t, (&FeedError{StatusCode: 403}).Inaccessible())
	assert.True(t, (&FeedError{StatusCode: 404}).Inaccessible())
	assert.False(t, (&FeedError{StatusCode: 500}).Inaccessible())
}
