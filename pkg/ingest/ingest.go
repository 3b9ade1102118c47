package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/pkg/config"
	"github.com/keywatch/keywatch/pkg/normalize"
	"github.com/keywatch/keywatch/pkg/services"
)

// CommunityLister lists the communities the ingestor should poll. Satisfied
// by *services.CommunityService.
type CommunityLister interface {
	DistinctActiveNames(ctx context.Context) ([]string, error)
	MarkInaccessible(ctx context.Context, name string) error
}

// ContentStore persists and dedupes content items. Satisfied by
// *services.ContentService; tests substitute an in-memory fake to avoid a
// live database.
type ContentStore interface {
	ExistsBySourceID(ctx context.Context, sourceID string) (bool, error)
	ExistsByDigest(ctx context.Context, digest string) (bool, error)
	Create(ctx context.Context, input services.NewContentInput) (*ent.ContentItem, error)
}

// Summary reports per-community outcomes of a single poll pass.
type Summary struct {
	CommunitiesPolled int
	CommunitiesFailed int
	ItemsStored       int
	PerCommunity      map[string]int
}

// Ingestor polls every active monitored community, normalizes and dedupes
// the fetched items, and stores the new ones.
type Ingestor struct {
	feed    FeedClient
	lister  CommunityLister
	content ContentStore
	cfg     *config.IngestConfig
	logger  *slog.Logger
}

// NewIngestor builds an Ingestor. feed fetches upstream content, lister
// resolves which communities to poll, content persists and dedupes results.
func NewIngestor(feed FeedClient, lister CommunityLister, content ContentStore, cfg *config.IngestConfig, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		feed:    feed,
		lister:  lister,
		content: content,
		cfg:     cfg,
		logger:  logger,
	}
}

// PollAll fetches every active community's feed, isolating failures so one
// inaccessible or slow community never blocks the others. It returns the
// union of content items newly persisted across all communities, ready to
// hand to the match engine.
func (in *Ingestor) PollAll(ctx context.Context) (Summary, []*ent.ContentItem, error) {
	names, err := in.lister.DistinctActiveNames(ctx)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("failed to list active communities: %w", err)
	}

	summary := Summary{PerCommunity: make(map[string]int, len(names))}
	var mu sync.Mutex
	var newItems []*ent.ContentItem

	concurrency := in.cfg.CommunityConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, name := range names {
		name := name
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			stored, err := in.PollCommunity(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			summary.CommunitiesPolled++
			if err != nil {
				summary.CommunitiesFailed++
				in.logger.Warn("failed to poll community", "community", name, "error", err)
				if feedErr, ok := err.(*FeedError); ok && feedErr.Inaccessible() {
					if markErr := in.lister.MarkInaccessible(ctx, name); markErr != nil {
						in.logger.Error("failed to mark community inaccessible", "community", name, "error", markErr)
					}
				}
				return
			}
			summary.ItemsStored += len(stored)
			summary.PerCommunity[name] = len(stored)
			newItems = append(newItems, stored...)
		}()
	}
	wg.Wait()

	return summary, newItems, nil
}

// PollCommunity fetches posts and comments for a single community and
// stores the new, non-duplicate items, returning the ones it persisted.
func (in *Ingestor) PollCommunity(ctx context.Context, community string) ([]*ent.ContentItem, error) {
	posts, err := in.feed.FetchPosts(ctx, community, in.cfg.FetchLimit)
	if err != nil {
		return nil, err
	}

	select {
	case <-time.After(in.cfg.InterFetchDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	comments, err := in.feed.FetchComments(ctx, community, in.cfg.FetchLimit)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(posts)+len(comments))
	items = append(items, posts...)
	items = append(items, comments...)

	return in.storeNew(ctx, items)
}

// storeNew normalizes each item, drops in-batch and previously-stored
// duplicates, and persists the rest, returning the items it stored.
func (in *Ingestor) storeNew(ctx context.Context, items []FeedItem) ([]*ent.ContentItem, error) {
	seen := make(map[uint64]struct{}, len(items))
	var stored []*ent.ContentItem

	for _, item := range items {
		rawText := item.Body
		if item.Title != "" {
			rawText = item.Title + " " + item.Body
		}
		normalized := normalize.Normalize(rawText)
		digest := contentDigest(normalized.Text)

		batchKey := xxhash.Sum64String(digest)
		if _, dup := seen[batchKey]; dup {
			continue
		}
		seen[batchKey] = struct{}{}

		exists, err := in.content.ExistsByDigest(ctx, digest)
		if err != nil {
			return stored, err
		}
		if exists {
			continue
		}

		exists, err = in.content.ExistsBySourceID(ctx, item.SourceID)
		if err != nil {
			return stored, err
		}
		if exists {
			continue
		}

		input := services.NewContentInput{
			SourceID:        item.SourceID,
			Community:       item.Community,
			Kind:            item.Kind,
			Body:            item.Body,
			Author:          strPtr(item.Author),
			NormalizedText:  normalized.Text,
			Digest:          digest,
			SourceCreatedAt: item.CreatedAt,
		}
		if item.Title != "" && item.Kind == contentitem.KindPost {
			input.Title = strPtr(item.Title)
		}

		created, err := in.content.Create(ctx, input)
		if err != nil {
			return stored, fmt.Errorf("failed to store content item %s: %w", item.SourceID, err)
		}
		stored = append(stored, created)
	}

	return stored, nil
}

// contentDigest hashes normalized text with SHA-256, the persistence-layer
// dedupe key used for cross-run duplicate detection.
func contentDigest(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(sum[:])
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
