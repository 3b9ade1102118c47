package services

import (
	"context"
	"fmt"
	"time"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/google/uuid"
)

// NewContentInput is the fully-normalized content item produced by the
// ingestor, ready to persist.
type NewContentInput struct {
	SourceID        string
	Community       string
	Kind            contentitem.Kind
	Title           *string
	Body            string
	Author          *string
	NormalizedText  string
	Digest          string
	SourceCreatedAt time.Time
}

// ContentService persists fetched content items and answers the dedupe
// checks the ingestor needs before storing a new one.
type ContentService struct {
	client *ent.Client
}

// NewContentService creates a new ContentService.
func NewContentService(client *ent.Client) *ContentService {
	if client == nil {
		panic("NewContentService: client must not be nil")
	}
	return &ContentService{client: client}
}

// ExistsBySourceID reports whether a content item with this upstream source
// ID has already been stored.
func (s *ContentService) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	exists, err := s.client.ContentItem.Query().
		Where(contentitem.SourceIDEQ(sourceID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check source_id existence: %w", err)
	}
	return exists, nil
}

// ExistsByDigest reports whether a content item with this normalized-text
// digest has already been stored, independent of its source ID.
func (s *ContentService) ExistsByDigest(ctx context.Context, digest string) (bool, error) {
	exists, err := s.client.ContentItem.Query().
		Where(contentitem.DigestEQ(digest)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check digest existence: %w", err)
	}
	return exists, nil
}

// Create persists a single new content item.
func (s *ContentService) Create(ctx context.Context, input NewContentInput) (*ent.ContentItem, error) {
	builder := s.client.ContentItem.Create().
		SetID(uuid.New().String()).
		SetSourceID(input.SourceID).
		SetCommunity(input.Community).
		SetKind(input.Kind).
		SetBody(input.Body).
		SetNormalizedText(input.NormalizedText).
		SetDigest(input.Digest).
		SetSourceCreatedAt(input.SourceCreatedAt)

	if input.Title != nil {
		builder.SetTitle(*input.Title)
	}
	if input.Author != nil {
		builder.SetAuthor(*input.Author)
	}

	item, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create content item: %w", err)
	}
	return item, nil
}

// DeleteFetchedBefore removes content items fetched before cutoff, oldest
// retention sweep target since matches reference content via a required
// foreign key and must be purged first.
func (s *ContentService) DeleteFetchedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.ContentItem.Delete().
		Where(contentitem.FetchedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old content items: %w", err)
	}
	return count, nil
}
