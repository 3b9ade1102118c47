// Package ingest fetches new posts and comments from monitored community
// feeds, normalizes them, deduplicates against prior storage, and persists
// the survivors as content items.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/keywatch/keywatch/ent/contentitem"
)

// upstreamBaseURL is the public JSON feed root. No API credentials are
// required for these endpoints.
const upstreamBaseURL = "https://www.reddit.com"

// FeedItem is a single fetched post or comment before normalization.
type FeedItem struct {
	SourceID  string
	Community string
	Kind      contentitem.Kind
	Title     string
	Body      string
	Author    string
	CreatedAt time.Time
}

// FeedClient fetches recent posts and top-level comments for a community.
// Implemented by httpFeedClient against the live upstream; tests substitute
// a fake.
type FeedClient interface {
	FetchPosts(ctx context.Context, community string, limit int) ([]FeedItem, error)
	FetchComments(ctx context.Context, community string, limit int) ([]FeedItem, error)
}

// httpFeedClient fetches /new.json and /comments.json from the upstream
// public JSON feed.
type httpFeedClient struct {
	httpClient *http.Client
	userAgent  string
}

// NewHTTPFeedClient builds a FeedClient bound to the live upstream feed.
func NewHTTPFeedClient(timeout time.Duration, userAgent string) FeedClient {
	return &httpFeedClient{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Kind string          `json:"kind"`
			Data json.RawMessage `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
}

type commentData struct {
	ID         string  `json:"id"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	ParentID   string  `json:"parent_id"`
	CreatedUTC float64 `json:"created_utc"`
}

// FetchPosts retrieves recent posts from a community's /new.json feed.
func (c *httpFeedClient) FetchPosts(ctx context.Context, community string, limit int) ([]FeedItem, error) {
	endpoint := fmt.Sprintf("%s/r/%s/new.json", upstreamBaseURL, url.PathEscape(community))
	var listing listingResponse
	if err := c.getJSON(ctx, endpoint, limit, &listing); err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		var post postData
		if err := json.Unmarshal(child.Data, &post); err != nil {
			continue
		}
		author := post.Author
		if author == "" {
			author = "[deleted]"
		}
		items = append(items, FeedItem{
			SourceID:  post.ID,
			Community: community,
			Kind:      contentitem.KindPost,
			Title:     post.Title,
			Body:      post.SelfText,
			Author:    author,
			CreatedAt: time.Unix(int64(post.CreatedUTC), 0).UTC(),
		})
	}
	return items, nil
}

// FetchComments retrieves recent top-level comments from a community's
// /comments.json feed, filtering to comments whose parent is a post
// (parent_id has the "t3_" prefix) rather than another comment.
func (c *httpFeedClient) FetchComments(ctx context.Context, community string, limit int) ([]FeedItem, error) {
	endpoint := fmt.Sprintf("%s/r/%s/comments.json", upstreamBaseURL, url.PathEscape(community))
	var listing listingResponse
	if err := c.getJSON(ctx, endpoint, limit, &listing); err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Kind != "t1" {
			continue
		}
		var comment commentData
		if err := json.Unmarshal(child.Data, &comment); err != nil {
			continue
		}
		if len(comment.ParentID) < 3 || comment.ParentID[:3] != "t3_" {
			continue
		}
		author := comment.Author
		if author == "" {
			author = "[deleted]"
		}
		items = append(items, FeedItem{
			SourceID:  comment.ID,
			Community: community,
			Kind:      contentitem.KindComment,
			Body:      comment.Body,
			Author:    author,
			CreatedAt: time.Unix(int64(comment.CreatedUTC), 0).UTC(),
		})
	}
	return items, nil
}

func (c *httpFeedClient) getJSON(ctx context.Context, endpoint string, limit int, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	q := req.URL.Query()
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("raw_json", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FeedError{Community: "", StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// FeedError reports a non-200 response from an upstream feed, distinguished
// so the ingestor can tell a permanently-gone community (403/404) from a
// transient failure.
type FeedError struct {
	Community  string
	StatusCode int
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("upstream feed returned status %d", e.StatusCode)
}

// Inaccessible reports whether the status indicates the community no longer
// exists or has gone private, rather than a transient failure worth
// retrying next poll.
func (e *FeedError) Inaccessible() bool {
	return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusNotFound
}
