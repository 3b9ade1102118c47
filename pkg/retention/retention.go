// Package retention hard-deletes Match and ContentItem rows past their
// configured retention window, in FK order, once per day.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/keywatch/keywatch/pkg/config"
)

// MatchDeleter removes matches detected before a cutoff. Satisfied by
// *services.MatchService.
type MatchDeleter interface {
	DeleteDetectedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// ContentDeleter removes content items fetched before a cutoff. Satisfied
// by *services.ContentService.
type ContentDeleter interface {
	DeleteFetchedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Summary reports one sweep's deletion counts.
type Summary struct {
	MatchesDeleted int
	ContentDeleted int
}

// Sweeper runs the retention sweep: Match rows older than RetentionDays are
// deleted before ContentItem rows older than RetentionDays, since Match
// rows carry a foreign key to ContentItem.
type Sweeper struct {
	matches MatchDeleter
	content ContentDeleter
	cfg     *config.RetentionConfig
	logger  *slog.Logger
}

// NewSweeper builds a Sweeper.
func NewSweeper(matches MatchDeleter, content ContentDeleter, cfg *config.RetentionConfig, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{matches: matches, content: content, cfg: cfg, logger: logger}
}

// Run deletes Match rows then ContentItem rows older than RetentionDays.
func (s *Sweeper) Run(ctx context.Context) (Summary, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)

	matchesDeleted, err := s.matches.DeleteDetectedBefore(ctx, cutoff)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to delete old matches: %w", err)
	}

	contentDeleted, err := s.content.DeleteFetchedBefore(ctx, cutoff)
	if err != nil {
		return Summary{MatchesDeleted: matchesDeleted}, fmt.Errorf("failed to delete old content items: %w", err)
	}

	summary := Summary{MatchesDeleted: matchesDeleted, ContentDeleted: contentDeleted}
	s.logger.Info("retention sweep complete",
		"cutoff", cutoff,
		"matches_deleted", summary.MatchesDeleted,
		"content_deleted", summary.ContentDeleted,
	)
	return summary, nil
}
