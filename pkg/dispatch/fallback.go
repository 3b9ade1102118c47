package dispatch

import (
	"context"
	"log/slog"

	"github.com/keywatch/keywatch/ent"
)

// FallbackNotice carries the fields an email fallback message needs: the
// matched phrase, community and source url.
type FallbackNotice struct {
	TenantID string
	Email    string
	Phrase   string
	Community string
	URL      string
}

// FallbackNotifier is invoked once per match whose delivery retries are
// exhausted and whose tenant has a contact email on file.
type FallbackNotifier interface {
	Notify(ctx context.Context, notice FallbackNotice)
}

// LogOnlyNotifier logs a "would send email fallback" line instead of
// integrating an outbound email provider.
type LogOnlyNotifier struct {
	logger *slog.Logger
}

// NewLogOnlyNotifier builds a LogOnlyNotifier.
func NewLogOnlyNotifier(logger *slog.Logger) *LogOnlyNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogOnlyNotifier{logger: logger}
}

// Notify logs the fallback notice at warn level.
func (n *LogOnlyNotifier) Notify(_ context.Context, notice FallbackNotice) {
	n.logger.Warn("would send email fallback",
		"tenant_id", notice.TenantID,
		"email", notice.Email,
		"phrase", notice.Phrase,
		"community", notice.Community,
		"url", notice.URL,
	)
}

// maybeNotify enqueues a fallback notice for every match of a failed
// delivery whose tenant has a contact email; otherwise it just warns.
func (d *Dispatcher) maybeNotify(ctx context.Context, tenant *ent.Tenant, matches []*ent.Match) {
	hasEmail := tenant != nil && tenant.ContactEmail != nil && *tenant.ContactEmail != ""
	for _, m := range matches {
		if !hasEmail {
			d.logger.Warn("dispatch failed and tenant has no contact email on file",
				"tenant_id", m.TenantID, "match_id", m.ID)
			continue
		}
		d.fallback.Notify(ctx, FallbackNotice{
			TenantID:  m.TenantID,
			Email:     *tenant.ContactEmail,
			Phrase:    m.MatchedPhrase,
			Community: m.Community,
			URL:       m.RedditURL,
		})
	}
}
