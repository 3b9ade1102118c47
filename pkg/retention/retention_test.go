package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keywatch/keywatch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchDeleter struct {
	cutoff  time.Time
	deleted int
	err     error
}

func (f *fakeMatchDeleter) DeleteDetectedBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	return f.deleted, f.err
}

type fakeContentDeleter struct {
	cutoff  time.Time
	deleted int
	err     error
}

func (f *fakeContentDeleter) DeleteFetchedBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	return f.deleted, f.err
}

func TestSweeper_Run_DeletesMatchesBeforeContent(t *testing.T) {
	matches := &fakeMatchDeleter{deleted: 5}
	content := &fakeContentDeleter{deleted: 9}
	cfg := &config.RetentionConfig{RetentionDays: 90, DailyRunHour: 3}

	s := NewSweeper(matches, content, cfg, nil)
	summary, err := s.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, summary.MatchesDeleted)
	assert.Equal(t, 9, summary.ContentDeleted)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -90), matches.cutoff, time.Minute)
	assert.Equal(t, matches.cutoff, content.cutoff)
}

func TestSweeper_Run_StopsBeforeContentWhenMatchDeleteFails(t *testing.T) {
	matches := &fakeMatchDeleter{err: errors.New("db unavailable")}
	content := &fakeContentDeleter{deleted: 9}
	cfg := &config.RetentionConfig{RetentionDays: 30, DailyRunHour: 3}

	s := NewSweeper(matches, content, cfg, nil)
	_, err := s.Run(context.Background())

	require.Error(t, err)
	assert.True(t, content.cutoff.IsZero(), "content deletion must not run once match deletion has failed")
}
