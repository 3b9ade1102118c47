package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/keywatch/keywatch/ent"
	"github.com/keywatch/keywatch/pkg/dispatch"
	"github.com/keywatch/keywatch/pkg/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIngestor struct {
	summary  ingest.Summary
	newItems []*ent.ContentItem
	err      error
}

func (f *fakeIngestor) PollAll(_ context.Context) (ingest.Summary, []*ent.ContentItem, error) {
	return f.summary, f.newItems, f.err
}

type fakeEngine struct {
	received []*ent.ContentItem
	matches  []*ent.Match
	err      error
}

func (f *fakeEngine) ProcessBatch(_ context.Context, contents []*ent.ContentItem) ([]*ent.Match, error) {
	f.received = contents
	return f.matches, f.err
}

type fakeDispatcher struct {
	summary dispatch.Summary
	err     error
}

func (f *fakeDispatcher) DispatchPending(_ context.Context) (dispatch.Summary, error) {
	return f.summary, f.err
}

func TestPipeline_Run_SkipsMatchStageWhenNothingNew(t *testing.T) {
	ingestor := &fakeIngestor{summary: ingest.Summary{CommunitiesPolled: 2}}
	engine := &fakeEngine{}
	dispatcher := &fakeDispatcher{summary: dispatch.Summary{Sent: 1}}

	p := NewPipeline(ingestor, engine, dispatcher, nil)
	summary, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Matched)
	assert.Nil(t, engine.received, "match engine must not be invoked when no new content was ingested")
	assert.Equal(t, 1, summary.Dispatch.Sent)
}

func TestPipeline_Run_FeedsNewItemsToMatchEngine(t *testing.T) {
	items := []*ent.ContentItem{{ID: "c1"}, {ID: "c2"}}
	ingestor := &fakeIngestor{summary: ingest.Summary{ItemsStored: 2}, newItems: items}
	engine := &fakeEngine{matches: []*ent.Match{{ID: "m1"}}}
	dispatcher := &fakeDispatcher{}

	p := NewPipeline(ingestor, engine, dispatcher, nil)
	summary, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, items, engine.received)
	assert.Equal(t, 1, summary.Matched)
}

func TestPipeline_Run_StopsAtIngestFailure(t *testing.T) {
	ingestor := &fakeIngestor{err: errors.New("upstream unreachable")}
	engine := &fakeEngine{}
	dispatcher := &fakeDispatcher{}

	p := NewPipeline(ingestor, engine, dispatcher, nil)
	_, err := p.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, engine.received)
}

func TestPipeline_Run_StopsAtMatchFailureBeforeDispatch(t *testing.T) {
	ingestor := &fakeIngestor{summary: ingest.Summary{ItemsStored: 1}, newItems: []*ent.ContentItem{{ID: "c1"}}}
	engine := &fakeEngine{err: errors.New("match stage exploded")}
	dispatcher := &fakeDispatcher{summary: dispatch.Summary{Sent: 99}}

	p := NewPipeline(ingestor, engine, dispatcher, nil)
	summary, err := p.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, summary.Dispatch.Sent, "dispatch must not run once the match stage has failed")
}
