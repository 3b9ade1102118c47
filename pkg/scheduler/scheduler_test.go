package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/keywatch/keywatch/pkg/config"
	"github.com/keywatch/keywatch/pkg/pipeline"
	"github.com/keywatch/keywatch/pkg/retention"
	"github.com/stretchr/testify/assert"
)

type fakePipeline struct {
	mu    sync.Mutex
	runs  int
	ran   chan struct{}
}

func newFakePipeline() *fakePipeline {
	return &fakePipeline{ran: make(chan struct{}, 10)}
}

func (f *fakePipeline) Run(_ context.Context) (pipeline.Summary, error) {
	f.mu.Lock()
	f.runs++
	f.mu.Unlock()
	f.ran <- struct{}{}
	return pipeline.Summary{}, nil
}

func (f *fakePipeline) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

type fakeSweeper struct {
	mu   sync.Mutex
	runs int
	ran  chan struct{}
}

func newFakeSweeper() *fakeSweeper {
	return &fakeSweeper{ran: make(chan struct{}, 10)}
}

func (f *fakeSweeper) Run(_ context.Context) (retention.Summary, error) {
	f.mu.Lock()
	f.runs++
	f.mu.Unlock()
	f.ran <- struct{}{}
	return retention.Summary{}, nil
}

func (f *fakeSweeper) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

func TestScheduler_Start_RunsPipelineImmediately(t *testing.T) {
	p := newFakePipeline()
	sw := newFakeSweeper()
	cfg := &config.PipelineConfig{PollIntervalMinutes: 60}
	retCfg := &config.RetentionConfig{RetentionDays: 90, DailyRunHour: 3}

	s := New(p, sw, cfg, retCfg, nil)
	s.now = func() time.Time { return time.Date(2026, 7, 29, 1, 0, 0, 0, time.UTC) }

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-p.ran:
	case <-time.After(time.Second):
		t.Fatal("pipeline did not run at startup")
	}
	assert.Equal(t, 0, sw.count(), "retention must not run before the configured daily hour")
}

func TestScheduler_Start_RunsRetentionWhenPastDailyHour(t *testing.T) {
	p := newFakePipeline()
	sw := newFakeSweeper()
	cfg := &config.PipelineConfig{PollIntervalMinutes: 60}
	retCfg := &config.RetentionConfig{RetentionDays: 90, DailyRunHour: 3}

	s := New(p, sw, cfg, retCfg, nil)
	s.now = func() time.Time { return time.Date(2026, 7, 29, 4, 0, 0, 0, time.UTC) }

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-p.ran:
	case <-time.After(time.Second):
		t.Fatal("pipeline did not run at startup")
	}
	select {
	case <-sw.ran:
	case <-time.After(time.Second):
		t.Fatal("retention did not run when already past the daily hour")
	}
	assert.Equal(t, 1, sw.count())
}

func TestScheduler_Stop_TerminatesLoop(t *testing.T) {
	p := newFakePipeline()
	sw := newFakeSweeper()
	cfg := &config.PipelineConfig{PollIntervalMinutes: 60}
	retCfg := &config.RetentionConfig{RetentionDays: 90, DailyRunHour: 3}

	s := New(p, sw, cfg, retCfg, nil)
	s.now = func() time.Time { return time.Date(2026, 7, 29, 1, 0, 0, 0, time.UTC) }

	s.Start(context.Background())
	<-p.ran

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return promptly")
	}
}
