// Package scheduler drives the pipeline tick on its polling interval and
// the retention sweep once a day at a fixed local hour.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/keywatch/keywatch/pkg/config"
	"github.com/keywatch/keywatch/pkg/pipeline"
	"github.com/keywatch/keywatch/pkg/retention"
)

// Pipeline runs one ingest->match->dispatch tick. Satisfied by
// *pipeline.Pipeline.
type Pipeline interface {
	Run(ctx context.Context) (pipeline.Summary, error)
}

// Sweeper runs one retention sweep. Satisfied by *retention.Sweeper.
type Sweeper interface {
	Run(ctx context.Context) (retention.Summary, error)
}

// Scheduler owns the two background loops: the pipeline ticker (runs once
// at startup, then every PollIntervalMinutes) and the retention sweep
// (runs once per day when the local clock crosses DailyRunHour).
//
// There is no cron-expression dependency anywhere in this module: both
// loops are plain interval/day-boundary checks.
type Scheduler struct {
	pipeline  Pipeline
	sweeper   Sweeper
	cfg       *config.PipelineConfig
	retention *config.RetentionConfig
	logger    *slog.Logger

	now func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Scheduler.
func New(p Pipeline, s Sweeper, cfg *config.PipelineConfig, retentionCfg *config.RetentionConfig, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		pipeline:  p,
		sweeper:   s,
		cfg:       cfg,
		retention: retentionCfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Start launches the background loop. It runs the pipeline once
// immediately, then loops on a ticker; the retention sweep fires whenever
// the loop observes the local hour cross DailyRunHour.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("scheduler started",
		"poll_interval_minutes", s.cfg.PollIntervalMinutes,
		"retention_days", s.retention.RetentionDays,
		"daily_run_hour", s.retention.DailyRunHour,
	)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	// Jobs run on a context that Stop does not cancel, so an in-flight
	// tick finishes; ctx only ends the loop.
	jobCtx := context.WithoutCancel(ctx)

	s.runPipeline(jobCtx)
	lastRetentionDay := -1
	if s.now().Hour() >= s.retention.DailyRunHour {
		lastRetentionDay = s.now().YearDay()
		s.runRetention(jobCtx)
	}

	ticker := time.NewTicker(s.cfg.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPipeline(jobCtx)

			now := s.now()
			if now.Hour() >= s.retention.DailyRunHour && now.YearDay() != lastRetentionDay {
				lastRetentionDay = now.YearDay()
				s.runRetention(jobCtx)
			}
		}
	}
}

func (s *Scheduler) runPipeline(ctx context.Context) {
	summary, err := s.pipeline.Run(ctx)
	if err != nil {
		s.logger.Error("pipeline tick failed", "error", err)
		return
	}
	s.logger.Info("pipeline tick succeeded",
		"items_stored", summary.Ingest.ItemsStored,
		"matched", summary.Matched,
		"dispatched_sent", summary.Dispatch.Sent,
	)
}

func (s *Scheduler) runRetention(ctx context.Context) {
	summary, err := s.sweeper.Run(ctx)
	if err != nil {
		s.logger.Error("retention sweep failed", "error", err)
		return
	}
	s.logger.Info("retention sweep succeeded",
		"matches_deleted", summary.MatchesDeleted,
		"content_deleted", summary.ContentDeleted,
	)
}
