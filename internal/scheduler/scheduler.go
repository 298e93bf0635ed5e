package scheduler

import (
	"context"
	"log/slog"
	"time"

	"course_revisions/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Scheduler struct {
	syncer      Syncer
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger,
	}
}

// Start runs a pass immediately and then once per interval until ctx is done.
// Passes never overlap: a slow pass delays the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"pass_timeout", s.passTimeout,
	)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	stats, err := s.syncer.Sync(syncCtx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	if stats != nil && stats.Errors > 0 {
		s.logger.Warn("sync pass finished with errors",
			"errors", stats.Errors,
			"courses", stats.Courses,
		)
	}
}
