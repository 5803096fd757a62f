package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named unit of periodic work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs each job on its own ticker until the context ends. A run is bounded by
// timeout and never overlaps with the previous run of the same job.
type Scheduler struct {
	jobs    []Job
	timeout time.Duration
	logger  *slog.Logger
}

func New(timeout time.Duration, logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:    jobs,
		timeout: timeout,
		logger:  logger.With("component", "scheduler"),
	}
}

// Start blocks until ctx is done and every job has returned.
func (s *Scheduler) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Warn("job disabled", "job", job.Name)
			continue
		}
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	logger := s.logger.With("job", job.Name)
	logger.Info("job scheduled", "interval", job.Interval)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	failures := 0
	for {
		if s.run(ctx, job, logger) {
			failures = 0
		} else {
			failures++
			logger.Warn("job failing", "consecutive_failures", failures)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job, logger *slog.Logger) bool {
	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		if ctx.Err() != nil {
			return true
		}
		logger.Error("job failed", "duration", time.Since(start), "error", err)
		return false
	}
	logger.Debug("job finished", "duration", time.Since(start))
	return true
}
