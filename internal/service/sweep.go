package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"podcaster/internal/config"
	"podcaster/internal/domain"
)

// Sweeper re-enqueues work that a lost or exhausted task left undone: enrichment for
// episodes still without a transcript and publishes for podcasts whose feed is stale.
type Sweeper struct {
	episodes EpisodeStore
	podcasts PodcastStore
	tasks    TaskQueue
	logger   *slog.Logger
	config   config.SweepConfig
	now      func() time.Time
}

func NewSweeper(episodes EpisodeStore, podcasts PodcastStore, tasks TaskQueue, logger *slog.Logger, cfg config.SweepConfig) *Sweeper {
	return &Sweeper{
		episodes: episodes,
		podcasts: podcasts,
		tasks:    tasks,
		logger:   logger.With("component", "sweep"),
		config:   cfg,
		now:      time.Now,
	}
}

// Sweep queues enrichment for episodes older than min_age that have no transcript.
// Episodes that failed within min_age, failed max_failures times or were abandoned are skipped.
func (s *Sweeper) Sweep(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()
	cutoff := s.now().Add(-s.config.MinAge)

	ids, err := s.episodes.ListPendingEnrichment(ctx, cutoff, s.config.MaxFailures, s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list pending episodes: %w", err)
	}

	return s.enqueueAll(ctx, domain.TaskEnrichEpisode, ids, startTime), nil
}

// SweepFeeds queues a publish for podcasts changed more than min_age ago whose latest feed
// predates the change.
func (s *Sweeper) SweepFeeds(ctx context.Context) (*domain.SweepStats, error) {
	startTime := time.Now()
	cutoff := s.now().Add(-s.config.MinAge)

	ids, err := s.podcasts.ListStaleFeeds(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list stale feeds: %w", err)
	}

	return s.enqueueAll(ctx, domain.TaskPublishFeed, ids, startTime), nil
}

func (s *Sweeper) enqueueAll(ctx context.Context, kind domain.TaskKind, ids []string, startTime time.Time) *domain.SweepStats {
	stats := &domain.SweepStats{Candidates: len(ids)}
	for _, id := range ids {
		if err := s.tasks.Enqueue(ctx, domain.NewTask(kind, id)); err != nil {
			stats.Errors++
			s.logger.Warn("failed to enqueue task", "kind", kind, "id", id, "error", err)
			continue
		}
		stats.Enqueued++
	}
	stats.Duration = time.Since(startTime)

	s.logger.Info("sweep completed",
		"kind", kind,
		"candidates", stats.Candidates,
		"enqueued", stats.Enqueued,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats
}
