package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"podcaster/internal/domain"
)

type Enricher interface {
	Enrich(ctx context.Context, episodeID string) (*domain.Enrichment, error)
}

type Publisher interface {
	Publish(ctx context.Context, podcastID string) (*domain.PublishResult, error)
}

// Worker runs one task at a time per call, bounded by the run timeout.
type Worker struct {
	enricher   Enricher
	publisher  Publisher
	runTimeout time.Duration
	logger     *slog.Logger
}

func New(enricher Enricher, publisher Publisher, runTimeout time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		enricher:   enricher,
		publisher:  publisher,
		runTimeout: runTimeout,
		logger:     logger.With("component", "worker"),
	}
}

// Handle dispatches task to the enrichment pipeline or the feed publisher.
func (w *Worker) Handle(ctx context.Context, task domain.Task) error {
	if w.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.runTimeout)
		defer cancel()
	}

	startTime := time.Now()
	logger := w.logger.With("kind", task.Kind, "id", task.ID, "attempt", task.Attempt)
	logger.Debug("task started", "queued_for", startTime.Sub(task.EnqueuedAt))

	var err error
	switch task.Kind {
	case domain.TaskEnrichEpisode:
		_, err = w.enricher.Enrich(ctx, task.ID)
	case domain.TaskPublishFeed:
		_, err = w.publisher.Publish(ctx, task.ID)
	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", task.Kind, task.ID, err)
	}

	logger.Info("task completed", "duration", time.Since(startTime))
	return nil
}
