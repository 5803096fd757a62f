package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"podcaster/internal/config"
	"podcaster/internal/domain"
	"podcaster/internal/feed"
	"podcaster/internal/objectstore"
)

// FeedService renders a podcast's feed and records it as a new version.
type FeedService struct {
	podcasts  PodcastStore
	episodes  EpisodeStore
	versions  FeedVersionStore
	objects   ObjectStore
	txManager TransactionManager
	logger    *slog.Logger
	config    config.PipelineConfig
	now       func() time.Time
}

func NewFeedService(
	podcasts PodcastStore,
	episodes EpisodeStore,
	versions FeedVersionStore,
	objects ObjectStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *FeedService {
	return &FeedService{
		podcasts:  podcasts,
		episodes:  episodes,
		versions:  versions,
		objects:   objects,
		txManager: txManager,
		logger:    logger.With("component", "feed"),
		config:    cfg,
		now:       time.Now,
	}
}

func (s *FeedService) Publish(ctx context.Context, podcastID string) (*domain.PublishResult, error) {
	startTime := time.Now()
	logger := s.logger.With("podcast_id", podcastID)
	// taken before reading so that a change racing this publish leaves the feed stale
	generatedAt := s.now().UTC()

	podcast, err := s.podcasts.Get(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("load podcast: %w", err)
	}

	episodes, err := s.episodes.ListByPodcast(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	doc, err := feed.Encode(podcast, episodes, feed.Options{
		GeneratedAt: generatedAt,
		ChaptersURL: func(episodeID string) string {
			return s.objects.PublicURL(objectstore.ChaptersKey(episodeID))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}

	xmlKey := objectstore.FeedKey(podcastID, generatedAt)
	putCtx, cancel := callContext(ctx, s.config.CallTimeout)
	feedURL, err := s.objects.Put(putCtx, xmlKey, doc, objectstore.ContentTypeXML)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("store feed: %w", err)
	}

	fv, err := s.recordVersion(ctx, logger, podcastID, xmlKey, generatedAt)
	if err != nil {
		return nil, err
	}

	written, failed := s.writeSidecars(ctx, logger, episodes)

	logger.Info("feed published",
		"version", fv.Version,
		"episodes", len(episodes),
		"sidecars", written,
		"sidecar_errors", failed,
		"duration", time.Since(startTime),
	)

	return &domain.PublishResult{
		FeedVersionID: fv.ID,
		Version:       fv.Version,
		FeedURL:       feedURL,
		Sidecars:      written,
		SidecarErrors: failed,
	}, nil
}

// recordVersion flips the previous latest version and inserts the next one in a single
// transaction, retrying when a concurrent publish won the race.
func (s *FeedService) recordVersion(ctx context.Context, logger *slog.Logger, podcastID, xmlKey string, publishedAt time.Time) (*domain.FeedVersion, error) {
	attempts := s.config.PublishAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var fv *domain.FeedVersion
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		fv = &domain.FeedVersion{
			ID:          uuid.NewString(),
			PodcastID:   podcastID,
			PublishedAt: publishedAt,
			XMLKey:      xmlKey,
			IsLatest:    true,
		}

		err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.flipAndInsert(txCtx, fv)
		})
		if err == nil {
			return fv, nil
		}
		if !errors.Is(err, domain.ErrConflictingVersion) {
			return nil, fmt.Errorf("record feed version: %w", err)
		}

		logger.Warn("feed version conflict, retrying", "attempt", attempt, "error", err)
	}

	return nil, fmt.Errorf("record feed version after %d attempts: %w", attempts, err)
}

func (s *FeedService) flipAndInsert(ctx context.Context, fv *domain.FeedVersion) error {
	fv.Version = 1

	prev, err := s.versions.LockLatest(ctx, fv.PodcastID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return err
	default:
		if err := s.versions.ClearLatest(ctx, prev.ID); err != nil {
			return err
		}
		fv.Version = prev.Version + 1
	}

	return s.versions.Insert(ctx, fv)
}

// writeSidecars uploads one chapters document per episode with chapters.
// Failures are logged and counted; they never abort the publish.
func (s *FeedService) writeSidecars(ctx context.Context, logger *slog.Logger, episodes []domain.Episode) (int, int) {
	var written, failed atomic.Int32

	var g errgroup.Group
	if s.config.SidecarConcurrency > 0 {
		g.SetLimit(s.config.SidecarConcurrency)
	}

	for i := range episodes {
		ep := &episodes[i]
		if !ep.HasChapters() {
			continue
		}

		g.Go(func() error {
			if err := s.writeSidecar(ctx, ep); err != nil {
				failed.Add(1)
				logger.Error("failed to write chapters sidecar", "episode_id", ep.ID, "error", err)
				return nil
			}
			written.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(written.Load()), int(failed.Load())
}

func (s *FeedService) writeSidecar(ctx context.Context, ep *domain.Episode) error {
	data, err := feed.EncodeChapters(ep.Title, ep.Chapters)
	if err != nil {
		return err
	}

	putCtx, cancel := callContext(ctx, s.config.CallTimeout)
	defer cancel()

	_, err = s.objects.Put(putCtx, objectstore.ChaptersKey(ep.ID), data, objectstore.ContentTypeJSON)
	return err
}
