package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"podcaster/internal/domain"
	"podcaster/internal/objectstore"
)

// CatalogService is the entry point for podcast and episode changes. Every change that
// affects the feed schedules a publish.
type CatalogService struct {
	podcasts  PodcastStore
	episodes  EpisodeStore
	versions  FeedVersionStore
	objects   ObjectStore
	txManager TransactionManager
	tasks     TaskQueue
	logger    *slog.Logger
	now       func() time.Time
}

func NewCatalogService(
	podcasts PodcastStore,
	episodes EpisodeStore,
	versions FeedVersionStore,
	objects ObjectStore,
	txManager TransactionManager,
	tasks TaskQueue,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		podcasts:  podcasts,
		episodes:  episodes,
		versions:  versions,
		objects:   objects,
		txManager: txManager,
		tasks:     tasks,
		logger:    logger.With("component", "catalog"),
		now:       time.Now,
	}
}

// CreatePodcast assigns an id, uploads the optional cover image and inserts the podcast.
func (s *CatalogService) CreatePodcast(ctx context.Context, podcast *domain.Podcast, image []byte) error {
	podcast.ID = uuid.NewString()

	if len(image) > 0 {
		key := objectstore.PodcastImageKey(uuid.NewString())
		url, err := s.objects.Put(ctx, key, image, objectstore.ContentTypeJPEG)
		if err != nil {
			return fmt.Errorf("upload podcast image: %w", err)
		}
		podcast.ImageKey = key
		podcast.ImageURL = url
	}

	if err := s.podcasts.Insert(ctx, podcast); err != nil {
		return fmt.Errorf("insert podcast: %w", err)
	}

	s.logger.Info("podcast created", "podcast_id", podcast.ID, "title", podcast.Title)
	s.schedule(ctx, domain.TaskPublishFeed, podcast.ID)
	return nil
}

func (s *CatalogService) UpdatePodcast(ctx context.Context, podcast *domain.Podcast) error {
	if err := s.podcasts.Update(ctx, podcast); err != nil {
		return fmt.Errorf("update podcast: %w", err)
	}
	s.schedule(ctx, domain.TaskPublishFeed, podcast.ID)
	return nil
}

// DeletePodcast removes the podcast together with all of its episodes and feed versions.
func (s *CatalogService) DeletePodcast(ctx context.Context, podcastID string) error {
	var episodes, versions int64

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.podcasts.Get(txCtx, podcastID); err != nil {
			return err
		}

		var err error
		episodes, err = s.episodes.DeleteByPodcast(txCtx, podcastID)
		if err != nil {
			return fmt.Errorf("delete episodes: %w", err)
		}

		versions, err = s.versions.DeleteByPodcast(txCtx, podcastID)
		if err != nil {
			return fmt.Errorf("delete feed versions: %w", err)
		}

		return s.podcasts.Delete(txCtx, podcastID)
	})
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}

	s.logger.Info("podcast deleted",
		"podcast_id", podcastID,
		"episodes", episodes,
		"feed_versions", versions,
	)
	return nil
}

// CreateEpisode uploads audio and image, inserts the episode un-enriched and schedules
// enrichment followed by a publish.
func (s *CatalogService) CreateEpisode(ctx context.Context, episode *domain.Episode, audio, image []byte) error {
	if _, err := s.podcasts.Get(ctx, episode.PodcastID); err != nil {
		return fmt.Errorf("load podcast: %w", err)
	}

	episode.ID = uuid.NewString()
	if episode.GUID == "" {
		episode.GUID = uuid.NewString()
	}
	if err := s.normalizePubDate(episode); err != nil {
		return err
	}
	episode.Chapters = []domain.Chapter{}
	episode.Transcript = nil
	episode.TranscriptKey = nil

	if len(audio) > 0 {
		key := objectstore.EpisodeAudioKey(uuid.NewString())
		url, err := s.objects.Put(ctx, key, audio, objectstore.ContentTypeAudioMPEG)
		if err != nil {
			return fmt.Errorf("upload audio: %w", err)
		}
		episode.AudioKey = key
		episode.AudioURL = url
	}
	if episode.AudioKey == "" {
		return fmt.Errorf("episode %q has no audio", episode.Title)
	}

	if len(image) > 0 {
		key := objectstore.EpisodeImageKey(uuid.NewString())
		url, err := s.objects.Put(ctx, key, image, objectstore.ContentTypeJPEG)
		if err != nil {
			return fmt.Errorf("upload episode image: %w", err)
		}
		episode.ImageKey = &key
		episode.ImageURL = &url
	}

	if err := s.episodes.Insert(ctx, episode); err != nil {
		return fmt.Errorf("insert episode: %w", err)
	}

	s.logger.Info("episode created",
		"episode_id", episode.ID,
		"podcast_id", episode.PodcastID,
		"title", episode.Title,
	)

	s.schedule(ctx, domain.TaskEnrichEpisode, episode.ID)
	s.schedule(ctx, domain.TaskPublishFeed, episode.PodcastID)
	return nil
}

// UpdateEpisode overwrites the mutable fields. The podcast and guid of an episode never change.
func (s *CatalogService) UpdateEpisode(ctx context.Context, episode *domain.Episode) error {
	existing, err := s.episodes.Get(ctx, episode.ID)
	if err != nil {
		return fmt.Errorf("load episode: %w", err)
	}

	episode.PodcastID = existing.PodcastID
	episode.GUID = existing.GUID
	if err := s.normalizePubDate(episode); err != nil {
		return err
	}
	if err := domain.ValidateChapters(episode.Chapters); err != nil {
		return fmt.Errorf("validate chapters: %w", err)
	}

	if err := s.episodes.Update(ctx, episode); err != nil {
		return fmt.Errorf("update episode: %w", err)
	}

	s.schedule(ctx, domain.TaskPublishFeed, episode.PodcastID)
	return nil
}

func (s *CatalogService) DeleteEpisode(ctx context.Context, episodeID string) error {
	episode, err := s.episodes.Get(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("load episode: %w", err)
	}

	if err := s.episodes.Delete(ctx, episodeID); err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}

	s.logger.Info("episode deleted", "episode_id", episodeID, "podcast_id", episode.PodcastID)
	s.schedule(ctx, domain.TaskPublishFeed, episode.PodcastID)
	return nil
}

func (s *CatalogService) ListPodcasts(ctx context.Context) ([]domain.Podcast, error) {
	podcasts, err := s.podcasts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}
	return podcasts, nil
}

func (s *CatalogService) LatestFeed(ctx context.Context, podcastID string) (*domain.PublishedFeed, error) {
	fv, err := s.versions.GetLatest(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("get latest feed: %w", err)
	}
	return &domain.PublishedFeed{
		FeedVersion: *fv,
		FeedURL:     s.objects.PublicURL(fv.XMLKey),
	}, nil
}

// FeedVersions lists every recorded feed version of the podcast, newest first.
func (s *CatalogService) FeedVersions(ctx context.Context, podcastID string) ([]domain.PublishedFeed, error) {
	versions, err := s.versions.ListByPodcast(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("list feed versions: %w", err)
	}

	feeds := make([]domain.PublishedFeed, 0, len(versions))
	for _, fv := range versions {
		feeds = append(feeds, domain.PublishedFeed{
			FeedVersion: fv,
			FeedURL:     s.objects.PublicURL(fv.XMLKey),
		})
	}
	return feeds, nil
}

// ScheduleEnrichment queues an enrichment run for the episode.
func (s *CatalogService) ScheduleEnrichment(ctx context.Context, episodeID string) error {
	return s.tasks.Enqueue(ctx, domain.NewTask(domain.TaskEnrichEpisode, episodeID))
}

// SchedulePublish queues a feed publish for the podcast.
func (s *CatalogService) SchedulePublish(ctx context.Context, podcastID string) error {
	return s.tasks.Enqueue(ctx, domain.NewTask(domain.TaskPublishFeed, podcastID))
}

func (s *CatalogService) normalizePubDate(episode *domain.Episode) error {
	if episode.PubDate == "" {
		now := s.now().UTC()
		episode.PubDate = now.Format(time.RFC1123Z)
		episode.PublishedAt = now
		return nil
	}

	publishedAt, err := domain.ParsePubDate(episode.PubDate)
	if err != nil {
		return err
	}
	episode.PublishedAt = publishedAt
	return nil
}

// schedule is fire-and-forget; the enrichment sweep picks up anything lost here.
func (s *CatalogService) schedule(ctx context.Context, kind domain.TaskKind, id string) {
	if err := s.tasks.Enqueue(ctx, domain.NewTask(kind, id)); err != nil {
		s.logger.Warn("failed to schedule task", "kind", kind, "id", id, "error", err)
	}
}
