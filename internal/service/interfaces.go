package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"podcaster/internal/domain"
)

type PodcastStore interface {
	Insert(ctx context.Context, podcast *domain.Podcast) error
	Get(ctx context.Context, id string) (*domain.Podcast, error)
	Update(ctx context.Context, podcast *domain.Podcast) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Podcast, error)
	ListStaleFeeds(ctx context.Context, changedBefore time.Time, limit int) ([]string, error)
}

type EpisodeStore interface {
	Insert(ctx context.Context, episode *domain.Episode) error
	Get(ctx context.Context, id string) (*domain.Episode, error)
	ListByPodcast(ctx context.Context, podcastID string) ([]domain.Episode, error)
	Update(ctx context.Context, episode *domain.Episode) error
	ApplyEnrichment(ctx context.Context, episodeID string, enrichment *domain.Enrichment) error
	Delete(ctx context.Context, id string) error
	DeleteByPodcast(ctx context.Context, podcastID string) (int64, error)
	RecordEnrichmentFailure(ctx context.Context, episodeID string, failure domain.EnrichmentFailure) error
	ListPendingEnrichment(ctx context.Context, cutoff time.Time, maxFailures, limit int) ([]string, error)
}

type FeedVersionStore interface {
	GetLatest(ctx context.Context, podcastID string) (*domain.FeedVersion, error)
	LockLatest(ctx context.Context, podcastID string) (*domain.FeedVersion, error)
	ClearLatest(ctx context.Context, id string) error
	Insert(ctx context.Context, fv *domain.FeedVersion) error
	ListByPodcast(ctx context.Context, podcastID string) ([]domain.FeedVersion, error)
	DeleteByPodcast(ctx context.Context, podcastID string) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type TaskQueue interface {
	Enqueue(ctx context.Context, task domain.Task) error
}
