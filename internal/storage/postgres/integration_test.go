//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"podcaster/internal/config"
	"podcaster/internal/domain"
	"podcaster/internal/service"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	logger    *slog.Logger

	podcasts *PodcastStore
	episodes *EpisodeStore
	versions *FeedVersionStore
	tm       *TransactionManager
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_catalog.up.sql"),
			filepath.Join(migrationsPath, "002_track_enrichment_failures.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.podcasts = NewPodcastStore(db)
	s.episodes = NewEpisodeStore(db)
	s.versions = NewFeedVersionStore(db)
	s.tm = NewTransactionManager(db, WithLogger(s.logger))
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM feed_versions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM episodes")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM podcasts")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createPodcast() *domain.Podcast {
	p := &domain.Podcast{
		ID:         uuid.NewString(),
		Title:      "Night Shift",
		Author:     "Ada",
		Categories: []string{"Technology"},
	}
	s.Require().NoError(s.podcasts.Insert(s.ctx, p))
	return p
}

func (s *PostgresIntegrationSuite) createEpisode(podcastID string, publishedAt time.Time) *domain.Episode {
	e := &domain.Episode{
		ID:          uuid.NewString(),
		PodcastID:   podcastID,
		Title:       "Episode " + publishedAt.Format("2006-01-02"),
		GUID:        uuid.NewString(),
		PubDate:     publishedAt.Format(time.RFC1123Z),
		PublishedAt: publishedAt,
		Duration:    125,
		AudioKey:    "episodes/audio/" + uuid.NewString() + ".mp3",
		Keywords:    []string{"a", "b"},
		Chapters:    []domain.Chapter{},
	}
	s.Require().NoError(s.episodes.Insert(s.ctx, e))
	return e
}

func (s *PostgresIntegrationSuite) TestPodcastStore_CRUD() {
	p := s.createPodcast()
	s.False(p.CreatedAt.IsZero())

	got, err := s.podcasts.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Night Shift", got.Title)
	s.Equal([]string{"Technology"}, got.Categories)

	got.Title = "Day Shift"
	got.Explicit = true
	s.Require().NoError(s.podcasts.Update(s.ctx, got))

	got, err = s.podcasts.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Day Shift", got.Title)
	s.True(got.Explicit)

	s.Require().NoError(s.podcasts.Delete(s.ctx, p.ID))

	_, err = s.podcasts.Get(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))

	err = s.podcasts.Delete(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestPodcastStore_MalformedIDIsNotFound() {
	_, err := s.podcasts.Get(s.ctx, "not-a-uuid")
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ListOrderedByPublishDate() {
	p := s.createPodcast()
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	middle := s.createEpisode(p.ID, base.Add(24*time.Hour))
	oldest := s.createEpisode(p.ID, base)
	newest := s.createEpisode(p.ID, base.Add(48*time.Hour))

	list, err := s.episodes.ListByPodcast(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(newest.ID, list[0].ID)
	s.Equal(middle.ID, list[1].ID)
	s.Equal(oldest.ID, list[2].ID)
	s.Equal([]string{"a", "b"}, list[0].Keywords)
	s.NotNil(list[0].Chapters)
	s.Nil(list[0].Transcript)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_DuplicateGUIDRejected() {
	p := s.createPodcast()
	e := s.createEpisode(p.ID, time.Now().UTC())

	dup := *e
	dup.ID = uuid.NewString()
	s.Error(s.episodes.Insert(s.ctx, &dup))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ApplyEnrichmentOverwrites() {
	p := s.createPodcast()
	e := s.createEpisode(p.ID, time.Now().UTC())

	first := &domain.Enrichment{
		Transcript:    "first transcript",
		TranscriptKey: "episodes/transcripts/" + e.ID + ".txt",
		Chapters:      []domain.Chapter{{StartTime: 0, Title: "Intro"}, {StartTime: 60, Title: "Main"}},
		Description:   "first description",
	}
	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, e.ID, first))

	second := &domain.Enrichment{
		Transcript:    "second transcript",
		TranscriptKey: first.TranscriptKey,
		Chapters:      []domain.Chapter{{StartTime: 0, Title: "Only", Description: "one"}},
		Description:   "second description",
	}
	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, e.ID, second))
	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, e.ID, second))

	got, err := s.episodes.Get(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Transcript)
	s.Equal("second transcript", *got.Transcript)
	s.Equal(first.TranscriptKey, *got.TranscriptKey)
	s.Equal("second description", got.Description)
	s.Equal(second.Chapters, got.Chapters)

	err = s.episodes.ApplyEnrichment(s.ctx, uuid.NewString(), second)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ListPendingEnrichment() {
	p := s.createPodcast()
	pending := s.createEpisode(p.ID, time.Now().UTC())
	enriched := s.createEpisode(p.ID, time.Now().UTC())

	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, enriched.ID, &domain.Enrichment{
		Transcript:    "t",
		TranscriptKey: "k",
		Description:   "d",
	}))

	ids, err := s.episodes.ListPendingEnrichment(s.ctx, time.Now().Add(time.Minute), 5, 10)
	s.Require().NoError(err)
	s.Equal([]string{pending.ID}, ids)

	ids, err = s.episodes.ListPendingEnrichment(s.ctx, time.Now().Add(-time.Hour), 5, 10)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_FailedEnrichmentLeavesSweep() {
	p := s.createPodcast()
	rejected := s.createEpisode(p.ID, time.Now().UTC())
	flaky := s.createEpisode(p.ID, time.Now().UTC())
	untouched := s.createEpisode(p.ID, time.Now().UTC())

	failedAt := time.Now().UTC().Add(-time.Hour)
	s.Require().NoError(s.episodes.RecordEnrichmentFailure(s.ctx, rejected.ID, domain.EnrichmentFailure{
		Error: "rejected input: transcribe: 413", Permanent: true, FailedAt: failedAt,
	}))
	for i := 0; i < 2; i++ {
		s.Require().NoError(s.episodes.RecordEnrichmentFailure(s.ctx, flaky.ID, domain.EnrichmentFailure{
			Error: "upstream unavailable: 503", FailedAt: failedAt,
		}))
	}

	got, err := s.episodes.Get(s.ctx, flaky.ID)
	s.Require().NoError(err)
	s.Equal(2, got.EnrichmentFailures)
	s.False(got.EnrichmentAbandoned)
	s.Require().NotNil(got.EnrichmentError)
	s.Equal("upstream unavailable: 503", *got.EnrichmentError)
	s.Require().NotNil(got.EnrichmentFailedAt)
	s.WithinDuration(failedAt, *got.EnrichmentFailedAt, time.Second)

	got, err = s.episodes.Get(s.ctx, rejected.ID)
	s.Require().NoError(err)
	s.True(got.EnrichmentAbandoned)

	future := time.Now().Add(time.Minute)

	ids, err := s.episodes.ListPendingEnrichment(s.ctx, future, 5, 10)
	s.Require().NoError(err)
	s.ElementsMatch([]string{flaky.ID, untouched.ID}, ids)

	ids, err = s.episodes.ListPendingEnrichment(s.ctx, future, 2, 10)
	s.Require().NoError(err)
	s.Equal([]string{untouched.ID}, ids)

	ids, err = s.episodes.ListPendingEnrichment(s.ctx, failedAt.Add(-time.Minute), 5, 10)
	s.Require().NoError(err)
	s.Empty(ids)

	err = s.episodes.RecordEnrichmentFailure(s.ctx, uuid.NewString(), domain.EnrichmentFailure{FailedAt: failedAt})
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_EnrichmentOrNewAudioClearsFailures() {
	p := s.createPodcast()
	enriched := s.createEpisode(p.ID, time.Now().UTC())
	reuploaded := s.createEpisode(p.ID, time.Now().UTC())
	failure := domain.EnrichmentFailure{Error: "rejected", Permanent: true, FailedAt: time.Now().UTC()}

	s.Require().NoError(s.episodes.RecordEnrichmentFailure(s.ctx, enriched.ID, failure))
	s.Require().NoError(s.episodes.RecordEnrichmentFailure(s.ctx, reuploaded.ID, failure))

	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, enriched.ID, &domain.Enrichment{
		Transcript: "t", TranscriptKey: "k", Description: "d",
	}))
	got, err := s.episodes.Get(s.ctx, enriched.ID)
	s.Require().NoError(err)
	s.Zero(got.EnrichmentFailures)
	s.False(got.EnrichmentAbandoned)
	s.Nil(got.EnrichmentError)
	s.Nil(got.EnrichmentFailedAt)

	got, err = s.episodes.Get(s.ctx, reuploaded.ID)
	s.Require().NoError(err)
	got.Title = "Retitled"
	s.Require().NoError(s.episodes.Update(s.ctx, got))

	got, err = s.episodes.Get(s.ctx, reuploaded.ID)
	s.Require().NoError(err)
	s.True(got.EnrichmentAbandoned, "same audio keeps the failure")

	got.AudioKey = "episodes/audio/" + uuid.NewString() + ".mp3"
	s.Require().NoError(s.episodes.Update(s.ctx, got))

	got, err = s.episodes.Get(s.ctx, reuploaded.ID)
	s.Require().NoError(err)
	s.False(got.EnrichmentAbandoned)
	s.Zero(got.EnrichmentFailures)
}

func (s *PostgresIntegrationSuite) TestPodcastStore_ListStaleFeeds() {
	unpublished := s.createPodcast()
	published := s.createPodcast()
	episode := s.createEpisode(published.ID, time.Now().UTC())

	feeds := s.newFeedService(newMemoryObjects())
	_, err := feeds.Publish(s.ctx, published.ID)
	s.Require().NoError(err)

	future := time.Now().Add(time.Minute)

	ids, err := s.podcasts.ListStaleFeeds(s.ctx, future, 10)
	s.Require().NoError(err)
	s.Equal([]string{unpublished.ID}, ids)

	ids, err = s.podcasts.ListStaleFeeds(s.ctx, time.Now().Add(-time.Hour), 10)
	s.Require().NoError(err)
	s.Empty(ids, "recent changes are left to the publish already queued")

	s.Require().NoError(s.episodes.ApplyEnrichment(s.ctx, episode.ID, &domain.Enrichment{
		Transcript: "t", TranscriptKey: "k", Description: "enriched",
	}))

	ids, err = s.podcasts.ListStaleFeeds(s.ctx, time.Now().Add(time.Minute), 10)
	s.Require().NoError(err)
	s.ElementsMatch([]string{unpublished.ID, published.ID}, ids)

	_, err = feeds.Publish(s.ctx, published.ID)
	s.Require().NoError(err)

	ids, err = s.podcasts.ListStaleFeeds(s.ctx, time.Now().Add(time.Minute), 10)
	s.Require().NoError(err)
	s.Equal([]string{unpublished.ID}, ids)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_DeleteMarksPodcastChanged() {
	p := s.createPodcast()
	e := s.createEpisode(p.ID, time.Now().UTC())

	before, err := s.podcasts.Get(s.ctx, p.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.episodes.Delete(s.ctx, e.ID))

	after, err := s.podcasts.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(after.UpdatedAt.After(before.UpdatedAt))

	err = s.episodes.Delete(s.ctx, e.ID)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestFeedVersionStore_OnlyOneLatest() {
	p := s.createPodcast()
	now := time.Now().UTC().Truncate(time.Microsecond)

	v1 := &domain.FeedVersion{ID: uuid.NewString(), PodcastID: p.ID, Version: 1, PublishedAt: now, XMLKey: "a", IsLatest: true}
	s.Require().NoError(s.versions.Insert(s.ctx, v1))

	v2 := &domain.FeedVersion{ID: uuid.NewString(), PodcastID: p.ID, Version: 2, PublishedAt: now, XMLKey: "b", IsLatest: true}
	err := s.versions.Insert(s.ctx, v2)
	s.True(errors.Is(err, domain.ErrConflictingVersion))

	dup := &domain.FeedVersion{ID: uuid.NewString(), PodcastID: p.ID, Version: 1, PublishedAt: now, XMLKey: "c"}
	err = s.versions.Insert(s.ctx, dup)
	s.True(errors.Is(err, domain.ErrConflictingVersion))

	s.Require().NoError(s.versions.ClearLatest(s.ctx, v1.ID))
	err = s.versions.ClearLatest(s.ctx, v1.ID)
	s.True(errors.Is(err, domain.ErrConflictingVersion))
}

func (s *PostgresIntegrationSuite) newFeedService(objects *memoryObjects) *service.FeedService {
	return service.NewFeedService(
		s.podcasts,
		s.episodes,
		s.versions,
		objects,
		s.tm,
		s.logger,
		config.PipelineConfig{
			CallTimeout:        10 * time.Second,
			SidecarConcurrency: 2,
			PublishAttempts:    3,
		},
	)
}

func (s *PostgresIntegrationSuite) TestPublish_VersionsContiguous() {
	p := s.createPodcast()
	objects := newMemoryObjects()
	feeds := s.newFeedService(objects)

	first, err := feeds.Publish(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(1, first.Version)
	s.NotContains(string(objects.get(first.FeedURL)), "<item>")

	s.createEpisode(p.ID, time.Now().UTC())

	for i := 2; i <= 3; i++ {
		res, err := feeds.Publish(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal(i, res.Version)
	}

	versions, err := s.versions.ListByPodcast(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(versions, 3)
	s.Equal(3, versions[0].Version)
	s.True(versions[0].IsLatest)
	s.False(versions[1].IsLatest)
	s.False(versions[2].IsLatest)

	latest, err := s.versions.GetLatest(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(versions[0].ID, latest.ID)
}

func (s *PostgresIntegrationSuite) TestPublish_ConcurrentCallsNeverShareLatestOrVersion() {
	p := s.createPodcast()
	s.createEpisode(p.ID, time.Now().UTC())
	feeds := s.newFeedService(newMemoryObjects())

	const publishers = 4

	var wg sync.WaitGroup
	results := make([]*domain.PublishResult, publishers)
	errs := make([]error, publishers)

	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = feeds.Publish(s.ctx, p.ID)
		}(i)
	}
	wg.Wait()

	var got []int
	for i := range results {
		s.Require().NoError(errs[i])
		got = append(got, results[i].Version)
	}
	sort.Ints(got)
	s.Equal([]int{1, 2, 3, 4}, got)

	var latest int
	err := s.db.GetContext(s.ctx, &latest,
		"SELECT COUNT(*) FROM feed_versions WHERE podcast_id = $1 AND is_latest", p.ID)
	s.Require().NoError(err)
	s.Equal(1, latest)
}

func (s *PostgresIntegrationSuite) TestDeletePodcast_Cascades() {
	p := s.createPodcast()
	other := s.createPodcast()
	for i := 0; i < 3; i++ {
		s.createEpisode(p.ID, time.Now().UTC().Add(time.Duration(i)*time.Hour))
	}
	s.createEpisode(other.ID, time.Now().UTC())

	feeds := s.newFeedService(newMemoryObjects())
	for i := 0; i < 2; i++ {
		_, err := feeds.Publish(s.ctx, p.ID)
		s.Require().NoError(err)
	}

	catalog := service.NewCatalogService(s.podcasts, s.episodes, s.versions, newMemoryObjects(), s.tm, noopQueue{}, s.logger)
	s.Require().NoError(catalog.DeletePodcast(s.ctx, p.ID))

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM episodes WHERE podcast_id = $1", p.ID))
	s.Equal(0, count)
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM feed_versions WHERE podcast_id = $1", p.ID))
	s.Equal(0, count)
	_, err := s.podcasts.Get(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))

	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM episodes WHERE podcast_id = $1", other.ID))
	s.Equal(1, count)

	err = catalog.DeletePodcast(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	p := &domain.Podcast{ID: uuid.NewString(), Title: "In Tx"}

	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return s.podcasts.Insert(ctx, p)
	})
	s.NoError(err)

	_, err = s.podcasts.Get(s.ctx, p.ID)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	existing := s.createPodcast()
	p := &domain.Podcast{ID: uuid.NewString(), Title: "Should Rollback"}

	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := s.podcasts.Insert(ctx, p); err != nil {
			return err
		}
		if _, err := s.episodes.DeleteByPodcast(ctx, existing.ID); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	_, err = s.podcasts.Get(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))

	_, err = s.podcasts.Get(s.ctx, existing.ID)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_NestedCallJoinsOuter() {
	p := &domain.Podcast{ID: uuid.NewString(), Title: "Outer"}

	err := s.tm.WithTransaction(s.ctx, func(outer context.Context) error {
		err := s.tm.WithTransaction(outer, func(inner context.Context) error {
			s.Same(txFromContext(outer), txFromContext(inner))
			return s.podcasts.Insert(inner, p)
		})
		if err != nil {
			return err
		}
		return errors.New("abort outer")
	})
	s.Error(err)

	_, err = s.podcasts.Get(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *PostgresIntegrationSuite) TestTransaction_RerunsAfterSerializationFailure() {
	var runs int
	p := &domain.Podcast{ID: uuid.NewString(), Title: "Second Try"}

	err := s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		runs++
		if err := s.podcasts.Insert(ctx, p); err != nil {
			return err
		}
		if runs == 1 {
			return &pq.Error{Code: serializationFailure}
		}
		return nil
	})
	s.Require().NoError(err)
	s.Equal(2, runs)

	_, err = s.podcasts.Get(s.ctx, p.ID)
	s.NoError(err)
}

func (s *PostgresIntegrationSuite) TestTransaction_GivesUpAfterAttempts() {
	tm := NewTransactionManager(s.db, WithAttempts(2), WithIsolation(sql.LevelSerializable), WithLogger(s.logger))

	var runs int
	err := tm.WithTransaction(s.ctx, func(context.Context) error {
		runs++
		return &pq.Error{Code: deadlockDetected}
	})
	s.True(isTransient(err))
	s.Equal(2, runs)

	runs = 0
	err = tm.WithTransaction(s.ctx, func(context.Context) error {
		runs++
		return domain.Wrap(domain.ErrConflictingVersion, "insert", nil)
	})
	s.True(errors.Is(err, domain.ErrConflictingVersion))
	s.Equal(1, runs)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollsBackOnPanic() {
	p := &domain.Podcast{ID: uuid.NewString(), Title: "Panics"}

	s.Panics(func() {
		_ = s.tm.WithTransaction(s.ctx, func(ctx context.Context) error {
			s.Require().NoError(s.podcasts.Insert(ctx, p))
			panic("handler bug")
		})
	})

	_, err := s.podcasts.Get(s.ctx, p.ID)
	s.True(errors.Is(err, domain.ErrNotFound))
}

type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}}
}

func (m *memoryObjects) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return m.PublicURL(key), nil
}

func (m *memoryObjects) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, domain.Wrap(domain.ErrNotFound, "get object "+key, nil)
	}
	return data, nil
}

func (m *memoryObjects) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryObjects) PublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.com/%s", key)
}

func (m *memoryObjects) get(url string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[strings.TrimPrefix(url, "https://cdn.example.com/")]
}

type noopQueue struct{}

func (noopQueue) Enqueue(context.Context, domain.Task) error { return nil }
