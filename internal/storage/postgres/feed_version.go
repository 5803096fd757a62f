package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"podcaster/internal/domain"
)

type FeedVersionStore struct {
	db *sqlx.DB
}

func NewFeedVersionStore(db *sqlx.DB) *FeedVersionStore {
	return &FeedVersionStore{db: db}
}

const feedVersionColumns = `id, podcast_id, version, published_at, xml_key, is_latest`

func (s *FeedVersionStore) GetLatest(ctx context.Context, podcastID string) (*domain.FeedVersion, error) {
	var fv domain.FeedVersion
	query := `SELECT ` + feedVersionColumns + ` FROM feed_versions WHERE podcast_id = $1 AND is_latest`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &fv, query, podcastID); err != nil {
		return nil, mapError("get latest feed version of "+podcastID, err)
	}
	return &fv, nil
}

// LockLatest serializes publishes of one podcast by locking its podcast row, then reads and
// locks the latest version. It must run inside a transaction; the locks are held until it ends.
func (s *FeedVersionStore) LockLatest(ctx context.Context, podcastID string) (*domain.FeedVersion, error) {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, `SELECT 1 FROM podcasts WHERE id = $1 FOR UPDATE`, podcastID); err != nil {
		return nil, mapError("lock podcast "+podcastID, err)
	}

	var fv domain.FeedVersion
	query := `SELECT ` + feedVersionColumns + `
		FROM feed_versions
		WHERE podcast_id = $1 AND is_latest
		FOR UPDATE`

	if err := sqlx.GetContext(ctx, exec, &fv, query, podcastID); err != nil {
		return nil, mapError("lock latest feed version of "+podcastID, err)
	}
	return &fv, nil
}

func (s *FeedVersionStore) ClearLatest(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE feed_versions SET is_latest = FALSE WHERE id = $1 AND is_latest",
		id,
	)
	if err != nil {
		return mapError("clear latest feed version", err)
	}
	if err := requireAffected("clear latest feed version "+id, res); err != nil {
		return domain.Wrap(domain.ErrConflictingVersion, "clear latest feed version "+id, err)
	}
	return nil
}

func (s *FeedVersionStore) Insert(ctx context.Context, fv *domain.FeedVersion) error {
	query := `
		INSERT INTO feed_versions (id, podcast_id, version, published_at, xml_key, is_latest)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		fv.ID,
		fv.PodcastID,
		fv.Version,
		fv.PublishedAt,
		fv.XMLKey,
		fv.IsLatest,
	)
	return mapError("insert feed version", err)
}

// ListByPodcast returns every version of the podcast's feed, newest first.
func (s *FeedVersionStore) ListByPodcast(ctx context.Context, podcastID string) ([]domain.FeedVersion, error) {
	var versions []domain.FeedVersion
	query := `SELECT ` + feedVersionColumns + `
		FROM feed_versions
		WHERE podcast_id = $1
		ORDER BY version DESC`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &versions, query, podcastID)
	return versions, err
}

func (s *FeedVersionStore) DeleteByPodcast(ctx context.Context, podcastID string) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM feed_versions WHERE podcast_id = $1", podcastID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
