package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podcaster/internal/domain"
)

type EpisodeStore struct {
	db *sqlx.DB
}

func NewEpisodeStore(db *sqlx.DB) *EpisodeStore {
	return &EpisodeStore{db: db}
}

type episodeRow struct {
	ID            string         `db:"id"`
	PodcastID     string         `db:"podcast_id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Link          string         `db:"link"`
	GUID          string         `db:"guid"`
	PubDate       string         `db:"pub_date"`
	PublishedAt   time.Time      `db:"published_at"`
	Duration      int            `db:"duration"`
	AudioURL      string         `db:"audio_url"`
	AudioKey      string         `db:"audio_key"`
	ImageURL      sql.NullString `db:"image_url"`
	ImageKey      sql.NullString `db:"image_key"`
	Explicit      bool           `db:"explicit"`
	Keywords      pq.StringArray `db:"keywords"`
	Chapters      []byte         `db:"chapters"`
	Transcript    sql.NullString `db:"transcript"`
	TranscriptKey sql.NullString `db:"transcript_key"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`

	EnrichmentFailures  int            `db:"enrichment_failures"`
	EnrichmentFailedAt  sql.NullTime   `db:"enrichment_failed_at"`
	EnrichmentError     sql.NullString `db:"enrichment_error"`
	EnrichmentAbandoned bool           `db:"enrichment_abandoned"`
}

func (r episodeRow) toDomain() (*domain.Episode, error) {
	var chapters []domain.Chapter
	if len(r.Chapters) > 0 {
		if err := json.Unmarshal(r.Chapters, &chapters); err != nil {
			return nil, fmt.Errorf("decode chapters of episode %s: %w", r.ID, err)
		}
	}
	if chapters == nil {
		chapters = []domain.Chapter{}
	}

	return &domain.Episode{
		ID:            r.ID,
		PodcastID:     r.PodcastID,
		Title:         r.Title,
		Description:   r.Description,
		Link:          r.Link,
		GUID:          r.GUID,
		PubDate:       r.PubDate,
		PublishedAt:   r.PublishedAt,
		Duration:      r.Duration,
		AudioURL:      r.AudioURL,
		AudioKey:      r.AudioKey,
		ImageURL:      nullable(r.ImageURL),
		ImageKey:      nullable(r.ImageKey),
		Explicit:      r.Explicit,
		Keywords:      []string(r.Keywords),
		Chapters:      chapters,
		Transcript:    nullable(r.Transcript),
		TranscriptKey: nullable(r.TranscriptKey),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,

		EnrichmentFailures:  r.EnrichmentFailures,
		EnrichmentFailedAt:  nullableTime(r.EnrichmentFailedAt),
		EnrichmentError:     nullable(r.EnrichmentError),
		EnrichmentAbandoned: r.EnrichmentAbandoned,
	}, nil
}

const episodeColumns = `id, podcast_id, title, description, link, guid, pub_date, published_at,
	duration, audio_url, audio_key, image_url, image_key, explicit, keywords, chapters,
	transcript, transcript_key, created_at, updated_at,
	enrichment_failures, enrichment_failed_at, enrichment_error, enrichment_abandoned`

func (s *EpisodeStore) Insert(ctx context.Context, episode *domain.Episode) error {
	chapters, err := encodeChapters(episode.Chapters)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO episodes (
			id, podcast_id, title, description, link, guid, pub_date, published_at,
			duration, audio_url, audio_key, image_url, image_key, explicit, keywords,
			chapters, transcript, transcript_key
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
		RETURNING created_at, updated_at`

	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		episode.ID,
		episode.PodcastID,
		episode.Title,
		episode.Description,
		episode.Link,
		episode.GUID,
		episode.PubDate,
		episode.PublishedAt,
		episode.Duration,
		episode.AudioURL,
		episode.AudioKey,
		episode.ImageURL,
		episode.ImageKey,
		episode.Explicit,
		pq.Array(nonNil(episode.Keywords)),
		chapters,
		episode.Transcript,
		episode.TranscriptKey,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)
	return mapError("insert episode", err)
}

func (s *EpisodeStore) Get(ctx context.Context, id string) (*domain.Episode, error) {
	var row episodeRow
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id); err != nil {
		return nil, mapError("get episode "+id, err)
	}
	return row.toDomain()
}

// ListByPodcast returns the podcast's episodes, most recently published first.
func (s *EpisodeStore) ListByPodcast(ctx context.Context, podcastID string) ([]domain.Episode, error) {
	var rows []episodeRow
	query := `SELECT ` + episodeColumns + `
		FROM episodes
		WHERE podcast_id = $1
		ORDER BY published_at DESC, created_at DESC, id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, podcastID); err != nil {
		return nil, err
	}

	episodes := make([]domain.Episode, 0, len(rows))
	for _, r := range rows {
		e, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, *e)
	}
	return episodes, nil
}

// Update overwrites the mutable fields. podcast_id and guid are never changed.
// New audio clears the enrichment failure record.
func (s *EpisodeStore) Update(ctx context.Context, episode *domain.Episode) error {
	chapters, err := encodeChapters(episode.Chapters)
	if err != nil {
		return err
	}

	query := `
		UPDATE episodes SET
			title = $2,
			description = $3,
			link = $4,
			pub_date = $5,
			published_at = $6,
			duration = $7,
			audio_url = $8,
			audio_key = $9,
			image_url = $10,
			image_key = $11,
			explicit = $12,
			keywords = $13,
			chapters = $14,
			enrichment_failures = CASE WHEN audio_key IS DISTINCT FROM $9 THEN 0 ELSE enrichment_failures END,
			enrichment_abandoned = CASE WHEN audio_key IS DISTINCT FROM $9 THEN FALSE ELSE enrichment_abandoned END,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		episode.ID,
		episode.Title,
		episode.Description,
		episode.Link,
		episode.PubDate,
		episode.PublishedAt,
		episode.Duration,
		episode.AudioURL,
		episode.AudioKey,
		episode.ImageURL,
		episode.ImageKey,
		episode.Explicit,
		pq.Array(nonNil(episode.Keywords)),
		chapters,
	)
	if err != nil {
		return mapError("update episode", err)
	}
	return requireAffected("update episode "+episode.ID, res)
}

// ApplyEnrichment replaces transcript, chapters and description in one statement.
// Re-applying the same enrichment leaves the row unchanged apart from updated_at.
func (s *EpisodeStore) ApplyEnrichment(ctx context.Context, episodeID string, enrichment *domain.Enrichment) error {
	chapters, err := encodeChapters(enrichment.Chapters)
	if err != nil {
		return err
	}

	query := `
		UPDATE episodes SET
			transcript = $2,
			transcript_key = $3,
			chapters = $4,
			description = $5,
			enrichment_failures = 0,
			enrichment_failed_at = NULL,
			enrichment_error = NULL,
			enrichment_abandoned = FALSE,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		episodeID,
		enrichment.Transcript,
		enrichment.TranscriptKey,
		chapters,
		enrichment.Description,
	)
	if err != nil {
		return mapError("apply enrichment", err)
	}
	return requireAffected("apply enrichment "+episodeID, res)
}

// RecordEnrichmentFailure counts a failed run without touching updated_at, so a failure
// never makes the podcast's feed look stale.
func (s *EpisodeStore) RecordEnrichmentFailure(ctx context.Context, episodeID string, failure domain.EnrichmentFailure) error {
	query := `
		UPDATE episodes SET
			enrichment_failures = enrichment_failures + 1,
			enrichment_failed_at = $2,
			enrichment_error = $3,
			enrichment_abandoned = enrichment_abandoned OR $4
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		episodeID,
		failure.FailedAt,
		failure.Error,
		failure.Permanent,
	)
	if err != nil {
		return mapError("record enrichment failure", err)
	}
	return requireAffected("record enrichment failure "+episodeID, res)
}

// Delete removes the episode and marks its podcast as changed.
func (s *EpisodeStore) Delete(ctx context.Context, id string) error {
	query := `
		WITH deleted AS (
			DELETE FROM episodes WHERE id = $1 RETURNING podcast_id
		)
		UPDATE podcasts SET updated_at = NOW()
		WHERE id IN (SELECT podcast_id FROM deleted)`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	if err != nil {
		return mapError("delete episode", err)
	}
	return requireAffected("delete episode "+id, res)
}

func (s *EpisodeStore) DeleteByPodcast(ctx context.Context, podcastID string) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM episodes WHERE podcast_id = $1", podcastID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListPendingEnrichment returns ids of episodes without a transcript, oldest first.
// An episode qualifies when it was created before cutoff, is not abandoned, has failed fewer
// than maxFailures times and has not failed since cutoff.
func (s *EpisodeStore) ListPendingEnrichment(ctx context.Context, cutoff time.Time, maxFailures, limit int) ([]string, error) {
	query := `
		SELECT id FROM episodes
		WHERE transcript IS NULL
			AND NOT enrichment_abandoned
			AND created_at < $1
			AND enrichment_failures < $2
			AND (enrichment_failed_at IS NULL OR enrichment_failed_at < $1)
		ORDER BY created_at
		LIMIT $3`

	var ids []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, cutoff, maxFailures, limit)
	return ids, err
}

func encodeChapters(chapters []domain.Chapter) ([]byte, error) {
	if chapters == nil {
		chapters = []domain.Chapter{}
	}
	data, err := json.Marshal(chapters)
	if err != nil {
		return nil, fmt.Errorf("encode chapters: %w", err)
	}
	return data, nil
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
