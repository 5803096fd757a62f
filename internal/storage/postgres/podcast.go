package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podcaster/internal/domain"
)

type PodcastStore struct {
	db *sqlx.DB
}

func NewPodcastStore(db *sqlx.DB) *PodcastStore {
	return &PodcastStore{db: db}
}

type podcastRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Link        string         `db:"link"`
	Language    string         `db:"language"`
	Copyright   string         `db:"copyright"`
	Author      string         `db:"author"`
	OwnerName   string         `db:"owner_name"`
	OwnerEmail  string         `db:"owner_email"`
	ImageURL    string         `db:"image_url"`
	ImageKey    string         `db:"image_key"`
	Explicit    bool           `db:"explicit"`
	Categories  pq.StringArray `db:"categories"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r podcastRow) toDomain() *domain.Podcast {
	return &domain.Podcast{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		Language:    r.Language,
		Copyright:   r.Copyright,
		Author:      r.Author,
		OwnerName:   r.OwnerName,
		OwnerEmail:  r.OwnerEmail,
		ImageURL:    r.ImageURL,
		ImageKey:    r.ImageKey,
		Explicit:    r.Explicit,
		Categories:  []string(r.Categories),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

const podcastColumns = `id, title, description, link, language, copyright, author,
	owner_name, owner_email, image_url, image_key, explicit, categories, created_at, updated_at`

func (s *PodcastStore) Insert(ctx context.Context, podcast *domain.Podcast) error {
	query := `
		INSERT INTO podcasts (
			id, title, description, link, language, copyright, author,
			owner_name, owner_email, image_url, image_key, explicit, categories
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Description,
		podcast.Link,
		podcast.Language,
		podcast.Copyright,
		podcast.Author,
		podcast.OwnerName,
		podcast.OwnerEmail,
		podcast.ImageURL,
		podcast.ImageKey,
		podcast.Explicit,
		pq.Array(nonNil(podcast.Categories)),
	).Scan(&podcast.CreatedAt, &podcast.UpdatedAt)
	return mapError("insert podcast", err)
}

func (s *PodcastStore) Get(ctx context.Context, id string) (*domain.Podcast, error) {
	var row podcastRow
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id); err != nil {
		return nil, mapError("get podcast "+id, err)
	}
	return row.toDomain(), nil
}

// Update overwrites the mutable fields of the podcast. The id never changes.
func (s *PodcastStore) Update(ctx context.Context, podcast *domain.Podcast) error {
	query := `
		UPDATE podcasts SET
			title = $2,
			description = $3,
			link = $4,
			language = $5,
			copyright = $6,
			author = $7,
			owner_name = $8,
			owner_email = $9,
			image_url = $10,
			image_key = $11,
			explicit = $12,
			categories = $13,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Description,
		podcast.Link,
		podcast.Language,
		podcast.Copyright,
		podcast.Author,
		podcast.OwnerName,
		podcast.OwnerEmail,
		podcast.ImageURL,
		podcast.ImageKey,
		podcast.Explicit,
		pq.Array(nonNil(podcast.Categories)),
	)
	if err != nil {
		return mapError("update podcast", err)
	}
	return requireAffected("update podcast "+podcast.ID, res)
}

func (s *PodcastStore) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM podcasts WHERE id = $1", id)
	if err != nil {
		return mapError("delete podcast", err)
	}
	return requireAffected("delete podcast "+id, res)
}

func (s *PodcastStore) List(ctx context.Context) ([]domain.Podcast, error) {
	var rows []podcastRow
	query := `SELECT ` + podcastColumns + ` FROM podcasts ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	podcasts := make([]domain.Podcast, 0, len(rows))
	for _, r := range rows {
		podcasts = append(podcasts, *r.toDomain())
	}
	return podcasts, nil
}

// ListStaleFeeds returns ids of podcasts whose catalog data changed after their latest feed
// version was generated, or that have no feed yet. Only changes made before changedBefore
// count, which leaves time for a publish already queued. Oldest change first.
func (s *PodcastStore) ListStaleFeeds(ctx context.Context, changedBefore time.Time, limit int) ([]string, error) {
	query := `
		SELECT p.id
		FROM podcasts p
		LEFT JOIN feed_versions fv ON fv.podcast_id = p.id AND fv.is_latest
		CROSS JOIN LATERAL (
			SELECT GREATEST(p.updated_at, COALESCE(MAX(e.updated_at), p.updated_at)) AS changed_at
			FROM episodes e
			WHERE e.podcast_id = p.id
		) c
		WHERE c.changed_at < $1
			AND (fv.id IS NULL OR fv.published_at < c.changed_at)
		ORDER BY c.changed_at
		LIMIT $2`

	var ids []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids, query, changedBefore, limit)
	return ids, err
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
