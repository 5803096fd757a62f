package domain

import "time"

type FeedVersion struct {
	ID          string    `db:"id"`
	PodcastID   string    `db:"podcast_id"`
	Version     int       `db:"version"`
	PublishedAt time.Time `db:"published_at"`
	XMLKey      string    `db:"xml_key"`
	IsLatest    bool      `db:"is_latest"`
}

// PublishResult is returned by a successful feed publish.
type PublishResult struct {
	FeedVersionID string
	Version       int
	FeedURL       string
	Sidecars      int
	SidecarErrors int
}

// PublishedFeed pairs a stored feed version with its public URL.
type PublishedFeed struct {
	FeedVersion
	FeedURL string
}
