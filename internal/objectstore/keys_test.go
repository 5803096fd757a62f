package objectstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "episodes/transcripts/e1.txt", TranscriptKey("e1"))
	assert.Equal(t, "episodes/chapters/e1.json", ChaptersKey("e1"))
	assert.Equal(t, "episodes/audio/a.mp3", EpisodeAudioKey("a"))
	assert.Equal(t, "episodes/images/a.jpg", EpisodeImageKey("a"))
	assert.Equal(t, "podcasts/images/a.jpg", PodcastImageKey("a"))
}

func TestFeedKey_UniquePerInstant(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)

	assert.Equal(t, "rss/p1/2026-03-01T12-30-45.123456789Z.xml", FeedKey("p1", at))
	assert.NotEqual(t, FeedKey("p1", at), FeedKey("p1", at.Add(time.Nanosecond)))
}

func TestFeedKey_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2026, 3, 1, 13, 0, 0, 0, loc)

	assert.Equal(t, "rss/p1/2026-03-01T12-00-00.000000000Z.xml", FeedKey("p1", at))
}
