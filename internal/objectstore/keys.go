package objectstore

import (
	"fmt"
	"strings"
	"time"
)

const (
	ContentTypeXML       = "application/rss+xml; charset=utf-8"
	ContentTypeJSON      = "application/json"
	ContentTypeText      = "text/plain; charset=utf-8"
	ContentTypeAudioMPEG = "audio/mpeg"
	ContentTypeJPEG      = "image/jpeg"
)

func EpisodeAudioKey(name string) string {
	return "episodes/audio/" + name + ".mp3"
}

func EpisodeImageKey(name string) string {
	return "episodes/images/" + name + ".jpg"
}

func PodcastImageKey(name string) string {
	return "podcasts/images/" + name + ".jpg"
}

// TranscriptKey is derived from the episode id alone so re-runs overwrite the same object.
func TranscriptKey(episodeID string) string {
	return "episodes/transcripts/" + episodeID + ".txt"
}

func ChaptersKey(episodeID string) string {
	return "episodes/chapters/" + episodeID + ".json"
}

// FeedKey is unique per publish; earlier feed documents are never overwritten.
func FeedKey(podcastID string, publishedAt time.Time) string {
	stamp := publishedAt.UTC().Format("2006-01-02T15:04:05.000000000Z")
	return fmt.Sprintf("rss/%s/%s.xml", podcastID, strings.ReplaceAll(stamp, ":", "-"))
}
