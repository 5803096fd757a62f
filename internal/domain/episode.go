package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MaxChapterStart is the largest chapter start time, in seconds, the catalog accepts.
const MaxChapterStart = float64(math.MaxInt32)

// Chapter is a labelled position in the episode audio, in seconds.
type Chapter struct {
	StartTime   float64 `json:"startTime"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
}

type Episode struct {
	ID            string
	PodcastID     string
	Title         string
	Description   string
	Link          string
	GUID          string
	PubDate       string // RFC-2822, rendered verbatim into the feed
	PublishedAt   time.Time
	Duration      int // seconds
	AudioURL      string
	AudioKey      string
	ImageURL      *string
	ImageKey      *string
	Explicit      bool
	Keywords      []string
	Chapters      []Chapter
	Transcript    *string
	TranscriptKey *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Failed enrichment runs since the last successful one. An abandoned episode is
	// skipped by the sweep until its audio changes or a run succeeds.
	EnrichmentFailures  int
	EnrichmentFailedAt  *time.Time
	EnrichmentError     *string
	EnrichmentAbandoned bool
}

// HasChapters reports whether a chapters sidecar should be published for the episode.
func (e *Episode) HasChapters() bool {
	return len(e.Chapters) > 0
}

// Enrichment is the result of one pipeline run, applied to an episode in a single update.
type Enrichment struct {
	Transcript    string
	TranscriptKey string
	Chapters      []Chapter
	Description   string
}

// EnrichmentFailure records one failed enrichment run. Permanent failures cannot be fixed
// by running again with the same audio.
type EnrichmentFailure struct {
	Error     string
	Permanent bool
	FailedAt  time.Time
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// ParsePubDate parses an RFC-2822 publish date, tolerating the common variants feed tools emit.
func ParsePubDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse pub date %q: unsupported format", s)
}

// ValidateChapters checks that start times are finite, within MaxChapterStart, non-negative
// and strictly increasing.
func ValidateChapters(chapters []Chapter) error {
	for i, c := range chapters {
		if math.IsNaN(c.StartTime) || c.StartTime > MaxChapterStart {
			return fmt.Errorf("chapter %d: start time %v out of range", i, c.StartTime)
		}
		if c.StartTime < 0 {
			return fmt.Errorf("chapter %d: negative start time %v", i, c.StartTime)
		}
		if i > 0 && c.StartTime <= chapters[i-1].StartTime {
			return fmt.Errorf("chapter %d: start time %v not after %v", i, c.StartTime, chapters[i-1].StartTime)
		}
	}
	return nil
}
