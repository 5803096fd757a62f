package feed

import (
	"fmt"
	"math"
	"strings"

	"podcaster/internal/domain"
)

// FormatDuration renders seconds as H:MM:SS from one hour upwards and M:SS below.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatTimestamp renders a chapter start time as zero-padded HH:MM:SS.
// Values are clamped to [0, domain.MaxChapterStart].
func FormatTimestamp(seconds float64) string {
	switch {
	case seconds < 0 || math.IsNaN(seconds):
		seconds = 0
	case seconds > domain.MaxChapterStart:
		seconds = domain.MaxChapterStart
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// ChapterLines renders one "(HH:MM:SS) Title" line per chapter.
func ChapterLines(chapters []domain.Chapter) string {
	lines := make([]string, 0, len(chapters))
	for _, c := range chapters {
		lines = append(lines, fmt.Sprintf("(%s) %s", FormatTimestamp(c.StartTime), c.Title))
	}
	return strings.Join(lines, "\n")
}

func explicitFlag(explicit bool) string {
	if explicit {
		return "yes"
	}
	return "no"
}
