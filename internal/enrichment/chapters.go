package enrichment

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"podcaster/internal/domain"
)

// ParseChapters extracts the first balanced JSON array from a model response and reads
// chapter objects from it. Elements without a usable startTime or title are dropped, as are
// elements that would break the strictly increasing start-time order. Start times must be
// finite and no larger than domain.MaxChapterStart.
// ok is false when the response holds no array or the array is not valid JSON.
func ParseChapters(response string) (chapters []domain.Chapter, ok bool) {
	raw, found := firstJSONArray(response)
	if !found {
		return nil, false
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, false
	}

	chapters = make([]domain.Chapter, 0, len(elements))
	for _, el := range elements {
		c, valid := parseChapter(el)
		if !valid {
			continue
		}
		if n := len(chapters); n > 0 && c.StartTime <= chapters[n-1].StartTime {
			continue
		}
		chapters = append(chapters, c)
	}
	return chapters, true
}

func parseChapter(el json.RawMessage) (domain.Chapter, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(el, &fields); err != nil {
		return domain.Chapter{}, false
	}

	start, ok := parseStartTime(fields["startTime"])
	if !ok || start < 0 || math.IsNaN(start) || start > domain.MaxChapterStart {
		return domain.Chapter{}, false
	}

	var title string
	if err := json.Unmarshal(fields["title"], &title); err != nil {
		return domain.Chapter{}, false
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Chapter{}, false
	}

	var description string
	if d, present := fields["description"]; present {
		_ = json.Unmarshal(d, &description)
	}

	return domain.Chapter{
		StartTime:   start,
		Title:       title,
		Description: strings.TrimSpace(description),
	}, true
}

// parseStartTime accepts seconds as a number, a numeric string, or an "[HH:]MM:SS" string.
func parseStartTime(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil {
		return seconds, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}

// firstJSONArray returns the first '[' ... ']' substring with balanced brackets,
// ignoring brackets inside JSON strings.
func firstJSONArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
