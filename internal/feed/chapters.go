package feed

import (
	"encoding/json"
	"fmt"

	"podcaster/internal/domain"
)

const ChaptersVersion = "1.2.0"

// ChaptersDocument is the JSON chapters sidecar referenced by podcast:chapters.
type ChaptersDocument struct {
	Version  string           `json:"version"`
	Title    string           `json:"title,omitempty"`
	Chapters []sidecarChapter `json:"chapters"`
}

type sidecarChapter struct {
	StartTime   float64  `json:"startTime"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	EndTime     *float64 `json:"endTime,omitempty"`
}

// EncodeChapters builds the sidecar for an episode. The last chapter is open-ended (endTime -1).
func EncodeChapters(episodeTitle string, chapters []domain.Chapter) ([]byte, error) {
	doc := ChaptersDocument{
		Version:  ChaptersVersion,
		Title:    episodeTitle,
		Chapters: make([]sidecarChapter, 0, len(chapters)),
	}

	for i, c := range chapters {
		sc := sidecarChapter{
			StartTime:   c.StartTime,
			Title:       c.Title,
			Description: c.Description,
		}
		if i == len(chapters)-1 {
			end := float64(-1)
			sc.EndTime = &end
		}
		doc.Chapters = append(doc.Chapters, sc)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal chapters: %w", err)
	}
	return data, nil
}

// DecodeChapters reads a sidecar back into the episode chapter list.
func DecodeChapters(data []byte) ([]domain.Chapter, error) {
	var doc ChaptersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal chapters: %w", err)
	}
	if doc.Version != ChaptersVersion {
		return nil, fmt.Errorf("unsupported chapters version %q", doc.Version)
	}

	chapters := make([]domain.Chapter, 0, len(doc.Chapters))
	for _, sc := range doc.Chapters {
		chapters = append(chapters, domain.Chapter{
			StartTime:   sc.StartTime,
			Title:       sc.Title,
			Description: sc.Description,
		})
	}
	return chapters, nil
}
