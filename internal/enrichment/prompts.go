package enrichment

import (
	"fmt"

	"podcaster/internal/domain"
	"podcaster/internal/feed"
)

const chapterPromptTemplate = `You are an AI assistant helping to generate podcast chapters.
Based on the following transcript, identify 3-7 distinct segments or topics and create timestamped chapters.
For each chapter, provide a short, descriptive title and the timestamp where it begins.

Transcript:
%s

Format your response as a JSON array with objects containing:
- startTime (in seconds)
- title (string)
`

const descriptionPromptTemplate = `You are an AI assistant helping to generate podcast episode descriptions.
Based on the following transcript and chapters, create a compelling episode description.
Include the chapter timestamps in the format (HH:MM:SS) Chapter Title.

Podcast: %s
Episode: %s

Transcript:
%s

Chapters:
%s

Create a description that summarizes the episode content and highlights key points.
The description should be engaging and informative, around 150-250 words.
`

func ChapterPrompt(transcript string) string {
	return fmt.Sprintf(chapterPromptTemplate, transcript)
}

func DescriptionPrompt(podcastTitle, episodeTitle, transcript string, chapters []domain.Chapter) string {
	return fmt.Sprintf(descriptionPromptTemplate,
		podcastTitle,
		episodeTitle,
		transcript,
		feed.ChapterLines(chapters),
	)
}
