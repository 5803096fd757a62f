package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"podcaster/internal/domain"
)

const (
	namespaceITunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	namespaceContent = "http://purl.org/rss/1.0/modules/content/"
	namespacePodcast = "https://podcastindex.org/namespace/1.0"

	chaptersMIMEType  = "application/json+chapters"
	enclosureMIMEType = "audio/mpeg"
)

// Options carries the inputs of Encode that are not catalog data.
type Options struct {
	// GeneratedAt is rendered as lastBuildDate, and as pubDate when there are no episodes.
	GeneratedAt time.Time
	// ChaptersURL returns the public URL of an episode's chapters sidecar.
	ChaptersURL func(episodeID string) string
}

type rss struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	ITunesNS  string   `xml:"xmlns:itunes,attr"`
	ContentNS string   `xml:"xmlns:content,attr"`
	PodcastNS string   `xml:"xmlns:podcast,attr"`
	Channel   channel  `xml:"channel"`
}

type channel struct {
	Title         string           `xml:"title"`
	Link          string           `xml:"link"`
	Description   string           `xml:"description"`
	Language      string           `xml:"language,omitempty"`
	Copyright     string           `xml:"copyright,omitempty"`
	LastBuildDate string           `xml:"lastBuildDate"`
	PubDate       string           `xml:"pubDate"`
	Author        string           `xml:"itunes:author,omitempty"`
	Summary       string           `xml:"itunes:summary,omitempty"`
	Type          string           `xml:"itunes:type"`
	Owner         itunesOwner      `xml:"itunes:owner"`
	Image         *itunesImage     `xml:"itunes:image,omitempty"`
	Explicit      string           `xml:"itunes:explicit"`
	Categories    []itunesCategory `xml:"itunes:category"`
	Items         []item           `xml:"item"`
}

type item struct {
	Title          string           `xml:"title"`
	Description    cdata            `xml:"description"`
	ContentEncoded cdata            `xml:"content:encoded"`
	Link           string           `xml:"link,omitempty"`
	GUID           guid             `xml:"guid"`
	PubDate        string           `xml:"pubDate"`
	Enclosure      enclosure        `xml:"enclosure"`
	ITunesTitle    string           `xml:"itunes:title"`
	Author         string           `xml:"itunes:author,omitempty"`
	Summary        string           `xml:"itunes:summary,omitempty"`
	Duration       string           `xml:"itunes:duration"`
	Explicit       string           `xml:"itunes:explicit"`
	Image          *itunesImage     `xml:"itunes:image,omitempty"`
	Keywords       string           `xml:"itunes:keywords,omitempty"`
	Chapters       *podcastChapters `xml:"podcast:chapters,omitempty"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type itunesOwner struct {
	Name  string `xml:"itunes:name"`
	Email string `xml:"itunes:email"`
}

type itunesImage struct {
	Href string `xml:"href,attr"`
}

type itunesCategory struct {
	Text string `xml:"text,attr"`
}

type podcastChapters struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// Encode renders the RSS document for a podcast. Episodes are emitted in the order given.
func Encode(podcast *domain.Podcast, episodes []domain.Episode, opts Options) ([]byte, error) {
	generatedAt := opts.GeneratedAt.UTC()

	ch := channel{
		Title:         podcast.Title,
		Link:          podcast.Link,
		Description:   podcast.Description,
		Language:      podcast.Language,
		Copyright:     podcast.Copyright,
		LastBuildDate: generatedAt.Format(time.RFC1123Z),
		PubDate:       generatedAt.Format(time.RFC1123Z),
		Author:        podcast.Author,
		Summary:       podcast.Description,
		Type:          "episodic",
		Owner:         ownerOf(podcast),
		Image:         imageOf(podcast.ImageURL),
		Explicit:      explicitFlag(podcast.Explicit),
		Items:         make([]item, 0, len(episodes)),
	}
	if ch.Copyright == "" && podcast.Author != "" {
		ch.Copyright = fmt.Sprintf("Copyright %d %s", copyrightYear(podcast, episodes, generatedAt), podcast.Author)
	}
	for _, c := range podcast.Categories {
		ch.Categories = append(ch.Categories, itunesCategory{Text: c})
	}
	if len(episodes) > 0 {
		ch.PubDate = pubDateOf(&episodes[0])
	}

	for i := range episodes {
		ch.Items = append(ch.Items, encodeItem(podcast, &episodes[i], opts.ChaptersURL))
	}

	doc := rss{
		Version:   "2.0",
		ITunesNS:  namespaceITunes,
		ContentNS: namespaceContent,
		PodcastNS: namespacePodcast,
		Channel:   ch,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func encodeItem(podcast *domain.Podcast, ep *domain.Episode, chaptersURL func(string) string) item {
	description := itemDescription(ep)

	it := item{
		Title:          ep.Title,
		Description:    cdata{Text: description},
		ContentEncoded: cdata{Text: description},
		Link:           ep.Link,
		GUID:           guid{IsPermaLink: "false", Value: ep.GUID},
		PubDate:        pubDateOf(ep),
		Enclosure: enclosure{
			URL:    ep.AudioURL,
			Length: "0",
			Type:   enclosureMIMEType,
		},
		ITunesTitle: ep.Title,
		Author:      podcast.Author,
		Summary:     ep.Description,
		Duration:    FormatDuration(ep.Duration),
		Explicit:    explicitFlag(ep.Explicit),
		Keywords:    strings.Join(ep.Keywords, ","),
	}
	if it.Link == "" {
		it.Link = ep.AudioURL
	}

	if ep.ImageURL != nil && *ep.ImageURL != "" {
		it.Image = imageOf(*ep.ImageURL)
	} else {
		it.Image = imageOf(podcast.ImageURL)
	}

	if ep.HasChapters() && chaptersURL != nil {
		it.Chapters = &podcastChapters{
			URL:  chaptersURL(ep.ID),
			Type: chaptersMIMEType,
		}
	}

	return it
}

func itemDescription(ep *domain.Episode) string {
	if !ep.HasChapters() {
		return ep.Description
	}
	return ep.Description + "\n\n" + ChapterLines(ep.Chapters)
}

// copyrightYear is the year of the newest episode, else the year the podcast was created.
// It never depends on the generation time unless the catalog carries no dates at all.
func copyrightYear(podcast *domain.Podcast, episodes []domain.Episode, generatedAt time.Time) int {
	if len(episodes) > 0 {
		if !episodes[0].PublishedAt.IsZero() {
			return episodes[0].PublishedAt.UTC().Year()
		}
		if t, err := domain.ParsePubDate(episodes[0].PubDate); err == nil {
			return t.Year()
		}
	}
	if !podcast.CreatedAt.IsZero() {
		return podcast.CreatedAt.UTC().Year()
	}
	return generatedAt.Year()
}

func pubDateOf(ep *domain.Episode) string {
	if ep.PubDate != "" {
		return ep.PubDate
	}
	return ep.PublishedAt.UTC().Format(time.RFC1123Z)
}

func ownerOf(p *domain.Podcast) itunesOwner {
	owner := p.Owner()
	if owner.Name == "" {
		owner.Name = p.Author
	}
	return itunesOwner{Name: owner.Name, Email: owner.Email}
}

func imageOf(href string) *itunesImage {
	if href == "" {
		return nil
	}
	return &itunesImage{Href: href}
}
