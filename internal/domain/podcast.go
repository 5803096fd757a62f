package domain

import "time"

type Podcast struct {
	ID          string
	Title       string
	Description string
	Link        string
	Language    string
	Copyright   string
	Author      string
	OwnerName   string
	OwnerEmail  string
	ImageURL    string
	ImageKey    string
	Explicit    bool
	Categories  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Owner returns the itunes:owner pair of the podcast.
func (p *Podcast) Owner() Owner {
	return Owner{Name: p.OwnerName, Email: p.OwnerEmail}
}

type Owner struct {
	Name  string
	Email string
}
