package domain

import (
	"fmt"
	"time"
)

type TaskKind string

const (
	TaskEnrichEpisode TaskKind = "enrich_episode"
	TaskPublishFeed   TaskKind = "publish_feed"
)

// Task is a unit of background work delivered at least once.
type Task struct {
	Kind       TaskKind  `json:"kind"`
	ID         string    `json:"id"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
	Attempt    int       `json:"attempt"`
}

func NewTask(kind TaskKind, id string) Task {
	return Task{Kind: kind, ID: id, EnqueuedAt: time.Now().UTC(), Attempt: 1}
}

func (t Task) Validate() error {
	switch t.Kind {
	case TaskEnrichEpisode, TaskPublishFeed:
	default:
		return fmt.Errorf("unknown task kind %q", t.Kind)
	}
	if t.ID == "" {
		return fmt.Errorf("task %s has no id", t.Kind)
	}
	return nil
}

// Retry returns the task for its next delivery attempt.
func (t Task) Retry() Task {
	t.Attempt++
	return t
}

// SweepStats holds statistics about one enrichment sweep.
type SweepStats struct {
	Candidates int
	Enqueued   int
	Errors     int
	Duration   time.Duration
}
