package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"podcaster/internal/config"
	"podcaster/internal/domain"
	"podcaster/internal/enrichment"
	"podcaster/internal/objectstore"
)

// EnrichmentService runs the transcribe, chapter, description pipeline for one episode.
type EnrichmentService struct {
	episodes    EpisodeStore
	podcasts    PodcastStore
	objects     ObjectStore
	transcriber Transcriber
	generator   TextGenerator
	tasks       TaskQueue
	logger      *slog.Logger
	config      config.PipelineConfig
	now         func() time.Time
}

func NewEnrichmentService(
	episodes EpisodeStore,
	podcasts PodcastStore,
	objects ObjectStore,
	transcriber Transcriber,
	generator TextGenerator,
	tasks TaskQueue,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *EnrichmentService {
	return &EnrichmentService{
		episodes:    episodes,
		podcasts:    podcasts,
		objects:     objects,
		transcriber: transcriber,
		generator:   generator,
		tasks:       tasks,
		logger:      logger.With("component", "enrichment"),
		config:      cfg,
		now:         time.Now,
	}
}

// Enrich overwrites the episode's transcript, chapters and description.
// Nothing is written to the catalog unless every preceding step succeeded. A failed run is
// counted on the episode so the sweep can stop re-queueing it.
func (s *EnrichmentService) Enrich(ctx context.Context, episodeID string) (*domain.Enrichment, error) {
	startTime := time.Now()
	logger := s.logger.With("episode_id", episodeID)

	episode, err := s.episodes.Get(ctx, episodeID)
	if err != nil {
		return nil, fmt.Errorf("load episode: %w", err)
	}

	result, err := s.run(ctx, logger, episode)
	if err != nil {
		s.recordFailure(ctx, logger, episode.ID, err)
		return nil, err
	}

	if err := s.tasks.Enqueue(ctx, domain.NewTask(domain.TaskPublishFeed, episode.PodcastID)); err != nil {
		logger.Warn("failed to schedule feed publish", "error", err)
	}

	logger.Info("episode enriched",
		"chapters", len(result.Chapters),
		"description_chars", len(result.Description),
		"duration", time.Since(startTime),
	)

	return result, nil
}

func (s *EnrichmentService) run(ctx context.Context, logger *slog.Logger, episode *domain.Episode) (*domain.Enrichment, error) {
	podcast, err := s.podcasts.Get(ctx, episode.PodcastID)
	if err != nil {
		return nil, fmt.Errorf("load podcast: %w", err)
	}
	logger = logger.With("podcast_id", podcast.ID)

	transcript, err := s.transcribe(ctx, episode)
	if err != nil {
		return nil, err
	}
	logger.Info("transcribed episode", "transcript_chars", len(transcript))

	chapters := s.extractChapters(ctx, logger, transcript)

	description, err := s.describe(ctx, podcast, episode, transcript, chapters)
	if err != nil {
		return nil, err
	}

	result := &domain.Enrichment{
		Transcript:    transcript,
		TranscriptKey: objectstore.TranscriptKey(episode.ID),
		Chapters:      chapters,
		Description:   description,
	}

	putCtx, cancel := callContext(ctx, s.config.CallTimeout)
	_, err = s.objects.Put(putCtx, result.TranscriptKey, []byte(transcript), objectstore.ContentTypeText)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("store transcript: %w", err)
	}

	if err := s.episodes.ApplyEnrichment(ctx, episode.ID, result); err != nil {
		return nil, fmt.Errorf("apply enrichment: %w", err)
	}

	return result, nil
}

// recordFailure runs even when ctx has expired, since a timed-out run still counts.
func (s *EnrichmentService) recordFailure(ctx context.Context, logger *slog.Logger, episodeID string, runErr error) {
	failure := domain.EnrichmentFailure{
		Error:     runErr.Error(),
		Permanent: !domain.IsRetryable(runErr),
		FailedAt:  s.now().UTC(),
	}

	recordCtx, cancel := callContext(context.WithoutCancel(ctx), s.config.CallTimeout)
	defer cancel()

	if err := s.episodes.RecordEnrichmentFailure(recordCtx, episodeID, failure); err != nil {
		logger.Error("failed to record enrichment failure", "error", err)
		return
	}
	logger.Warn("enrichment failed", "permanent", failure.Permanent, "error", runErr)
}

func (s *EnrichmentService) transcribe(ctx context.Context, episode *domain.Episode) (string, error) {
	if episode.AudioKey == "" {
		return "", domain.Wrap(domain.ErrNotFound, "episode "+episode.ID+" has no audio", nil)
	}

	getCtx, cancel := callContext(ctx, s.config.CallTimeout)
	audio, err := s.objects.Get(getCtx, episode.AudioKey)
	cancel()
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}

	callCtx, cancel := callContext(ctx, s.config.TranscribeTimeout)
	defer cancel()

	transcript, err := s.transcriber.Transcribe(callCtx, audio)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return transcript, nil
}

// extractChapters never fails; any problem yields an empty chapter list.
func (s *EnrichmentService) extractChapters(ctx context.Context, logger *slog.Logger, transcript string) []domain.Chapter {
	callCtx, cancel := callContext(ctx, s.config.CallTimeout)
	defer cancel()

	response, err := s.generator.Generate(callCtx, enrichment.ChapterPrompt(transcript), s.config.ChapterMaxTokens)
	if err != nil {
		logger.Warn("chapter generation failed, continuing without chapters", "error", err)
		return []domain.Chapter{}
	}

	chapters, ok := enrichment.ParseChapters(response)
	if !ok {
		logger.Warn("chapter response unparseable, continuing without chapters",
			"error", domain.Wrap(domain.ErrMalformedResponse, "parse chapters", errors.New("no json array")),
		)
		return []domain.Chapter{}
	}
	return chapters
}

func (s *EnrichmentService) describe(ctx context.Context, podcast *domain.Podcast, episode *domain.Episode, transcript string, chapters []domain.Chapter) (string, error) {
	callCtx, cancel := callContext(ctx, s.config.CallTimeout)
	defer cancel()

	prompt := enrichment.DescriptionPrompt(podcast.Title, episode.Title, transcript, chapters)
	description, err := s.generator.Generate(callCtx, prompt, s.config.DescriptionMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return description, nil
}

// callContext bounds a single external call.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
