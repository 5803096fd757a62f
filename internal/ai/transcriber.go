package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"podcaster/internal/domain"
)

// TranscriberConfig holds Workers AI speech-to-text settings.
type TranscriberConfig struct {
	BaseURL        string
	AccountID      string
	APIToken       string
	Model          string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Transcriber sends audio to a Whisper model hosted on Workers AI and returns plain text.
type Transcriber struct {
	httpClient     *http.Client
	endpoint       string
	apiToken       string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewTranscriber(cfg TranscriberConfig, logger *slog.Logger) *Transcriber {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Transcriber{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint: fmt.Sprintf("%s/accounts/%s/ai/run/%s",
			strings.TrimRight(cfg.BaseURL, "/"), cfg.AccountID, cfg.Model),
		apiToken:       cfg.APIToken,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "transcriber"),
	}
}

type whisperResponse struct {
	Result *struct {
		Text      string `json:"text"`
		WordCount int    `json:"word_count"`
		VTT       string `json:"vtt"`
	} `json:"result"`
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

func (e *statusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode >= 500
}

// rejectsInput reports whether the provider refused this audio itself. Other client
// errors, such as bad credentials, are fixed by configuration and stay retryable.
func (e *statusError) rejectsInput() bool {
	switch e.StatusCode {
	case http.StatusBadRequest,
		http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType,
		http.StatusUnprocessableEntity:
		return true
	}
	return false
}

// Transcribe returns the transcript text exactly as the provider produced it.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", domain.Wrap(domain.ErrRejectedInput, "transcribe", errors.New("empty audio"))
	}

	var resp *whisperResponse
	var err error

	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		resp, err = t.doRequest(ctx, audio)
		if err == nil {
			break
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			break
		}
		if attempt == t.maxAttempts {
			break
		}

		backoff := t.calculateBackoff(attempt)
		t.logger.Warn("transcription failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", domain.Wrap(domain.ErrUpstreamUnavailable, "transcribe", ctx.Err())
		case <-time.After(backoff):
		}
	}
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.rejectsInput() {
			return "", domain.Wrap(domain.ErrRejectedInput, "transcribe", err)
		}
		return "", domain.Wrap(domain.ErrUpstreamUnavailable, "transcribe", err)
	}

	if !resp.Success || resp.Result == nil {
		msg := "no result"
		if len(resp.Errors) > 0 {
			msg = resp.Errors[0].Message
		}
		return "", domain.Wrap(domain.ErrMalformedResponse, "transcribe", errors.New(msg))
	}
	if strings.TrimSpace(resp.Result.Text) == "" {
		return "", domain.Wrap(domain.ErrMalformedResponse, "transcribe", errors.New("empty transcript"))
	}

	t.logger.Debug("transcribed audio",
		"audio_bytes", len(audio),
		"words", resp.Result.WordCount,
	)

	return resp.Result.Text, nil
}

func (t *Transcriber) doRequest(ctx context.Context, audio []byte) (*whisperResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+t.apiToken)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &statusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &out, nil
}

func (t *Transcriber) calculateBackoff(attempt int) time.Duration {
	backoff := t.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > t.maxBackoff {
		backoff = t.maxBackoff
	}
	return backoff
}
