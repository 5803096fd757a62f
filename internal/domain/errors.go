package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced podcast, episode or feed version that does not exist.
	// Retrying without new input cannot succeed.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable marks a failed call to transcription, text generation or object storage.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse marks a provider response that could not be interpreted.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrConflictingVersion marks a lost race between two publishes of the same podcast.
	ErrConflictingVersion = errors.New("conflicting feed version")

	// ErrRejectedInput marks input a provider refused outright, such as audio it cannot
	// decode or that exceeds its size limit. Retrying with the same input cannot succeed.
	ErrRejectedInput = errors.New("rejected input")
)

// Wrap tags err with marker so callers can classify it with errors.Is.
func Wrap(marker error, op string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", marker, op)
	}
	return fmt.Errorf("%w: %s: %w", marker, op, err)
}

// IsRetryable reports whether re-running the failed task may succeed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrRejectedInput)
}
