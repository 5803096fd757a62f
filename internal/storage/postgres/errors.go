package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"podcaster/internal/domain"
)

const (
	uniqueViolation           = pq.ErrorCode("23505")
	invalidTextRepresentation = pq.ErrorCode("22P02")
	serializationFailure      = pq.ErrorCode("40001")
	deadlockDetected          = pq.ErrorCode("40P01")
)

// mapError translates driver errors into the domain taxonomy.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Wrap(domain.ErrNotFound, op, nil)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == uniqueViolation &&
			(pqErr.Constraint == "feed_versions_podcast_id_version_key" || pqErr.Constraint == "idx_feed_versions_one_latest"):
			return domain.Wrap(domain.ErrConflictingVersion, op, err)
		case pqErr.Code == invalidTextRepresentation:
			// a malformed uuid cannot name an existing row
			return domain.Wrap(domain.ErrNotFound, op, err)
		}
	}
	return err
}

// isTransient reports whether postgres aborted the transaction and a rerun may succeed.
func isTransient(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}

func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.Wrap(domain.ErrNotFound, op, nil)
	}
	return nil
}
