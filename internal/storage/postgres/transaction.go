package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type txContextKey struct{}

// TransactionManager opens transactions that travel in the context. Stores pick them up
// through GetExecutor, so a service composes store calls atomically without passing a tx.
type TransactionManager struct {
	db       *sqlx.DB
	opts     *sql.TxOptions
	attempts int
	logger   *slog.Logger
}

type TxOption func(*TransactionManager)

// WithIsolation sets the isolation level of transactions opened by the manager.
func WithIsolation(level sql.IsolationLevel) TxOption {
	return func(tm *TransactionManager) {
		tm.opts = &sql.TxOptions{Isolation: level}
	}
}

// WithAttempts bounds how often a transaction aborted by a deadlock or a serialization
// failure is run again.
func WithAttempts(n int) TxOption {
	return func(tm *TransactionManager) {
		if n > 0 {
			tm.attempts = n
		}
	}
}

func WithLogger(logger *slog.Logger) TxOption {
	return func(tm *TransactionManager) {
		tm.logger = logger
	}
}

func NewTransactionManager(db *sqlx.DB, opts ...TxOption) *TransactionManager {
	tm := &TransactionManager{
		db:       db,
		attempts: 3,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(tm)
	}
	tm.logger = tm.logger.With("component", "transaction")
	return tm
}

// WithTransaction runs fn inside a transaction carried by the context passed to fn.
// A call made while a transaction is already open joins it. The outermost call reruns fn
// when postgres aborts the transaction as a deadlock victim or on a serialization failure.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= tm.attempts; attempt++ {
		err = tm.runOnce(ctx, fn)
		if err == nil || !isTransient(err) || ctx.Err() != nil {
			return err
		}
		tm.logger.Warn("transaction aborted, retrying", "attempt", attempt, "error", err)
	}
	return err
}

func (tm *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := tm.db.BeginTxx(ctx, tm.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx
}

// GetExecutor returns the transaction carried by ctx, or db outside a transaction.
func GetExecutor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
