package content_db

import (
	"context"
	"errors"
	"strconv"
	"time"

	"genonaut/domain"
	"genonaut/utils/logger"
	"genonaut/utils/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// queryCanceledCode is the SQLSTATE raised when statement_timeout fires.
const queryCanceledCode = "57014"

var errDBUnavailable = errors.New("database connection not available")

var readOnlySnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// beginTx opens a transaction and applies the per-statement budget to it only.
func (r *ContentDBRepository) beginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	if r.statementTimeout > 0 {
		ms := strconv.FormatInt(r.statementTimeout.Milliseconds(), 10)
		if _, err := tx.Exec(ctx, "SELECT set_config('statement_timeout', $1, true)", ms); err != nil {
			rollback(ctx, tx)
			return nil, err
		}
	}
	return tx, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	// the caller's ctx may already be done; rollback must still reach the server
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Logger.WarnContext(ctx, "rollback failed", "error", err)
	}
}

// classifyStoreError separates statement timeouts from every other store failure.
func classifyStoreError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == queryCanceledCode || errors.Is(err, context.DeadlineExceeded) {
		metrics.RecordTimeout(op)
		return &domain.StoreTimeoutError{Op: op, Cause: err}
	}
	return &domain.StoreError{Op: op, Cause: err}
}

func observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case domain.IsStoreTimeout(err):
		status = "timeout"
	default:
		status = "error"
	}
	metrics.RecordQuery(op, status, time.Since(start).Seconds())
}
