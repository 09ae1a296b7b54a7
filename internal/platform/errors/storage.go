package errors

import (
	"context"
	"database/sql"
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes the archive can hit
const (
	pgUniqueViolation     = "23505"
	pgCannotConnectNow    = "57P03"
	pgAdminShutdown       = "57P01"
	pgTooManyConnections  = "53300"
	pgReadOnlyTransaction = "25006"
)

// FromStorage classifies a driver error from Postgres, SQLite, or ClickHouse and wraps it with msg
// No rows becomes NotFound, unique violations Conflict, connection trouble Unavailable
func FromStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return Wrap(err, StorageCode(err), msg)
}

// StorageCode picks the code FromStorage would use
func StorageCode(err error) ErrorCode {
	switch {
	case stderrs.Is(err, context.Canceled):
		return ErrorCodeCanceled
	case stderrs.Is(err, context.DeadlineExceeded):
		return ErrorCodeUnavailable
	case stderrs.Is(err, sql.ErrNoRows), stderrs.Is(err, pgx.ErrNoRows):
		return ErrorCodeNotFound
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrorCodeConflict
		case pgCannotConnectNow, pgAdminShutdown, pgTooManyConnections, pgReadOnlyTransaction:
			return ErrorCodeUnavailable
		}
	}
	var connErr *pgconn.ConnectError
	if stderrs.As(err, &connErr) {
		return ErrorCodeUnavailable
	}
	return ErrorCodeStorage
}
