package store

import (
	"context"
	"database/sql"
	"fmt"
)

// liteAdapter implements TxRunner over database/sql, used for sqlite
type liteAdapter struct {
	db *sql.DB
	sqlRunner
}

func newLiteAdapter(db *sql.DB) *liteAdapter { return &liteAdapter{db: db, sqlRunner: sqlRunner{q: db}} }

// NewSQL wraps an open *sql.DB as a TxRunner
func NewSQL(db *sql.DB) TxRunner { return newLiteAdapter(db) }

// DB returns the handle, e.g. for migrations
func (a *liteAdapter) DB() *sql.DB { return a.db }

func (a *liteAdapter) Ping(ctx context.Context) error { return a.db.PingContext(ctx) }
func (a *liteAdapter) Close() error                   { return a.db.Close() }

func (a *liteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlRunner{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// stdQuerier is what *sql.DB and *sql.Tx share
type stdQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlRunner struct{ q stdQuerier }

func (r sqlRunner) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	return sqlTag{n: n}, nil
}

func (r sqlRunner) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rs, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r: rs}, nil
}

func (r sqlRunner) QueryRow(ctx context.Context, query string, args ...any) Row {
	return r.q.QueryRowContext(ctx, query, args...)
}

type sqlRows struct{ r *sql.Rows }

func (x sqlRows) Next() bool            { return x.r.Next() }
func (x sqlRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x sqlRows) Err() error            { return x.r.Err() }
func (x sqlRows) Close()                { _ = x.r.Close() }
func (x sqlRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

type sqlTag struct{ n int64 }

func (t sqlTag) String() string      { return fmt.Sprintf("OK %d", t.n) }
func (t sqlTag) RowsAffected() int64 { return t.n }
