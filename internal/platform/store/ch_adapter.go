package store

import (
	"context"

	"reviewtrust/internal/platform/store/ch"
)

// clickhouseAdapter adapts *ch.CH to Clickhouse
type clickhouseAdapter struct {
	inner *ch.CH
}

var _ Clickhouse = (*clickhouseAdapter)(nil)

func newCHAdapter(c *ch.CH) *clickhouseAdapter { return &clickhouseAdapter{inner: c} }

// NewClickhouse wraps an already open client, e.g. one built over a fake conn
func NewClickhouse(c *ch.CH) Clickhouse { return newCHAdapter(c) }

func (a *clickhouseAdapter) Insert(ctx context.Context, table string, rows [][]any) error {
	return a.inner.Insert(ctx, table, rows)
}

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r: r}, nil
}

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

func (a *clickhouseAdapter) Ping(ctx context.Context) error { return a.inner.Ping(ctx) }
func (a *clickhouseAdapter) Close() error                   { return a.inner.Close() }

// chRows drops the error from Close to match Rows
type chRows struct{ r ch.Rows }

func (x chRows) Next() bool             { return x.r.Next() }
func (x chRows) Scan(dest ...any) error { return x.r.Scan(dest...) }
func (x chRows) Err() error             { return x.r.Err() }
func (x chRows) Close()                 { _ = x.r.Close() }
func (x chRows) Columns() []string      { return x.r.Columns() }
