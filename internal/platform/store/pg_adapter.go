package store

import (
	"context"
	"errors"

	"reviewtrust/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what pgxpool.Pool and pgx.Tx share
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgAdapter implements TxRunner over the pool; tracing happens in pgx via pg.Tracer
type pgAdapter struct {
	p *pg.PG
	pgxRunner
}

func newPGAdapter(p *pg.PG) *pgAdapter { return &pgAdapter{p: p, pgxRunner: pgxRunner{q: p.Pool}} }

// PG returns the underlying client, e.g. to run migrations through StdDB
func (a *pgAdapter) PG() *pg.PG { return a.p }

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil {
		return errors.New("pg: nil adapter")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, a.p.Pool, func(tx pgx.Tx) error {
		return fn(pgxRunner{q: tx})
	})
}

// pgxRunner maps pgx results onto Row/Rows/CommandTag
type pgxRunner struct{ q pgxQuerier }

func (r pgxRunner) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	ct, err := r.q.Exec(ctx, sql, args...)
	return ct, err
}

func (r pgxRunner) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgRows{r: rs}, nil
}

func (r pgxRunner) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return r.q.QueryRow(ctx, sql, args...)
}

type pgRows struct{ r pgx.Rows }

func (x pgRows) Next() bool            { return x.r.Next() }
func (x pgRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x pgRows) Err() error            { return x.r.Err() }
func (x pgRows) Close()                { x.r.Close() }
func (x pgRows) Columns() []string {
	f := x.r.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = f[i].Name
	}
	return out
}
