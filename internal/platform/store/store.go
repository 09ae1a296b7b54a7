// Package store opens the optional storage backends and exposes them behind small seams
package store

import (
	"context"
	"errors"
	"fmt"

	"reviewtrust/internal/platform/logger"
)

// Store holds whichever backends were enabled; nil fields are disabled
type Store struct {
	Log logger.Logger

	// PG is the postgres seam
	PG TxRunner
	// Lite is the sqlite seam, same surface as PG
	Lite TxRunner
	// CH is the clickhouse seam
	CH Clickhouse

	closers []func() error
	pingers map[string]Pinger
}

// Row is the scan contract for a single row
type Row interface {
	Scan(dest ...any) error
}

// Rows is iteration plus scan over a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag describes a completed write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner adds transactions to RowQuerier
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar write seam
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Exec(ctx context.Context, sql string, args ...any) error
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects every backend enabled in cfg; on failure the ones already opened are closed
func Open(ctx context.Context, cfg Config, opts ...Option) (s *Store, err error) {
	s = &Store{Log: *logger.Named("store"), pingers: map[string]Pinger{}}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	defer func() {
		if err != nil {
			_ = s.Close(context.Background())
			s = nil
		}
	}()

	if cfg.PG.Enabled {
		a, err := openPG(ctx, cfg, s)
		if err != nil {
			return s, fmt.Errorf("pg: %w", err)
		}
		s.PG = a
		s.track("pg", a, a.Close)
	}
	if cfg.Lite.Enabled {
		a, err := openLite(ctx, cfg)
		if err != nil {
			return s, fmt.Errorf("sqlite: %w", err)
		}
		s.Lite = a
		s.track("sqlite", a, a.Close)
	}
	if cfg.CH.Enabled {
		a, err := openCH(ctx, cfg)
		if err != nil {
			return s, fmt.Errorf("clickhouse: %w", err)
		}
		s.CH = a
		s.track("clickhouse", a, a.Close)
	}
	return s, nil
}

func (s *Store) track(name string, p Pinger, closer func() error) {
	s.pingers[name] = p
	s.closers = append(s.closers, closer)
}

// Guard pings every open backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for name, p := range s.pingers {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes backends in reverse open order
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
