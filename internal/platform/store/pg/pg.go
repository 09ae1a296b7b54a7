// Package pg opens a pgxpool with an optional zerolog query tracer
package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Config configures the pool
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	// LogSQL attaches the zerolog tracer; queries at or over Slow log at warn
	LogSQL bool
	Slow   time.Duration
}

// PG owns the pool
type PG struct {
	Pool *pgxpool.Pool
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds the pool; mut may adjust the parsed config
func Open(ctx context.Context, cfg Config, tracer *Tracer, mut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if tracer != nil {
		pcfg.ConnConfig.Tracer = tracer
	}
	if mut != nil {
		mut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool}, nil
}

// StdDB exposes the pool as *sql.DB for database/sql consumers such as goose
func (p *PG) StdDB() *sql.DB { return stdlib.OpenDBFromPool(p.Pool) }

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
