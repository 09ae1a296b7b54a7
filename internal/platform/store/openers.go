package store

import (
	"context"
	"fmt"
	"time"

	chx "reviewtrust/internal/platform/store/ch"
	"reviewtrust/internal/platform/store/lite"
	"reviewtrust/internal/platform/store/pg"
)

// openPG opens the pool and waits for it to answer a ping with capped exponential backoff
func openPG(ctx context.Context, cfg Config, s *Store) (*pgAdapter, error) {
	var tracer *pg.Tracer
	if cfg.PG.LogSQL {
		tracer = pg.NewTracer(s.Log, cfg.PG.Slow)
	}
	p, err := pg.Open(ctx, pg.Config{URL: cfg.PG.URL, AppName: cfg.AppName, MaxConns: cfg.PG.MaxConns}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 6
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	backoff := 150 * time.Millisecond
	const ceiling = 2 * time.Second

	var lastErr error
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(pctx)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Msg("postgres not ready")
		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, ceiling)
	}
	p.Close()
	return nil, fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}

func openLite(ctx context.Context, cfg Config) (*liteAdapter, error) {
	db, err := lite.Open(ctx, lite.Config{Path: cfg.Lite.Path})
	if err != nil {
		return nil, err
	}
	return newLiteAdapter(db), nil
}

func openCH(ctx context.Context, cfg Config) (*clickhouseAdapter, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
