// Package lite opens a pure-Go sqlite database for single-process use
package lite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Config configures the database file
type Config struct {
	// Path is a file path or ":memory:"
	Path        string
	BusyTimeout time.Duration
}

// DSN builds a modernc sqlite DSN with busy timeout, WAL and foreign keys on
func DSN(cfg Config) string {
	bt := cfg.BusyTimeout
	if bt <= 0 {
		bt = 5 * time.Second
	}
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", bt.Milliseconds()))
	q.Add("_pragma", "foreign_keys(1)")
	path := cfg.Path
	if path == "" || path == ":memory:" {
		return "file::memory:?" + q.Encode()
	}
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + strings.TrimPrefix(path, "file:") + "?" + q.Encode()
}

// Open opens and pings the database
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializes writers anyway; one conn keeps :memory: a single database
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
