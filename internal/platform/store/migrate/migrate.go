// Package migrate applies embedded goose migrations to postgres or sqlite
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"reviewtrust/internal/platform/logger"

	"github.com/pressly/goose/v3"
)

// Dialect names the SQL flavor of a migration set
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() (goose.Dialect, error) {
	switch d {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	}
	return "", fmt.Errorf("migrate: unknown dialect %q", d)
}

// Up applies every pending migration in fsys (files at its root) and returns the new version.
// db is not closed
func Up(ctx context.Context, d Dialect, db *sql.DB, fsys fs.FS) (int64, error) {
	gd, err := d.goose()
	if err != nil {
		return 0, err
	}
	p, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migrate: provider: %w", err)
	}
	log := logger.Named("migrate")
	results, err := p.Up(ctx)
	for _, r := range results {
		evt := log.Info()
		if r.Error != nil {
			evt = log.Error().Err(r.Error)
		}
		evt.Str("dialect", string(d)).
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("migration applied")
	}
	if err != nil {
		return 0, fmt.Errorf("migrate: up: %w", err)
	}
	return p.GetDBVersion(ctx)
}

// Sub narrows an embed.FS to one dialect directory, e.g. Sub(files, "migrations/pg")
func Sub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("migrate: %v", err))
	}
	return sub
}
