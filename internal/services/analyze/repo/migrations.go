package repo

import (
	"context"
	"database/sql"
	"embed"

	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/platform/store/migrate"
	"reviewtrust/internal/platform/store/pg"
)

//go:embed migrations/pg/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrate brings every open sql backend in st up to date and ensures the clickhouse issue table
func Migrate(ctx context.Context, st *store.Store) error {
	if st == nil {
		return nil
	}
	log := logger.Named("analyze.repo")
	if p, ok := st.PG.(interface{ PG() *pg.PG }); ok {
		db := p.PG().StdDB()
		defer db.Close()
		v, err := up(ctx, migrate.Postgres, db)
		if err != nil {
			return err
		}
		log.Info().Int64("version", v).Msg("pg archive schema ready")
	}
	if l, ok := st.Lite.(interface{ DB() *sql.DB }); ok {
		v, err := up(ctx, migrate.SQLite, l.DB())
		if err != nil {
			return err
		}
		log.Info().Int64("version", v).Msg("sqlite archive schema ready")
	}
	if st.CH != nil {
		if err := NewIssueSink(st.CH).Ensure(ctx); err != nil {
			return err
		}
	}
	return nil
}

func up(ctx context.Context, d migrate.Dialect, db *sql.DB) (int64, error) {
	dir := "migrations/pg"
	if d == migrate.SQLite {
		dir = "migrations/sqlite"
	}
	return migrate.Up(ctx, d, db, migrate.Sub(migrations, dir))
}
