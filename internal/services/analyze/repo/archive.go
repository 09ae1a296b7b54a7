// Package repo stores analyze results: a sql archive for projections and a clickhouse sink for issues
package repo

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/platform/store/migrate"
	"reviewtrust/internal/services/analyze/domain"
)

// Archive implements domain.ArchivePort over postgres or sqlite
type Archive struct {
	db      store.TxRunner
	dialect migrate.Dialect
}

var _ domain.ArchivePort = (*Archive)(nil)

// NewPGArchive stores results in postgres
func NewPGArchive(db store.TxRunner) *Archive { return &Archive{db: db, dialect: migrate.Postgres} }

// NewLiteArchive stores results in sqlite
func NewLiteArchive(db store.TxRunner) *Archive { return &Archive{db: db, dialect: migrate.SQLite} }

const insertResult = `
INSERT INTO trust_results (id, kind, batch_id, item_id, level, score, doc, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

// jsonb comes back as text so both dialects scan into a string
const selectResult = `SELECT doc::text FROM trust_results WHERE id = $1`

// Save writes every result in one transaction; ids already stored are left untouched
func (a *Archive) Save(ctx context.Context, rs ...domain.ArchivedResult) error {
	if len(rs) == 0 {
		return nil
	}
	type row struct {
		id  uuid.UUID
		doc string
	}
	rows := make([]row, len(rs))
	for i, r := range rs {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return perr.WithField(perr.InvalidArgf("result id %q is not a uuid", r.ID), "id")
		}
		doc, err := json.Marshal(r)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeStorage, "encode result")
		}
		rows[i] = row{id: id, doc: string(doc)}
	}

	q := a.sql(insertResult)
	err := a.db.Tx(ctx, func(tx store.RowQuerier) error {
		for i, r := range rs {
			_, err := tx.Exec(ctx, q,
				rows[i].id, string(r.Kind), nullable(r.BatchID), nullable(r.ItemID),
				string(r.Result.Level), r.Result.Score, rows[i].doc, r.CreatedAt.UTC(),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeStorage, "archive results")
	}
	return nil
}

// Get reads one result by id
func (a *Archive) Get(ctx context.Context, id string) (domain.ArchivedResult, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.ArchivedResult{}, perr.WithField(perr.InvalidArgf("result id must be a uuid"), "id")
	}
	doc, err := store.One(ctx, a.db, func(r store.Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, a.sql(selectResult), uid)
	switch {
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return domain.ArchivedResult{}, perr.NotFoundf("result %s not found", id)
	case err != nil:
		return domain.ArchivedResult{}, perr.Wrap(err, perr.ErrorCodeStorage, "read result")
	}

	var out domain.ArchivedResult
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return domain.ArchivedResult{}, perr.Wrap(err, perr.ErrorCodeStorage, "decode result")
	}
	return out, nil
}

// sql adapts a postgres query to the archive's dialect
func (a *Archive) sql(q string) string {
	if a.dialect != migrate.SQLite {
		return q
	}
	return rebind(strings.ReplaceAll(q, "::text", ""))
}

// rebind turns $n placeholders into ?; arguments are always passed in order
func rebind(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for i := 0; i < len(q); i++ {
		if q[i] == '$' && i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(q) && q[i+1] >= '0' && q[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
