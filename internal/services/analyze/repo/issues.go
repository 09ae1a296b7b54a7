package repo

import (
	"context"

	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/services/analyze/domain"
)

// IssueTable is the clickhouse table issue rows land in
const IssueTable = "trust_issues"

const issueDDL = `
CREATE TABLE IF NOT EXISTS trust_issues (
    result_id String,
    batch_id  String,
    item_id   String,
    kind      LowCardinality(String),
    level     LowCardinality(String),
    category  LowCardinality(String),
    signal    LowCardinality(String),
    score     Float64,
    severity  LowCardinality(String),
    at        DateTime64(3, 'UTC')
)
ENGINE = MergeTree
PARTITION BY toYYYYMM(at)
ORDER BY (category, signal, at)`

// IssueSink implements domain.IssueSinkPort with one native batch per write
type IssueSink struct {
	ch store.Clickhouse
}

var _ domain.IssueSinkPort = (*IssueSink)(nil)

// NewIssueSink returns a sink over ch
func NewIssueSink(ch store.Clickhouse) *IssueSink { return &IssueSink{ch: ch} }

// Ensure creates the issue table when missing
func (s *IssueSink) Ensure(ctx context.Context) error {
	if err := s.ch.Exec(ctx, issueDDL); err != nil {
		return perr.Wrap(err, perr.ErrorCodeStorage, "create issue table")
	}
	return nil
}

// Write appends evs; column order follows issueDDL
func (s *IssueSink) Write(ctx context.Context, evs []domain.IssueEvent) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, []any{
			e.ResultID,
			e.BatchID,
			e.ItemID,
			string(e.Kind),
			string(e.Level),
			string(e.Category),
			e.Signal,
			e.Score,
			string(e.Severity),
			e.At.UTC(),
		})
	}
	if err := s.ch.Insert(ctx, IssueTable, rows); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "insert %d issue rows", len(rows))
	}
	return nil
}
