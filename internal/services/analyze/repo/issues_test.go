package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/core/signal"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/store"
	"reviewtrust/internal/services/analyze/domain"
)

type fakeCH struct {
	table string
	rows  [][]any
	execs []string
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.err
}
func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Exec(_ context.Context, q string, _ ...any) error {
	f.execs = append(f.execs, q)
	return f.err
}
func (f *fakeCH) Close() error { return nil }

func TestIssueSink_Write(t *testing.T) {
	f := &fakeCH{}
	s := NewIssueSink(f)
	a := sample("5f0c6c4e-8a8b-4a53-9d55-0d7b1c2e3f40")
	evs := domain.Events(a)
	if len(evs) != 3 {
		t.Fatalf("events=%d want 3", len(evs))
	}
	if err := s.Write(context.Background(), evs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if f.table != IssueTable || len(f.rows) != 3 {
		t.Fatalf("table=%q rows=%d", f.table, len(f.rows))
	}
	r := f.rows[0]
	if len(r) != 10 {
		t.Fatalf("columns=%d want 10", len(r))
	}
	if r[0] != a.ID || r[1] != "page-1" || r[3] != "batch" || r[4] != string(scorer.LevelVeryLow) || r[5] != string(signal.CategoryText) {
		t.Fatalf("row=%v", r)
	}
}

func TestIssueSink_EmptyAndErrors(t *testing.T) {
	f := &fakeCH{err: errors.New("connection reset")}
	s := NewIssueSink(f)
	if err := s.Write(context.Background(), nil); err != nil {
		t.Fatalf("empty write: %v", err)
	}
	if f.rows != nil {
		t.Fatalf("empty write reached clickhouse")
	}
	err := s.Write(context.Background(), []domain.IssueEvent{{ResultID: "x"}})
	if !perr.IsCode(err, perr.ErrorCodeStorage) {
		t.Fatalf("err=%v want storage", err)
	}
	if err := s.Ensure(context.Background()); !perr.IsCode(err, perr.ErrorCodeStorage) {
		t.Fatalf("ensure err=%v", err)
	}
}

func TestMigrate_EnsuresIssueTable(t *testing.T) {
	f := &fakeCH{}
	if err := Migrate(context.Background(), &store.Store{CH: f}); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(f.execs) != 1 || !strings.Contains(f.execs[0], "CREATE TABLE IF NOT EXISTS trust_issues") {
		t.Fatalf("execs=%v", f.execs)
	}
	if err := Migrate(context.Background(), nil); err != nil {
		t.Fatalf("nil store: %v", err)
	}
}
