package ch

import (
	"context"
	"errors"
	"testing"

	"reviewtrust/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type fakeBatch struct {
	rows        [][]any
	appendErrAt int
	sendErr     error
	sent        bool
	aborted     bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErrAt > 0 && len(b.rows)+1 == b.appendErrAt {
		return errors.New("append failed")
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Send() error  { b.sent = true; return b.sendErr }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeConn struct {
	batch   *fakeBatch
	query   string
	execs   []string
	pingErr error
	closed  bool
}

func (f *fakeConn) PrepareBatch(_ context.Context, q string) (Batch, error) {
	f.query = q
	return f.batch, nil
}
func (f *fakeConn) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (f *fakeConn) Exec(_ context.Context, q string, _ ...any) error   { f.execs = append(f.execs, q); return nil }
func (f *fakeConn) Ping(context.Context) error                         { return f.pingErr }
func (f *fakeConn) Close() error                                       { f.closed = true; return nil }

func TestInsert_AppendsAndSends(t *testing.T) {
	fc := &fakeConn{batch: &fakeBatch{}}
	c := New(fc)
	err := c.Insert(context.Background(), "trust_issues", [][]any{{"a", 1}, {"b", 2}})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.query != "INSERT INTO trust_issues" || len(fc.batch.rows) != 2 || !fc.batch.sent {
		t.Fatalf("unexpected batch state %+v query=%q", fc.batch, fc.query)
	}
}

func TestInsert_AppendFailureAborts(t *testing.T) {
	fc := &fakeConn{batch: &fakeBatch{appendErrAt: 2}}
	if err := New(fc).Insert(context.Background(), "t", [][]any{{1}, {2}}); err == nil {
		t.Fatalf("expected append error")
	}
	if fc.batch.sent || !fc.batch.aborted {
		t.Fatalf("batch should be aborted, not sent: %+v", fc.batch)
	}
}

func TestInsert_EmptyAndBadTable(t *testing.T) {
	fc := &fakeConn{batch: &fakeBatch{}}
	c := New(fc)
	if err := c.Insert(context.Background(), "t", nil); err != nil || fc.query != "" {
		t.Fatalf("empty insert should be a no-op: %v %q", err, fc.query)
	}
	if err := c.Insert(context.Background(), "t; DROP TABLE x", [][]any{{1}}); err == nil {
		t.Fatalf("expected bad table error")
	}
}

func TestExec_PassesThrough(t *testing.T) {
	fc := &fakeConn{}
	if err := New(fc).Exec(context.Background(), "CREATE TABLE IF NOT EXISTS t (a UInt8) ENGINE = Memory"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(fc.execs) != 1 {
		t.Fatalf("execs=%v", fc.execs)
	}
}

func TestOpen_PingFailureCloses(t *testing.T) {
	testkit.Serial(t)
	fc := &fakeConn{pingErr: errors.New("refused")}
	testkit.Swap(t, &openConn, func(*clickhouse.Options) (Conn, error) { return fc, nil })

	if _, err := Open(context.Background(), Config{URL: "clickhouse://localhost:9000/default"}); err == nil {
		t.Fatalf("expected ping error")
	}
	if !fc.closed {
		t.Fatalf("conn should be closed after failed ping")
	}
}

func TestOptions_ParsesDSNAndTagsClient(t *testing.T) {
	opts, err := Options(Config{URL: "clickhouse://u:p@ch:9000/analytics", Role: "api", Tag: "v1"})
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Auth.Database != "analytics" || opts.Auth.Username != "u" {
		t.Fatalf("auth not parsed: %+v", opts.Auth)
	}
	if len(opts.ClientInfo.Products) == 0 || opts.ClientInfo.Products[0].Name != "reviewtrust" {
		t.Fatalf("client info missing: %+v", opts.ClientInfo)
	}
	if _, err := Options(Config{URL: "://nope"}); err == nil {
		t.Fatalf("expected dsn error")
	}
}
