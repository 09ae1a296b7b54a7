package pg

import (
	"context"
	"strings"
	"time"

	"reviewtrust/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Tracer logs every query through zerolog; it implements pgx.QueryTracer
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

type traceKey struct{}

type traceStart struct {
	at   time.Time
	sql  string
	args []any
}

// NewTracer logs at info, or warn once a query takes slow or longer; slow <= 0 never warns.
// SQL is logged regardless of the root level once tracing is on
func NewTracer(root logger.Logger, slow time.Duration) *Tracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &Tracer{log: ll, slow: slow, now: time.Now}
}

// TraceQueryStart stashes the start time and statement
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{at: t.now(), sql: data.SQL, args: data.Args})
}

// TraceQueryEnd writes the log line
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Info()
	if slow {
		evt = t.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000.0).
		Bool("slow", slow).
		Str("sql", compact(st.sql)).
		Interface("args", st.args).
		Str("tag", data.CommandTag.String()).
		Err(data.Err).
		Msg("pg query")
}

// compact folds runs of whitespace into one space
func compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t', '\r':
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
