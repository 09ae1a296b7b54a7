// Package service implements the analyze service
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reviewtrust/internal/core/account"
	"reviewtrust/internal/core/crossitem"
	"reviewtrust/internal/core/lexical"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/core/signal"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/services/analyze/domain"
)

// Config for the analyze service
type Config struct {
	Workers     int
	MaxItems    int  // 0 = unlimited
	StrictSinks bool // sink failures fail the call instead of being logged
}

// Service implements domain.AnalyzerPort
type Service struct {
	Lex *lexical.Analyzer
	Sc  *scorer.Scorer
	Cfg Config

	archive domain.ArchivePort
	issues  domain.IssueSinkPort
	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

var _ domain.AnalyzerPort = (*Service)(nil)

// Option customizes a Service
type Option func(*Service)

// WithArchive stores every result projection
func WithArchive(a domain.ArchivePort) Option { return func(s *Service) { s.archive = a } }

// WithIssueSink forwards every issue row
func WithIssueSink(k domain.IssueSinkPort) Option { return func(s *Service) { s.issues = k } }

// WithMetrics records counters and latencies
func WithMetrics(m *Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithClock sets the time source used for account ages
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs sets the result id generator
func WithIDs(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a new analyze service
func New(lex *lexical.Analyzer, sc *scorer.Scorer, cfg Config, opts ...Option) *Service {
	if lex == nil {
		lex = lexical.Default()
	}
	if sc == nil {
		sc = scorer.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxItems < 0 {
		cfg.MaxItems = 0
	}
	s := &Service{
		Lex:   lex,
		Sc:    sc,
		Cfg:   cfg,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AnalyzeText scores one review text on its lexical signals
func (s *Service) AnalyzeText(ctx context.Context, text string) (domain.ItemResult, error) {
	if err := canceled(ctx); err != nil {
		return domain.ItemResult{}, err
	}
	start := time.Now()
	r := s.score(signal.Bundle{signal.CategoryText: s.Lex.Analyze(text)})
	rs, err := s.persist(ctx, domain.KindText, "", []domain.ItemResult{r})
	if err != nil {
		return domain.ItemResult{}, err
	}
	s.metrics.since(domain.KindText, start)
	return rs[0], nil
}

// AnalyzeProfile scores one reviewer profile on its account signals
func (s *Service) AnalyzeProfile(ctx context.Context, p *account.Profile) (domain.ItemResult, error) {
	if err := canceled(ctx); err != nil {
		return domain.ItemResult{}, err
	}
	start := time.Now()
	r := s.score(signal.Bundle{signal.CategoryAccount: account.Analyze(p, s.now())})
	rs, err := s.persist(ctx, domain.KindProfile, "", []domain.ItemResult{r})
	if err != nil {
		return domain.ItemResult{}, err
	}
	s.metrics.since(domain.KindProfile, start)
	return rs[0], nil
}

// Score aggregates signals computed elsewhere
func (s *Service) Score(ctx context.Context, b signal.Bundle) (domain.ItemResult, error) {
	if err := canceled(ctx); err != nil {
		return domain.ItemResult{}, err
	}
	start := time.Now()
	r := s.score(b.Clone())
	rs, err := s.persist(ctx, domain.KindScore, "", []domain.ItemResult{r})
	if err != nil {
		return domain.ItemResult{}, err
	}
	s.metrics.since(domain.KindScore, start)
	return rs[0], nil
}

// AnalyzeBatch scores every item of a page
// Behavioral signals are computed once over the whole batch and shared by every item;
// items are scored on a bounded pool and returned in input order
func (s *Service) AnalyzeBatch(ctx context.Context, b domain.Batch) (domain.BatchResult, error) {
	if s.Cfg.MaxItems > 0 && len(b.Items) > s.Cfg.MaxItems {
		return domain.BatchResult{}, perr.WithField(
			perr.TooLargef("batch has %d items, limit is %d", len(b.Items), s.Cfg.MaxItems), "items")
	}
	if err := canceled(ctx); err != nil {
		return domain.BatchResult{}, err
	}
	start := time.Now()
	batchID := b.ID
	if batchID == "" {
		batchID = s.newID()
	}
	ctx = logger.WithBatch(ctx, batchID)
	s.metrics.batch(len(b.Items))

	behavioral := Behavioral(b)
	now := s.now()

	out := make([]domain.ItemResult, len(b.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Cfg.Workers)
	for i := range b.Items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.item(b.Items[i], behavioral, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BatchResult{}, perr.Wrap(err, perr.ErrorCodeCanceled, "batch canceled")
	}
	if err := canceled(ctx); err != nil {
		return domain.BatchResult{}, err
	}

	out, err := s.persist(ctx, domain.KindBatch, batchID, out)
	if err != nil {
		return domain.BatchResult{}, err
	}
	s.metrics.since(domain.KindBatch, start)
	logger.C(ctx).Debug().
		Int("items", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("batch analyzed")

	return domain.BatchResult{BatchID: batchID, Behavioral: behavioral, Items: out}, nil
}

// Result returns an archived result by id
func (s *Service) Result(ctx context.Context, id string) (domain.ArchivedResult, error) {
	if s.archive == nil {
		return domain.ArchivedResult{}, perr.Unavailablef("result archive is disabled")
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ArchivedResult{}, perr.WithField(perr.InvalidArgf("result id must be a uuid"), "id")
	}
	return s.archive.Get(ctx, id)
}

// Behavioral computes the batch level signals: coordinated wording across texts,
// timing and account creation clusters across profiles, and the rating histogram
func Behavioral(b domain.Batch) signal.Set {
	texts := make([]string, 0, len(b.Items))
	profiles := make([]*account.Profile, 0, len(b.Items))
	for _, it := range b.Items {
		if strings.TrimSpace(it.Text) != "" {
			texts = append(texts, it.Text)
		}
		if it.Profile != nil {
			profiles = append(profiles, it.Profile)
		}
	}
	set := account.Behavioral(profiles, b.RatingHistogram)
	set[signal.CoordinatedLanguage] = crossitem.Detect(texts)
	return set
}

func (s *Service) item(it domain.Item, behavioral signal.Set, now time.Time) domain.ItemResult {
	b := signal.Bundle{
		signal.CategoryText:       s.Lex.Analyze(it.Text),
		signal.CategoryBehavioral: copySet(behavioral),
	}
	if it.Profile != nil {
		b[signal.CategoryAccount] = account.Analyze(it.Profile, now)
	}
	for cat, set := range it.Extra {
		if b[cat] == nil {
			b[cat] = signal.Set{}
		}
		for k, v := range set {
			b[cat][k] = v
		}
	}
	r := s.score(b)
	r.ID = it.ID
	return r
}

func (s *Service) score(b signal.Bundle) domain.ItemResult {
	return domain.ItemResult{Signals: b, Result: s.Sc.ComputeScore(b)}
}

// persist stamps result ids and hands results to the sinks
func (s *Service) persist(ctx context.Context, kind domain.Kind, batchID string, rs []domain.ItemResult) ([]domain.ItemResult, error) {
	archived := make([]domain.ArchivedResult, len(rs))
	var events []domain.IssueEvent
	for i := range rs {
		rs[i].ResultID = s.newID()
		s.metrics.observe(kind, rs[i].Result.Level())
		archived[i] = domain.Archive(rs[i].ResultID, kind, batchID, rs[i].ID, rs[i])
		events = append(events, domain.Events(archived[i])...)
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, archived...); err != nil {
			if err := s.sinkFailed(ctx, "archive", err); err != nil {
				return nil, err
			}
		}
	}
	if s.issues != nil && len(events) > 0 {
		if err := s.issues.Write(ctx, events); err != nil {
			if err := s.sinkFailed(ctx, "issues", err); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

// sinkFailed logs a sink error and returns it only in strict mode
func (s *Service) sinkFailed(ctx context.Context, sink string, err error) error {
	s.metrics.sinkFailed(sink)
	logger.C(ctx).Error().Err(err).Str("sink", sink).Bool("strict", s.Cfg.StrictSinks).Msg("result sink failed")
	if !s.Cfg.StrictSinks {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.Wrapf(err, perr.ErrorCodeStorage, "write %s", sink)
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCanceled, "request canceled")
	}
	return nil
}

func copySet(in signal.Set) signal.Set {
	out := make(signal.Set, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
