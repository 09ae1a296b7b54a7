// Package module wires the analyze service into the API using modkit
package module

import (
	"reviewtrust/internal/core/lexical"
	"reviewtrust/internal/core/rulepack"
	"reviewtrust/internal/core/scorer"
	"reviewtrust/internal/modkit"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/services/analyze/domain"
	analyzehttp "reviewtrust/internal/services/analyze/http"
	"reviewtrust/internal/services/analyze/repo"
	"reviewtrust/internal/services/analyze/service"
)

// Ports exposed by the analyze module
type Ports struct {
	Analyzer domain.AnalyzerPort
	// Rules and Scorer describe the active tuning for the meta module
	Rules  *rulepack.Pack
	Scorer scorer.Config
}

// Module implements modkit.Module
type Module struct {
	b     modkit.Built
	opts  Options
	svc   *service.Service
	ports Ports
}

// New constructs the analyze module; a bad scorer tuning panics at boot
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analyze")}, opts...)...)
	o := FromConfig(deps.Cfg).merge(overrides)

	cfg, err := o.ScorerConfig()
	if err != nil {
		panic(err)
	}
	lex := lexical.Default()
	sc := scorer.New(cfg)

	log := logger.Named("analyze")
	svcOpts := []service.Option{service.WithMetrics(service.NewMetrics(o.Registerer))}
	if st := deps.Store; st != nil {
		switch {
		case st.PG != nil:
			svcOpts = append(svcOpts, service.WithArchive(repo.NewPGArchive(st.PG)))
			log.Info().Str("archive", "pg").Msg("result archive enabled")
		case st.Lite != nil:
			svcOpts = append(svcOpts, service.WithArchive(repo.NewLiteArchive(st.Lite)))
			log.Info().Str("archive", "sqlite").Msg("result archive enabled")
		}
		if st.CH != nil {
			svcOpts = append(svcOpts, service.WithIssueSink(repo.NewIssueSink(st.CH)))
			log.Info().Msg("issue sink enabled")
		}
	}

	svc := service.New(lex, sc, service.Config{
		Workers:     o.Workers,
		MaxItems:    o.MaxItems,
		StrictSinks: o.StrictSinks,
	}, svcOpts...)

	return &Module{
		b:    b,
		opts: o,
		svc:  svc,
		ports: Ports{
			Analyzer: svc,
			Rules:    lex.Pack(),
			Scorer:   sc.Config(),
		},
	}
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		analyzehttp.Register(sub, m.svc, analyzehttp.Options{MaxBodyBytes: m.opts.MaxBodyBytes})
	})
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.b.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Service returns the underlying service, for in-process callers such as the CLI
func (m *Module) Service() *service.Service { return m.svc }
