// @title         reviewtrust API
// @version       0.1.0
// @description   Heuristic authenticity scoring for product reviews

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reviewtrust/internal/core/version"
	"reviewtrust/internal/modkit/httpkit"
	"reviewtrust/internal/platform/config"
	"reviewtrust/internal/platform/logger"
	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/net/middleware"
	"reviewtrust/internal/platform/store"

	"reviewtrust/internal/services/analyze/repo"
	"reviewtrust/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	liteCfg := root.Prefix("SERVICE_SQLITE_")

	l := logger.Get()
	bi := version.Info("reviewtrust-api")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	st, err := store.Open(ctx, store.Config{
		AppName: "reviewtrust-api",
		PG: store.PGConfig{
			Enabled:  pgCfg.MayString("DBURL", "") != "",
			URL:      pgCfg.MayString("DBURL", ""),
			MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 4)),
			LogSQL:   pgCfg.MayBool("LOG_SQL", false),
			Slow:     pgCfg.MayDuration("SLOW", 500*time.Millisecond),
		},
		Lite: store.LiteConfig{
			Enabled: liteCfg.MayString("PATH", "") != "",
			Path:    liteCfg.MayString("PATH", ""),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayString("DBURL", "") != "",
			URL:     chCfg.MayString("DBURL", ""),
			Role:    "api",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := repo.Migrate(ctx, st); err != nil {
		l.Panic().Err(err).Msg("migrations failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := phttp.NewServer(phttp.ServerOptions{
		Addr:         apiCfg.MayString("ADDR", ":4000"),
		ReadTimeout:  apiCfg.MayDuration("READ_TIMEOUT", 0),
		WriteTimeout: apiCfg.MayDuration("WRITE_TIMEOUT", 0),
	}, func(m *chi.Mux) {
		m.Use(httpkit.RootStack(
			apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
			apiCfg.MayDuration("SLOW", time.Second),
		)...)
	})

	r := srv.Router()
	if apiCfg.MayBool("METRICS", true) {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	api.Mount(r, api.Options{
		Config:     root,
		Store:      st,
		Logger:     l,
		Registerer: reg,
		CORS: middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		},
		Throttle:       apiCfg.MayInt("THROTTLE", 0),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
