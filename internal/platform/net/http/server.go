package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"reviewtrust/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions tunes the listener
type ServerOptions struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server owns a chi mux and the stdlib server in front of it
type Server struct {
	opt ServerOptions
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server; hooks receive the mux before any route is added
func NewServer(opt ServerOptions, hooks ...func(*chi.Mux)) *Server {
	if opt.Addr == "" {
		opt.Addr = ":4000"
	}
	if opt.ShutdownTimeout <= 0 {
		opt.ShutdownTimeout = 10 * time.Second
	}
	m := chi.NewRouter()
	for _, h := range hooks {
		h(m)
	}
	return &Server{
		opt: opt,
		mux: m,
		srv: &stdhttp.Server{
			Addr:              opt.Addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       opt.ReadTimeout,
			WriteTimeout:      opt.WriteTimeout,
		},
	}
}

// Router exposes the mux through the Router facade
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler is the root handler, useful for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.opt.Addr }

// Run serves until ctx is canceled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.opt.Addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), s.opt.ShutdownTimeout)
	defer cancel()
	log.Info().Msg("http draining")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
