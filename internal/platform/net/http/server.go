package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"langshift/internal/platform/config"
	"langshift/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listening http.Server
type Server struct {
	mux *chi.Mux
	srv *http.Server
}

// NewServer reads API_PORT (default :4000) and the API_*_TIMEOUT knobs from cfg
func NewServer(cfg config.Conf) *Server {
	c := cfg.Prefix("API_")
	m := chi.NewRouter()
	return &Server{
		mux: m,
		srv: &http.Server{
			Addr:              c.MayString("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       c.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      c.MayDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       c.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router returns the root router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until Shutdown; a graceful stop returns nil
func (s *Server) Run(ctx context.Context) error {
	log := logger.C(ctx).With().Str("component", "http").Logger()
	log.Info().Str("addr", s.srv.Addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in flight requests
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
