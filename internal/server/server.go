// Package server exposes the practice engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/morsely/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// Config holds server settings.
type Config struct {
	Addr string

	// WeakestCount is the default n for GET /weakest.
	WeakestCount int
}

// Server provides the HTTP endpoints.
type Server struct {
	logger     zerolog.Logger
	config     Config
	practice   Practice
	challenges Challenger
	metrics    *metrics.Metrics
	server     *http.Server
}

// NewServer creates a Server. A nil m gets a fresh metrics registry.
func NewServer(logger zerolog.Logger, cfg Config, practice Practice, challenges Challenger, m *metrics.Metrics) *Server {
	if m == nil {
		m = metrics.New()
	}
	if cfg.WeakestCount <= 0 {
		cfg.WeakestCount = 3
	}
	s := &Server{
		logger:     logger,
		config:     cfg,
		practice:   practice,
		challenges: challenges,
		metrics:    m,
	}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.setupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to address %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	s.logger.Info().Msg("HTTP server closed gracefully")
	return nil
}
