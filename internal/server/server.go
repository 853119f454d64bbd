// Package server exposes the recommendation catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"cinematch/internal/advisor"
	"cinematch/internal/catalog"
	"cinematch/internal/config"
	"cinematch/internal/interests"
	"cinematch/internal/logging"
)

// Server serves recommendation and catalog queries over HTTP.
type Server struct {
	bind         string
	defaultLimit int
	logger       *slog.Logger

	store   *catalog.Store
	advisor *advisor.Advisor
	finder  *interests.Finder

	handler  http.Handler
	listener net.Listener
	server   *http.Server
}

// New creates a Server wired to the catalog store.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("server requires config and store")
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, errors.New("api bind address required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logging.WithComponent(logger, "api-server")

	srv := &Server{
		bind:         bind,
		defaultLimit: cfg.Advisor.DefaultLimit,
		logger:       logger,
		store:        store,
		advisor:      advisor.New(store, advisor.Options{FuzzyThreshold: cfg.Advisor.FuzzyThreshold, Logger: logger}),
		finder:       interests.NewFinder(store, cfg.Interests, logger),
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(srv.logRequests)

	router.Get("/healthz", srv.handleHealth)
	router.Route("/api", func(r chi.Router) {
		r.Get("/recommend", srv.handleRecommend)
		r.Get("/search", srv.handleSearch)
		r.Get("/interests", srv.handleInterests)
	})

	srv.handler = router
	srv.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down, draining in-flight requests.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}
