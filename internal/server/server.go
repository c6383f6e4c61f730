// Package server exposes a catalog over a read-only HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jorge-barreto/refcat/internal/catalog"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	AllowedOrigins []string
	ReadTimeout    time.Duration
}

type Server struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	metrics *Metrics
	opts    Options
}

func New(cat *catalog.Catalog, logger *zap.Logger, opts Options) *Server {
	m := NewMetrics("refcat")
	m.setTopics(cat.Len())
	return &Server{
		catalog: cat,
		logger:  logger,
		metrics: m,
		opts:    opts,
	}
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(accessLog(s.logger, s.metrics))
	if len(s.opts.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	router.Get("/", s.index)
	router.Get("/health", s.health)
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/topics", s.listTopics)
		r.Get("/topics/{topicID}", s.getTopic)
		r.Get("/topics/{topicID}/text", s.topicText)
		r.Get("/search", s.search)
		r.Get("/categories", s.categories)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, codeNotFound, "route not found")
	})
	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr), zap.Int("topics", s.catalog.Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown", zap.Error(err))
		return err
	}
	return nil
}
