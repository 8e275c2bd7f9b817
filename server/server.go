// Package server hosts the interactive hydropathy plotter: an HTML form,
// a plot endpoint and the usual health and metrics plumbing.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hydroplot/config"
	"hydroplot/ncbi"
)

// Server wires the sequence ingestion collaborators to the HTTP surface.
// Profile computation itself stays in the hydropathy package; the server
// only owns the response cache layered above it.
type Server struct {
	ncbi     ncbi.Client
	cache    *Cache
	defaults config.PlotConfig
	logger   *slog.Logger
}

func New(nc ncbi.Client, cacheSize int, defaults config.PlotConfig, logger *slog.Logger) *Server {
	return &Server{
		ncbi:     nc,
		cache:    NewCache(cacheSize),
		defaults: defaults,
		logger:   logger,
	}
}

// Router builds the chi router for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(s.logger))

	r.Get("/", s.Index)
	r.Post("/plot", s.Plot)
	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
