// Package server exposes the analysis pipeline over a JSON HTTP API.
//
// # Routes
//
//	GET  /healthz               liveness and build version
//	GET  /metrics               Prometheus metrics
//	POST /v1/analyze            run the pipeline on pipeline.Options
//	POST /v1/render/{format}    run the pipeline and return a dot, svg or json artifact
//	GET  /v1/presets            the preset catalog grouped by category
//	GET  /v1/presets/{slug}     one preset with its analysis
//
// Errors are returned as {"error": "...", "code": "..."} with the status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/jifkit/internal/config"
	"github.com/matzehuels/jifkit/pkg/buildinfo"
	"github.com/matzehuels/jifkit/pkg/cache"
	"github.com/matzehuels/jifkit/pkg/observability"
	"github.com/matzehuels/jifkit/pkg/pipeline"
)

// maxBodyBytes bounds request bodies; notation is far smaller.
const maxBodyBytes = 64 << 10

// Server owns the router, the pipeline runner and the metrics registry.
type Server struct {
	cfg      config.Config
	logger   *log.Logger
	runner   *pipeline.Runner
	registry *prometheus.Registry
	metrics  *Metrics
	router   chi.Router
}

// New builds a server from cfg. Results are cached in memory, bounded by
// cfg.Server.CacheEntries and cfg.Server.CacheTTL.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	runner := pipeline.NewRunner(
		cache.NewMemoryCache(cfg.Server.CacheEntries),
		cache.NewScopedKeyer(nil, buildinfo.CacheScope()),
		logger,
	)
	runner.TTL = cfg.Server.CacheTTL.Duration

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		runner:   runner,
		registry: reg,
		metrics:  NewMetrics(reg),
	}
	s.router = s.routes()
	return s
}

// InstallHooks registers the server's metrics and a log sink as the global
// observability hooks.
func (s *Server) InstallHooks() {
	observability.SetPipelineHooks(s.metrics)
	observability.SetCacheHooks(s.metrics)
	observability.SetHTTPHooks(s.metrics)
	observability.SetTraceHooks(observability.NewLogHooks(s.logger))
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/render/{format}", s.handleRender)
		r.Get("/presets", s.handlePresets)
		r.Get("/presets/{slug}", s.handlePreset)
	})
	return r
}

// instrument reports every request through the HTTP hooks and logs it.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, code, d)
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", code,
			"duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return s.runner.Close()
}
