package preview

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blizzard-html/blizzard/pkg/html"
	"github.com/blizzard-html/blizzard/pkg/render"
	"github.com/blizzard-html/blizzard/pkg/site"
)

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default ":3000").
	Address string

	// EnableReload injects the live-reload client script into served
	// pages and serves the reload WebSocket endpoint.
	EnableReload bool

	// TracerName is the OpenTelemetry tracer name (default
	// "blizzard-preview").
	TracerName string

	// ReadHeaderTimeout bounds how long reading request headers may take.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default preview server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":3000",
		EnableReload:      true,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server serves a site's pages over HTTP, rendering each page per
// request. It exposes Prometheus metrics on /metrics and, when reload is
// enabled, a live-reload WebSocket on /_blizzard/reload.
type Server struct {
	site     *site.Site
	config   *Config
	logger   *slog.Logger
	reload   *ReloadHub
	metrics  *serverMetrics
	registry *prometheus.Registry
	router   chi.Router

	httpServer *http.Server
}

// New creates a preview server for the given site.
func New(s *site.Site, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.Address == "" {
			config.Address = defaults.Address
		}
		if config.ReadHeaderTimeout == 0 {
			config.ReadHeaderTimeout = defaults.ReadHeaderTimeout
		}
		if config.ShutdownTimeout == 0 {
			config.ShutdownTimeout = defaults.ShutdownTimeout
		}
	}

	registry := prometheus.NewRegistry()

	srv := &Server{
		site:     s,
		config:   config,
		logger:   slog.Default().With("component", "preview"),
		reload:   NewReloadHub(),
		metrics:  newServerMetrics(registry),
		registry: registry,
	}

	r := chi.NewRouter()
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)

	if config.EnableReload {
		// The WebSocket upgrade must bypass the tracing wrapper, which
		// does not implement http.Hijacker.
		r.Get("/_blizzard/reload", srv.reload.HandleWebSocket)
		r.Post("/_blizzard/reload", srv.handleReloadTrigger)
	}

	r.Group(func(r chi.Router) {
		r.Use(tracingMiddleware(config.TracerName))
		r.Get("/*", srv.handlePage)
	})

	srv.router = r
	return srv
}

// Handler returns the server's HTTP handler, for embedding or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the live-reload hub so callers can trigger reloads
// programmatically (e.g. from a file watcher).
func (s *Server) Reload() *ReloadHub {
	return s.reload
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "address", s.config.Address, "pages", s.site.Len())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down preview server")
	s.reload.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// handlePage renders the page registered under the request path.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	start := time.Now()

	page, ok := s.site.Page(path)
	if !ok {
		s.metrics.pagesRendered.WithLabelValues(path, strconv.Itoa(http.StatusNotFound)).Inc()
		s.writeNotFound(w, path)
		return
	}

	out := render.String(page.Render())
	if s.config.EnableReload {
		out += reloadClientScript
	}

	s.metrics.renderDuration.WithLabelValues(page.Path).Observe(time.Since(start).Seconds())
	s.metrics.renderBytes.Observe(float64(len(out)))
	s.metrics.pagesRendered.WithLabelValues(page.Path, strconv.Itoa(http.StatusOK)).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(out)); err != nil {
		s.logger.Warn("write response", "path", page.Path, "error", err)
	}
}

// writeNotFound serves a small not-found page built with the same DSL
// the server exists to preview.
func (s *Server) writeNotFound(w http.ResponseWriter, path string) {
	doc := html.Document(
		html.Html(html.Lang("en"),
			html.Head(html.Title(html.Text("Not Found"))),
			html.Body(
				html.H1(html.Text("404")),
				html.P(html.Text("No page registered at "), html.Code(html.Text(path))),
			),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = render.WriteNode(w, doc)
}

// handleReloadTrigger broadcasts a reload to all connected browsers.
// Intended to be hit by build tooling after pages change.
func (s *Server) handleReloadTrigger(w http.ResponseWriter, r *http.Request) {
	s.reload.Notify()
	s.metrics.reloadBroadcasts.Inc()
	s.logger.Info("reload broadcast", "clients", s.reload.ClientCount())
	w.WriteHeader(http.StatusNoContent)
}
