package server

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/slotkit/internal/config"
	"github.com/vango-dev/slotkit/internal/errors"
	"github.com/vango-dev/slotkit/pkg/document"
	"github.com/vango-dev/slotkit/pkg/layout"
	"github.com/vango-dev/slotkit/pkg/metrics"
	"github.com/vango-dev/slotkit/pkg/render"
)

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Server is the preview server for one document.
type Server struct {
	config   *config.Config
	docPath  string
	logger   *slog.Logger
	registry *prometheus.Registry

	page     *layout.Page
	check    *layout.Page
	renderer *render.Renderer
	reload   *ReloadServer
	router   chi.Router

	// listener is used by Run instead of listening on config.Address().
	listener net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry sets the Prometheus registry that slot metrics are
// registered with and the metrics endpoint serves. By default each Server
// gets its own registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithListener makes Run serve on l instead of the configured address.
func WithListener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

// New creates a preview server for the document at docPath.
func New(cfg *config.Config, docPath string, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		config:   cfg,
		docPath:  docPath,
		logger:   slog.Default(),
		registry: prometheus.NewRegistry(),
		reload:   NewReloadServer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	pageOpts, err := PageOptions(cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.check = layout.New(pageOpts...)
	if cfg.Metrics.Enabled {
		obs := metrics.New(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithRegistry(s.registry),
		)
		pageOpts = append(pageOpts, layout.WithObserver(obs))
	}

	s.page = layout.New(pageOpts...)
	s.renderer = render.NewRenderer(render.RendererConfig{Pretty: cfg.Render.Pretty})
	s.router = s.routes()
	return s, nil
}

// PageOptions translates configuration into page layout options.
func PageOptions(cfg *config.Config, logger *slog.Logger) ([]layout.Option, error) {
	policy, err := layout.ParsePolicy(cfg.Layout.Policy)
	if err != nil {
		return nil, errors.New("E103").Wrap(err).WithSuggestion("Use permissive, warn or strict")
	}

	var required []layout.Region
	for _, name := range cfg.Layout.Required {
		r, ok := layout.ParseRegion(name)
		if !ok {
			return nil, errors.New("E103").WithDetailf("unknown required region %q", name)
		}
		required = append(required, r)
	}

	return []layout.Option{
		layout.WithPolicy(policy),
		layout.WithRequired(required...),
		layout.WithLogger(logger),
		layout.WithTracer(Tracer(cfg)),
	}, nil
}

// Tracer returns the tracer layouts should use: the global provider's
// tracer named after the service when tracing is enabled, a no-op tracer
// otherwise.
func Tracer(cfg *config.Config) trace.Tracer {
	if !cfg.Tracing.Enabled {
		return noop.NewTracerProvider().Tracer("")
	}
	return otel.Tracer(cfg.Tracing.Service)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the live reload hub.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	if s.config.Metrics.Enabled {
		r.Method(http.MethodGet, s.config.Metrics.Path,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.config.Reload.Enabled {
		r.Method(http.MethodGet, ReloadPath, s.reload)
	}
	return r
}

// RenderPage loads the document and renders it as a complete HTML page.
func (s *Server) RenderPage(ctx context.Context) ([]byte, error) {
	return s.renderWith(ctx, s.page)
}

func (s *Server) renderWith(ctx context.Context, page *layout.Page) ([]byte, error) {
	doc, err := document.Load(s.docPath)
	if err != nil {
		return nil, err
	}

	body, err := doc.Render(ctx, page)
	if err != nil {
		return nil, err
	}

	data := render.PageData{
		Body:  body,
		Title: doc.Title,
		Lang:  doc.Lang,
	}
	if data.Lang == "" {
		data.Lang = s.config.Render.Lang
	}
	if s.config.Reload.Enabled {
		data.Scripts = append(data.Scripts, render.ScriptTag{Inline: ReloadScript})
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, err := s.RenderPage(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render failed",
			"document", s.docPath,
			"error", err,
			"request_id", RequestID(r.Context()),
		)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// onDocumentChange re-renders the document and tells browsers to reload,
// or shows the error if it no longer renders. Checks go through a page
// without the metrics observer so only served requests are counted.
func (s *Server) onDocumentChange() {
	if _, err := s.renderWith(context.Background(), s.check); err != nil {
		s.logger.Warn("document no longer renders", "document", s.docPath, "error", err)
		s.reload.NotifyError(err.Error())
		return
	}
	s.logger.Info("document changed, reloading", "document", s.docPath)
	s.reload.NotifyReload()
}

// Run serves until ctx is done, then shuts down gracefully. The document
// watcher is stopped before Run returns on every path.
func (s *Server) Run(ctx context.Context) error {
	ln := s.listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", s.config.Address())
		if err != nil {
			return errors.New("E501").Wrap(err).
				WithSuggestion("Pick another port with --port")
		}
	}

	if s.config.Reload.Enabled {
		watcher, err := NewWatcher(s.docPath, DefaultDebounce, s.onDocumentChange, s.logger)
		if err != nil {
			ln.Close()
			return errors.New("E501").Wrap(err).WithDetailf("watch %s: %v", s.docPath, err)
		}
		watchCtx, stopWatch := context.WithCancel(ctx)
		watchDone := make(chan struct{})
		go func() {
			defer close(watchDone)
			watcher.Run(watchCtx)
		}()
		defer func() {
			stopWatch()
			<-watchDone
		}()
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	s.logger.Info("preview server listening", "addr", ln.Addr().String(), "document", s.docPath)

	select {
	case err := <-errCh:
		s.reload.Close()
		return errors.New("E501").Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	s.reload.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.New("E501").Wrap(err)
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.New("E501").Wrap(err)
	}
	s.logger.Info("preview server stopped")
	return nil
}
