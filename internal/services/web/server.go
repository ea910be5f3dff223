// Package web serves the localized documentation site over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/clidocs/internal/content"
	"github.com/louisbranch/clidocs/internal/platform/timeouts"
	"github.com/louisbranch/clidocs/internal/services/web/app"
	module "github.com/louisbranch/clidocs/internal/services/web/module"
	"github.com/louisbranch/clidocs/internal/services/web/modules"
	"github.com/louisbranch/clidocs/internal/services/web/platform/httpx"
	"github.com/louisbranch/clidocs/internal/services/web/platform/observability"
	"github.com/louisbranch/clidocs/internal/services/web/static"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// DefaultSiteName names the site when no override is configured.
const DefaultSiteName = "Tern Docs"

// Config defines the inputs for the docs web server.
type Config struct {
	HTTPAddr string
	// EnableH2C serves cleartext HTTP/2 alongside HTTP/1.1.
	EnableH2C bool
	SiteName  string
	Logger    *zap.Logger
	// Store defaults to the embedded page set.
	Store   *content.Store
	Metrics *observability.Metrics
	Tracer  trace.Tracer
}

// Server hosts the docs HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	listener   net.Listener
	logger     *zap.Logger
}

// NewHandler builds the root handler: static assets, system routes and the
// docs pages behind request id, logging and panic recovery middleware.
func NewHandler(config Config) (http.Handler, error) {
	config = withDefaults(config)
	root, err := app.BuildRootHandler(app.Config{
		Static: static.Handler(),
		Modules: modules.Default(module.Dependencies{
			Store:    config.Store,
			SiteName: config.SiteName,
			Logger:   config.Logger,
			Metrics:  config.Metrics,
			Tracer:   config.Tracer,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	handler := httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(config.Logger, config.Metrics),
		httpx.RecoverPanic(config.Logger),
	)
	if config.EnableH2C {
		handler = h2c.NewHandler(handler, &http2.Server{IdleTimeout: timeouts.Idle})
	}
	return handler, nil
}

// NewServer builds a configured docs server and binds its listener.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	config = withDefaults(config)
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	// Cancellation is honored by ListenAndServe; binding itself is not aborted.
	listener, err := (&net.ListenConfig{}).Listen(context.WithoutCancel(ctx), "tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}
	return &Server{
		httpAddr: listener.Addr().String(),
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          zap.NewStdLog(config.Logger.Named("http")),
		},
		listener: listener,
		logger:   config.Logger,
	}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("docs site listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the listener and any idle connections.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", zap.Error(err))
	}
	// Serve may never have taken ownership of the listener.
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logger.Warn("close listener", zap.Error(err))
	}
}

func withDefaults(config Config) Config {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if strings.TrimSpace(config.SiteName) == "" {
		config.SiteName = DefaultSiteName
	}
	if config.Store == nil {
		config.Store = content.Default()
	}
	if config.Metrics == nil {
		config.Metrics = observability.NewMetrics()
	}
	return config
}
