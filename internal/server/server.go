// Package server exposes the debrief form over HTTP with gin: an HTML page
// that re-renders with inline errors, a JSON API and the contract itself.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-debrief/internal/config"
	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/orchestrator"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/renderers/vanilla"
)

// Option customises the server.
type Option func(*Server)

// WithLogger sets the request and submission logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSubmitter replaces the log submitter that receives accepted bundles.
func WithSubmitter(submitter debrief.Submitter) Option {
	return func(s *Server) {
		if submitter != nil {
			s.submitter = submitter
		}
	}
}

// WithOrchestrator replaces the form pipeline built from configuration.
func WithOrchestrator(orch *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if orch != nil {
			s.forms = orch
		}
	}
}

// Server serves the debrief form. Every request gets its own controller.
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	submitter debrief.Submitter
	forms     *orchestrator.Orchestrator
	theme     *theme.RendererConfig
	router    *gin.Engine
}

// New wires routes for cfg.
func New(cfg *config.Config, options ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	s := &Server{
		cfg:    cfg,
		logger: zap.NewNop(),
		theme:  cfg.Theme.RendererConfig(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.submitter == nil {
		s.submitter = debrief.NewLogSubmitter(s.logger)
	}
	if s.forms == nil {
		orch, err := newOrchestrator(cfg.Form, s.logger)
		if err != nil {
			return nil, err
		}
		s.forms = orch
	}
	if err := s.forms.Err(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s.router = s.routes()
	return s, nil
}

func newOrchestrator(cfg config.FormConfig, logger *zap.Logger) (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithCopyFile(cfg.CopyFile),
		orchestrator.WithEndpoint(cfg.Endpoint),
		orchestrator.WithLogger(logger),
	}
	if cfg.TemplatesDir != "" {
		renderer, err := vanilla.New(vanilla.WithTemplatesDir(cfg.TemplatesDir))
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		registry, err := render.NewRegistry(renderer)
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		options = append(options, orchestrator.WithRegistry(registry))
	}
	return orchestrator.New(options...), nil
}

// Handler returns the gin engine.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), corsMiddleware(s.cfg.Server.AllowedOrigins))

	router.GET("/healthz", s.health)
	router.GET("/openapi.yaml", s.openAPI)
	router.StaticFS("/assets", http.FS(vanilla.AssetsFS()))

	router.GET("/debrief", s.showForm)
	router.POST("/debrief", s.submitForm)

	api := router.Group("/api/v1", errorHandler(s.logger))
	api.POST("/debrief", s.submitAPI)
	return router
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()
	s.logger.Info("debrief server listening", zap.String("addr", l.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	s.logger.Info("debrief server stopped")
	return nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, l)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || containsOrigin(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func containsOrigin(origins []string, origin string) bool {
	for _, v := range origins {
		if v == origin {
			return true
		}
	}
	return false
}
