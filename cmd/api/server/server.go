package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"saas-landing-api/cmd/api/di"
	"saas-landing-api/internal/adapter/gin/router"
	"saas-landing-api/internal/config"

	"go.uber.org/zap"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance wired to the container's handlers.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	r := router.SetupRouter(c.AuthHandler, c.CatalogHandler, c.SystemHandler, l)

	addr := ":" + cfg.App.Port
	l.Info("HTTP API configured", zap.String("address", addr))

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
