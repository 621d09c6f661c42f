package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// Server wraps the net/http server with configured timeouts and graceful
// shutdown.
type Server struct {
	srv *http.Server
	cfg config.ServerConfig
	log logging.Logger
}

// NewServer builds the server around the assembled router.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		cfg: cfg,
		log: log.Named("server"),
	}
}

// Start listens until the server is shut down. A clean shutdown returns
// nil.
func (s *Server) Start() error {
	s.log.Info("http server listening", logging.String("addr", s.cfg.Addr()))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
