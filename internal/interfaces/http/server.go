package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/turtacn/MechParse/internal/config"
	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
)

// Server wraps the standard library HTTP server with startup and graceful
// shutdown plumbing.
type Server struct {
	srv    *http.Server
	cfg    config.ServerConfig
	logger logging.Logger
}

// NewServer constructs a Server that serves handler according to cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger.Named("server"),
	}
}

// Start listens and serves until Shutdown is called or the listener fails.
// It blocks; run it from main or a dedicated goroutine. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	s.logger.Info("server listening", logging.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests within the configured shutdown timeout
// and then closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	s.logger.Info("server shutting down")
	return s.srv.Shutdown(ctx)
}
