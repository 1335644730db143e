package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the operational endpoints of forumd until its context ends.
type Server struct {
	srv   *http.Server
	drain time.Duration
	log   *slog.Logger
}

// NewServer prepares a server for handler on cfg's host and port. A nil
// logger discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	drain := cfg.ShutdownTimeout
	if drain <= 0 {
		drain = defaultShutdownTimeout
	}

	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		drain: drain,
		log:   logger,
	}
}

// Run binds the listener, serves until ctx ends and then gives in-flight
// requests up to the shutdown timeout to finish. Bind failures are returned
// at once. A graceful stop returns nil.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.log.Info("http server listening", slog.String("addr", l.Addr().String()))

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(l) }()

	select {
	case err := <-served:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("http server draining", slog.Duration("timeout", s.drain))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	if err := s.srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server stopped: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
