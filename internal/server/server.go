package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/internal/handler"
	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	address         string
	shutdownTimeout time.Duration

	stopOnce sync.Once
	stopped  chan struct{}
	logger   *logger.Logger
}

// NewServer wires the HTTP handler and the background workers into one
// lifecycle. bg may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         bg,
		address:         cfg.HTTPAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		stopped:         make(chan struct{}),
		logger:          logger,
	}, nil
}

// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or Shutdown is
// called, then stops gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	return s.run(ctx, listener)
}

func (s *server) Shutdown() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

func (s *server) run(ctx context.Context, listener net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.workers.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case <-s.stopped:
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-serveErr:
		s.logger.Err(runErr).Msg("HTTP server stopped unexpectedly")
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancelShutdown()

	if err := s.httpServer.shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}
	s.workers.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
