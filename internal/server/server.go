package server

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-brand-kit/internal/config"
	"github.com/MKhiriev/go-brand-kit/internal/handler/http"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler *http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails, then shuts the server
// down.
func (s *server) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	eg.Go(s.httpServer.RunServer)

	eg.Go(func() error {
		<-egCtx.Done()
		s.Shutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
