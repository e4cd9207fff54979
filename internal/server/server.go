// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gridcheck/internal/config"
	"github.com/MKhiriev/gridcheck/internal/handler"
	"github.com/MKhiriev/gridcheck/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server bound to the node's local address.
func NewServer(handlers *handler.Handlers, settings *config.Settings, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlers
	}
	if settings == nil {
		return nil, errNoSettings
	}

	logger.Info().Str("address", settings.LocalAddress()).Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), settings.LocalAddress(), logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error serving on %s: %w", ln.Addr(), err)
		}
		return nil
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Addr() string {
	return s.httpServer.addr()
}
