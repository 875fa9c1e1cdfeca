package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/emobies/emobies-api/logging"
)

const shutdownTimeout = 5 * time.Second

// Server owns the HTTP listener for the lifetime of the process.
type Server struct {
	name       string
	httpServer *http.Server
	listener   net.Listener
	logger     logging.Logger
}

// NewServer wraps handler in an http.Server bound to addr.
func NewServer(name, addr string, handler http.Handler, logger logging.Logger) *Server {
	return &Server{
		name: name,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       15 * time.Second,
		},
		logger: logger,
	}
}

// Listen binds the listening socket and logs the bound port. It is called
// by Run when the socket is not bound yet.
func (s *Server) Listen() (net.Addr, error) {
	if s.listener != nil {
		return s.listener.Addr(), nil
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln

	port := ln.Addr().String()
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = fmt.Sprint(tcpAddr.Port)
	}
	s.logger.Info(s.name+" live on", "port", port)

	return ln.Addr(), nil
}

// Run serves requests until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)

	case err := <-errChan:
		if err != nil {
			s.logger.Error("server error occurred", "error", err)
		}
		return err
	}
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Server shutdown completed")
	return nil
}
