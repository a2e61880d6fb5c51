package httpapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aimarket/storefront/internal/config"
	"github.com/aimarket/storefront/pkg/logger"
)

// Server runs the HTTP listener as a lifecycle-managed service.
type Server struct {
	srv *http.Server
	log *logger.Logger
	err chan error
}

// NewServer wraps the handler in an http.Server bound to the configured
// address.
func NewServer(cfg config.ServerConfig, handler http.Handler, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewDefault("http")
	}
	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
		err: make(chan error, 1),
	}
}

// Name implements system.Service.
func (s *Server) Name() string { return "http" }

// Start binds the listener and serves in the background. A bind failure is
// reported synchronously; later serve failures surface on Err.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}

	go func() {
		s.log.Infof("AI Market server running on http://%s", ln.Addr())
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.err <- err
		}
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Err exposes serve failures that happen after startup.
func (s *Server) Err() <-chan error {
	return s.err
}
