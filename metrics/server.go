package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/gaze/core"
)

// Server exposes the collector over HTTP
type Server struct {
	collector *Collector
	logger    *zap.Logger
	srv       *http.Server
	listener  net.Listener
}

// NewServer creates a server for collector
func NewServer(collector *Collector, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{collector: collector, logger: logger}
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", s.healthCheck)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.collector.Registry(), promhttp.HandlerOpts{}))
	return router
}

func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// Start listens on addr and serves in the background
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	core.Go(func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", zap.Error(err))
		}
	})
	s.logger.Info("metrics server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
