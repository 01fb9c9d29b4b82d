// Package api exposes the decision service over HTTP: health and ledger
// snapshot, administrative restock, the prediction pipeline and the live
// decision stream consumed by the dashboard.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mgirardot/partpilot/core/decision"
	"github.com/mgirardot/partpilot/core/inventory"
	"github.com/mgirardot/partpilot/core/livestate"
	"github.com/mgirardot/partpilot/core/logger"
)

// Server wraps the HTTP server and its routes.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg Config, proc *decision.Processor, ledger inventory.Ledger, live *livestate.Store, log logger.Logger) *Server {
	h := &Handler{proc: proc, ledger: ledger, live: live, log: log}

	r := chi.NewRouter()
	r.Get("/", h.Status)
	r.Get("/health", h.Health)
	r.Get("/live_stream", h.LiveStream)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Post("/inventory/update", h.UpdateInventory)
	r.Post("/predict", h.Predict)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      r,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		},
		log: log,
	}
}

// Handler returns the router for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
