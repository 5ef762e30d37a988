// Package server exposes the balloon solver over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Mikanister/baloon-calc-sub001/internal/config"
	"github.com/Mikanister/baloon-calc-sub001/internal/pipeline"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

// Server is the HTTP front end of the solver.
type Server struct {
	cfg      config.ServerConfig
	settings pipeline.Settings
	log      *zap.Logger
	limiter  *ipRateLimiter
}

// New creates a server from the application config. A nil logger discards
// request logs.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg.Server,
		settings: pipeline.SettingsFrom(cfg),
		log:      log,
		limiter:  newIPRateLimiter(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateBurst),
	}
}

// Handler builds the router. Everything under /api is rate limited per
// client address. API routes live on the root router so a known path with
// the wrong method answers 405.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID, s.accessLog)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := func(path string, h http.HandlerFunc, method string) {
		r.Handle("/api"+path, s.limiter.middleware(h)).Methods(method)
	}
	api("/solve", s.handleSolve, http.MethodPost)
	api("/pattern", s.handlePattern, http.MethodPost)
	api("/validate", s.handleValidate, http.MethodPost)
	api("/cost", s.handleCost, http.MethodPost)
	api("/export/{format}", s.handleExport, http.MethodPost)
	api("/materials", s.handleMaterials, http.MethodGet)
	api("/shapes", s.handleShapes, http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then drains open requests for up to
// five seconds.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
