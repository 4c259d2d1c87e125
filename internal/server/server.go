package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/outreach-tracker/internal/server/ratelimit"
	"github.com/jonathan/outreach-tracker/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	rateLimiter *ratelimit.Limiter
	log         zerolog.Logger
}

// Config holds server configuration
type Config struct {
	Port   int
	Logger zerolog.Logger
}

// New creates a new server instance around an existing store.
func New(cfg Config, st *store.Store) *Server {
	s := &Server{
		store:       st,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		log:         cfg.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Company CRUD
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("POST /companies", s.handleCreateCompany)
	mux.HandleFunc("GET /companies/{id}", s.handleGetCompany)
	mux.HandleFunc("PUT /companies/{id}", s.handleUpdateCompany)
	mux.HandleFunc("DELETE /companies/{id}", s.handleDeleteCompany)
	mux.HandleFunc("PUT /companies/{id}/highlight", s.handleSetHighlight)

	// Communication logging: per-company, plus one batch endpoint that logs
	// the same payload to several companies in a single action.
	mux.HandleFunc("POST /companies/{id}/communications", s.handleLogCommunication)
	mux.HandleFunc("POST /communications", s.handleLogCommunicationBatch)

	// Communication method catalog
	mux.HandleFunc("GET /methods", s.handleListMethods)
	mux.HandleFunc("POST /methods", s.handleCreateMethod)
	mux.HandleFunc("PUT /methods/{id}", s.handleUpdateMethod)
	mux.HandleFunc("DELETE /methods/{id}", s.handleDeleteMethod)
	mux.HandleFunc("POST /methods/{id}/move", s.handleMoveMethod)
	mux.HandleFunc("PUT /methods/order", s.handleReorderMethods)

	// Derived views, read-only
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("GET /notifications", s.handleNotifications)
	mux.HandleFunc("GET /calendar", s.handleCalendar)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured routes, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// storeError maps a store failure onto the right status code.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractClientID identifies the caller by IP address.
func extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit == 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}
