// internal/httpserver/server.go
//
// Read-only status server for a running game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - "/state" serves the latest snapshot published by the frame loop.
//
// Notes:
//   - The server never touches the controller; it only reads the store, so it
//     can run on its own goroutine while the loop owns the game.
//   - Hidden icons are never part of a snapshot, so "/state" cannot leak them.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/store"
)

// Server bundles the router and the snapshot store.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                // add X-Request-ID
	s.r.Use(chimw.RealIP)                   // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                // recover from panics
	s.r.Use(chimw.Timeout(5 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"memory-puzzle","endpoints":["/health","/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/state", s.handleState)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleState writes the latest snapshot, or 503 until the loop published one.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), store.Current)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_ready"}`, http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("read snapshot")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv allows a single origin to read the status endpoints.
// Uses CLIENT_ORIGIN; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
