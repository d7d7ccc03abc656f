// Package server implements the HTTP responder and its middleware chain.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"helloserver/internal/config"
	"helloserver/internal/logging"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	httpServer *http.Server
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Handler builds the route table with the full middleware chain applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Single explicit route; everything else falls through to a 404 inside
	// the root handler. Body parsing runs before route matching, mirroring
	// the middleware ordering of the original application.
	mux.HandleFunc("/", s.RequestIDMiddleware(s.LoggingMiddleware(s.TraceMiddleware(s.JSONBodyMiddleware(s.handleRoot)))))

	return mux
}

// Start binds the listen socket and serves until Shutdown is called.
// A bind failure is returned to the caller; a clean shutdown returns nil.
func (s *Server) Start() error {
	addr := s.config.Addr()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Printf("Starting server on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server, draining in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
