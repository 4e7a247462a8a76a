// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nexpad/nexpad/internal/content/blog"
	"github.com/nexpad/nexpad/internal/content/category"
	"github.com/nexpad/nexpad/internal/content/course"
	"github.com/nexpad/nexpad/internal/content/message"
	"github.com/nexpad/nexpad/internal/content/stats"
	"github.com/nexpad/nexpad/internal/media"
	"github.com/nexpad/nexpad/internal/platform/config"
	"github.com/nexpad/nexpad/internal/platform/constants"
	"github.com/nexpad/nexpad/internal/platform/middleware"
	"github.com/nexpad/nexpad/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin session routes (login, logout, me).
	Auth *auth.Handler

	// Blog handles articles and the public view counter.
	Blog *blog.Handler

	// Category handles the blog taxonomy.
	Category *category.Handler

	// Course handles courses and their nested lessons.
	Course *course.Handler

	// Message handles contact-form submissions.
	Message *message.Handler

	// Stats handles the dashboard statistics snapshot.
	Stats *stats.Handler

	// Media handles cover-image uploads.
	Media *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.SessionVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain route groups; each handler guards its own mutating routes.
	r.Route("/api", func(api chi.Router) {
		h.Auth.RegisterRoutes(api)
		h.Blog.RegisterRoutes(api)
		h.Category.RegisterRoutes(api)
		h.Course.RegisterRoutes(api)
		h.Message.RegisterRoutes(api)
		h.Stats.RegisterRoutes(api)
		h.Media.RegisterRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
