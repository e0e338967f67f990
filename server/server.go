// Package server provides HTTP server setup and lifecycle handling for the
// medinfo API: middleware configuration, routes, and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sidesh-hub/medinfo-india/config"
	"github.com/sidesh-hub/medinfo-india/handlers"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/metrics"
)

// Server represents the HTTP server.
type Server struct {
	server  *http.Server
	router  chi.Router
	handler *handlers.Handler
	config  *config.Config
}

// NewServer creates a new server instance with middleware and routes set up.
func NewServer(cfg *config.Config, h *handlers.Handler) *Server {
	router := chi.NewRouter()

	s := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second, // provider calls ride on this
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		handler: h,
		config:  cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.Middleware(logging.Default.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(metrics.Middleware)

	// The lookup contract requires permissive preflight answers: any
	// origin, plus the methods and headers clients actually send.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Post("/api/medicine-lookup", s.handler.MedicineLookup)

	s.router.Post("/api/sessions", s.handler.CreateSession)
	s.router.Get("/api/sessions/{sessionID}/messages", s.handler.GetMessages)
	s.router.Post("/api/sessions/{sessionID}/messages", s.handler.PostMessage)
	s.router.Post("/api/sessions/{sessionID}/image", s.handler.PostImage)
	s.router.Delete("/api/sessions/{sessionID}", s.handler.DeleteSession)

	s.router.Get("/health", s.handler.HealthCheck)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	logging.Info("Starting server", "addr", s.server.Addr, "env", s.config.Env)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if closeErr := s.server.Close(); closeErr != nil {
			logging.Error("Server close error", "error", closeErr)
		}
		return err
	}

	logging.Info("Server exited gracefully")
	return nil
}

// Router exposes the chi router, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}
