// Package server exposes the generation agents over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/agents"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/history"
)

// Config holds server configuration.
type Config struct {
	Port        int
	FrontendURL string   // allowed CORS origin in prod
	Screens     []string // default mockup screens for /ws/generate
	AllowAll    bool     // allow all CORS origins (dev mode)
}

// Server routes the generation API.
type Server struct {
	cfg        Config
	agents     *agents.Service
	history    *history.Store // nil disables request logging
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given agent service. hist may be nil.
func New(cfg Config, svc *agents.Service, hist *history.Store) *Server {
	s := &Server{cfg: cfg, agents: svc, history: hist}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.FrontendURL != "" {
		corsOpts.AllowedOrigins = append(corsOpts.AllowedOrigins, s.cfg.FrontendURL)
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate_srs", s.handleGenerateSRS)
		r.Post("/generate_erd", s.handleGenerateERD)
		r.Post("/generate_architecture", s.handleGenerateArchitecture)
		r.Post("/generate_dataflow", s.handleGenerateDataflow)
		r.Post("/generate_sequence", s.handleGenerateSequence)
		r.Post("/generate_palette", s.handleGeneratePalette)
		r.Post("/generate_microservices", s.handleGenerateMicroservices)
		r.Post("/generate_mockups", s.handleGenerateMockups)
		r.HandleFunc("/echo", s.handleEcho)
	})

	r.Get("/ws/generate", s.handleGenerateWS)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	log.Printf("blueprint server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// record logs one finished request to the history store.
func (s *Server) record(endpoint string, start time.Time, err error) {
	if s.history == nil {
		return
	}
	outcome, detail := history.OutcomeOK, ""
	if err != nil {
		outcome, detail = history.OutcomeError, err.Error()
	}
	if recErr := s.history.Record(endpoint, outcome, time.Since(start), detail); recErr != nil {
		log.Printf("server: recording request: %v", recErr)
	}
}
