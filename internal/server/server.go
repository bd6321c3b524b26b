// Package server provides the HTTP API for the portfolio site: the AI
// assistant, translation, resume optimization, and resume PDF download.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/makhembu/portfolio-api/internal/ai"
	"github.com/makhembu/portfolio-api/internal/guard"
	"github.com/makhembu/portfolio-api/internal/llm"
	"github.com/makhembu/portfolio-api/internal/portfolio"
)

// AIService is the surface of the ai package the handlers consume.
type AIService interface {
	Chat(ctx context.Context, message string) (string, error)
	Translate(ctx context.Context, text string) (*ai.Translation, error)
	OptimizeResume(ctx context.Context, jobDescription string, track portfolio.Track) (*ai.OptimizedResume, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	guard      *guard.Guard
	store      *guard.MemoryStore
	svc        AIService
	data       *portfolio.Data
	closer     io.Closer
}

// Config holds server configuration
type Config struct {
	Port          int
	APIKey        string
	Model         string
	Temperature   float64
	SweepInterval time.Duration
}

// New creates a new server instance backed by the real model client.
func New(cfg Config) (*Server, error) {
	client, err := llm.NewClient(context.Background(), &llm.Config{
		Model:       cfg.Model,
		Temperature: float32(cfg.Temperature),
	}, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	s := NewWithService(cfg, ai.NewService(client, nil))
	s.closer = client
	return s, nil
}

// NewWithService creates a server over an existing AI service. Tests use
// this to substitute a fake model.
func NewWithService(cfg Config, svc AIService) *Server {
	store := guard.NewMemoryStore()
	store.StartSweeping(cfg.SweepInterval)

	s := &Server{
		guard: guard.New(store, guard.DefaultPolicies()),
		store: store,
		svc:   svc,
		data:  portfolio.Default(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/ai/chat", s.handleChat)
	mux.HandleFunc("POST /api/ai/translate", s.handleTranslate)
	mux.HandleFunc("POST /api/resume/optimize", s.handleOptimize)
	mux.HandleFunc("GET /api/resume/pdf", s.handleResumePDF)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		// Longer than the slowest feature timeout so the guard's deadline,
		// not the server's, decides the response.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the server's root handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	s.store.StopSweeping()
	if s.closer != nil {
		if cerr := s.closer.Close(); cerr != nil {
			log.Printf("Error closing model client: %v", cerr)
		}
	}

	log.Println("Server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with a short ID and logs entry and exit.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.New().String()[:8]
		log.Printf("[%s] %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
