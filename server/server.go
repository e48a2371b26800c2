// Package server exposes the assistant over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/imagery"
	"github.com/poiesic/faqit/respond"
)

// Assistant is what the HTTP surface needs from the assistant.
type Assistant interface {
	Respond(ctx context.Context, l core.Locale, query string) (respond.Response, error)
	Entries(ctx context.Context, l core.Locale) ([]*core.Entry, error)
	AddEntry(ctx context.Context, entry *core.Entry) (*core.Entry, error)
}

// ErrAssistantRequired is returned by NewServer without an assistant.
var ErrAssistantRequired = errors.New("assistant is required")

// Config controls the HTTP server.
type Config struct {
	Addr          string
	Timeout       time.Duration // Per-request deadline
	AllowedOrigin string        // CORS origin, empty disables CORS headers
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8000",
		Timeout:       10 * time.Second,
		AllowedOrigin: "http://localhost:3000",
	}
}

// Merge overlays the non-zero fields of override.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Addr) != "" {
		result.Addr = strings.TrimSpace(override.Addr)
	}
	if override.Timeout > 0 {
		result.Timeout = override.Timeout
	}
	if override.AllowedOrigin != "" {
		result.AllowedOrigin = override.AllowedOrigin
	}
	return result
}

// Server routes HTTP requests to the assistant.
type Server struct {
	router    chi.Router
	assistant Assistant
	images    imagery.Resolver
	config    Config
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithImages sets the resolver of answer images. Without one responses
// carry the image reference but no image data.
func WithImages(images imagery.Resolver) Option {
	return func(s *Server) {
		s.images = images
	}
}

// NewServer creates a server over assistant. cfg overrides DefaultConfig.
func NewServer(assistant Assistant, cfg *Config, opts ...Option) (*Server, error) {
	if assistant == nil {
		return nil, ErrAssistantRequired
	}
	config := DefaultConfig()
	if cfg != nil {
		config = config.Merge(*cfg)
	}

	s := &Server{
		router:    chi.NewRouter(),
		assistant: assistant,
		config:    config,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start),
				"remote", r.RemoteAddr, "request_id", middleware.GetReqID(r.Context()))
		})
	})
	s.router.Use(s.cors)
	s.router.Use(middleware.Timeout(s.config.Timeout))

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/chat", s.handleChat)
		r.Get("/data", s.handleListData)
		r.Post("/data", s.handleAddData)

		// Paths served by earlier releases of the web client
		r.Get("/get_data", s.handleListData)
		r.Post("/update_data", s.handleAddData)
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.AllowedOrigin == "" {
			next.ServeHTTP(w, r)
			return
		}
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.config.AllowedOrigin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: s.config.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	} else {
		s.logger.Warn("request failed", "status", status, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
