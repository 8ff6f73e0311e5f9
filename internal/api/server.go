package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/markwalk"
	"github.com/dgallion1/markwalk/inspect"
	"github.com/dgallion1/markwalk/internal/config"
)

// Server exposes the shipped inspectors over HTTP: POST a markdown body,
// get the populated accumulator back as JSON.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(auth(s.cfg.APIKey))

		r.Post("/api/inspect/stats", s.inspect(func(src []byte) (any, error) {
			return markwalk.FromMarkdown[inspect.Stats](src)
		}))
		r.Post("/api/inspect/links", s.inspect(func(src []byte) (any, error) {
			return markwalk.FromMarkdown[inspect.Links](src)
		}))
		r.Post("/api/inspect/outline", s.inspect(func(src []byte) (any, error) {
			return markwalk.FromMarkdown[inspect.Outline](src)
		}))
		r.Post("/api/inspect/tasks", s.inspect(func(src []byte) (any, error) {
			return markwalk.FromMarkdown[inspect.Tasks](src)
		}))
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
