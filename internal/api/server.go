package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/yuin/goldmark"

	"github.com/Joshi-574/paperIQ/internal/config"
	"github.com/Joshi-574/paperIQ/internal/session"
)

// Server is the HTTP API server for paperIQ.
type Server struct {
	router   chi.Router
	store    *session.Store
	log      *slog.Logger
	cfg      config.Config
	validate *validator.Validate
	md       goldmark.Markdown
}

// NewServer creates and configures the HTTP server.
func NewServer(store *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    store,
		log:      log,
		cfg:      cfg,
		validate: validator.New(),
		md:       goldmark.New(),
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
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Paper endpoints. Auth only applies when a key is configured; the
	// assistant is keyless by default.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/papers", s.handleUpload)
		r.Get("/api/papers/{paperID}", s.handleGetPaper)
		r.Delete("/api/papers/{paperID}", s.handleDeletePaper)

		r.Get("/api/papers/{paperID}/summary", s.handleSummary)
		r.Post("/api/papers/{paperID}/questions", s.handleQuestion)
		r.Get("/api/papers/{paperID}/chat", s.handleChatHistory)
		r.Delete("/api/papers/{paperID}/chat", s.handleClearChat)
		r.Get("/api/papers/{paperID}/insights", s.handleInsights)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// paperSession resolves the {paperID} URL parameter, writing a 404 and
// returning nil when the session does not exist.
func (s *Server) paperSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := chi.URLParam(r, "paperID")
	sess := s.store.Get(id)
	if sess == nil {
		jsonError(w, "paper not found", http.StatusNotFound)
	}
	return sess
}
