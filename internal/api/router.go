package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/meur/maiprofile/internal/catalog"
	"github.com/meur/maiprofile/internal/logging"
	"github.com/meur/maiprofile/internal/storage"
)

// Options configures the API server
type Options struct {
	AllowedOrigins []string
	Logger         *zap.Logger
}

// Server holds the HTTP server dependencies
type Server struct {
	catalogs *catalog.Registry
	store    storage.Backend
	logger   *zap.Logger
	router   chi.Router
}

// New creates a new API server
func New(catalogs *catalog.Registry, store storage.Backend, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		catalogs: catalogs,
		store:    store,
		logger:   logger,
		router:   chi.NewRouter(),
	}

	s.setupMiddleware(opts.AllowedOrigins)
	s.setupRoutes()

	return s
}

// Router exposes the underlying router so callers can mount extra handlers
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:*"}
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(logging.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Catalogs
		r.Get("/catalogs", s.handleListCatalogs)
		r.Get("/catalogs/{kind}/items", s.handleGetCatalogItems)
		r.Get("/catalogs/{kind}/items/{id}", s.handleGetCatalogItem)

		// Titles
		r.Get("/titles", s.handleGetTitles)
		r.Get("/titles/lookup", s.handleLookupTitle)

		// Profiles
		r.Post("/profiles", s.handleCreateProfile)
		r.Route("/profiles/{profileID}", func(r chi.Router) {
			r.Get("/selection", s.handleGetSelection)
			r.Put("/selection", s.handlePutSelection)
			r.Get("/favorites", s.handleGetFavorites)
			r.Put("/favorites", s.handlePutFavorites)
			r.Post("/favorites/{category}/{id}", s.handleToggleFavorite)
		})
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathParam returns the decoded URL parameter name
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
