package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
	"github.com/meur/relicforge/internal/tracker"
)

// Snapshots stores shared copies of the tracking state
type Snapshots interface {
	CreateSnapshot(items []models.TrackedItem, inventory []models.RelicCount) (*models.Snapshot, error)
	GetSnapshotByShareCode(code string) (*models.Snapshot, error)
}

// Server holds the HTTP server dependencies
type Server struct {
	catalog   *catalog.Catalog
	tracker   *tracker.Tracker
	snapshots Snapshots
	origins   []string
	router    chi.Router
}

// New creates a new API server
func New(cat *catalog.Catalog, tr *tracker.Tracker, snapshots Snapshots, allowedOrigins []string) *Server {
	s := &Server{
		catalog:   cat,
		tracker:   tr,
		snapshots: snapshots,
		origins:   allowedOrigins,
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Router exposes the chi router so callers can mount extra handlers
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	origins := s.origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/items", s.handleGetItems)
		r.Get("/items/search", s.handleSearchItems)
		r.Get("/items/{itemID}", s.handleGetItem)
		r.Get("/parts", s.handleGetParts)
		r.Get("/relics/{name}", s.handleGetRelic)
		r.Get("/relics/{name}/drops", s.handleGetRelicDrops)
		r.Get("/resolve", s.handleResolve)

		// Tracked items
		r.Get("/tracked", s.handleListTracked)
		r.Post("/tracked", s.handleAddTracked)
		r.Get("/tracked/{itemID}", s.handleGetTracked)
		r.Delete("/tracked/{itemID}", s.handleRemoveTracked)
		r.Post("/tracked/{itemID}/parts/{part}/toggle", s.handleTogglePart)

		// Relic inventory
		r.Get("/inventory", s.handleGetInventory)
		r.Post("/inventory/{name}/increment", s.handleIncrementRelic)
		r.Post("/inventory/{name}/decrement", s.handleDecrementRelic)

		// Share links and export
		r.Post("/share", s.handleCreateShare)
		r.Get("/s/{code}", s.handleGetShare)
		r.Get("/export.xlsx", s.handleExport)
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

// pathParam returns a decoded URL parameter; relic and item names carry
// spaces.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
