package main

import (
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/meur/relicforge/internal/api"
	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/config"
	"github.com/meur/relicforge/internal/storage"
	"github.com/meur/relicforge/internal/tracker"
)

func main() {
	cfg := config.Load()

	// Parse flags
	port := flag.String("port", cfg.Port, "Server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	catalogDir := flag.String("catalog", cfg.CatalogDir, "Catalog data directory")
	staticDir := flag.String("static", cfg.StaticDir, "Frontend build directory")
	flag.Parse()

	// Load the static catalog
	cat, err := catalog.Load(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Initialize storage
	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Create router
	r := api.New(cat, tracker.New(store, cat), store, cfg.CORSOrigins)

	// Serve frontend static files (for production deployment)
	FileServer(r.Router(), "/", http.Dir(*staticDir))

	log.Printf("RelicForge API starting on http://localhost:%s", *port)
	log.Printf("Catalog: %s (%d items, %d parts)", *catalogDir, len(cat.Items("")), cat.Scaffold().Len())
	log.Printf("Database: %s", *dbPath)

	if err := http.ListenAndServe(":"+*port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
