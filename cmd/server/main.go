package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/meur/maiprofile/internal/api"
	"github.com/meur/maiprofile/internal/catalog"
	"github.com/meur/maiprofile/internal/config"
	"github.com/meur/maiprofile/internal/logging"
	"github.com/meur/maiprofile/internal/models"
	"github.com/meur/maiprofile/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the environment
	port := flag.String("port", cfg.Port, "Server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Build catalogs; a bad asset filename stops startup
	registry, err := loadCatalogs(cfg)
	if err != nil {
		logger.Fatal("failed to build catalogs", zap.Error(err))
	}

	// Initialize storage
	store, err := storage.NewByEngine(cfg.StoreEngine, *dbPath)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	// Create router
	s := api.New(registry, store, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	// Serve asset files under the URLs the catalogs hand out
	FileServer(s.Router(), cfg.AssetsURL, http.Dir(cfg.AssetsDir))

	logger.Info("maiprofile API starting",
		zap.String("addr", "http://localhost:"+*port),
		zap.String("store_engine", cfg.StoreEngine),
		zap.String("db", *dbPath),
	)

	if err := http.ListenAndServe(":"+*port, s); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func loadCatalogs(cfg config.Config) (*catalog.Registry, error) {
	var manifest models.Manifest
	var err error
	if cfg.ManifestPath != "" {
		manifest, err = readManifest(cfg.ManifestPath)
	} else {
		manifest, err = catalog.ScanDir(os.DirFS(cfg.AssetsDir), cfg.AssetsURL)
	}
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.TitlesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open titles: %w", err)
	}
	defer f.Close()

	titles, err := catalog.LoadTitles(f)
	if err != nil {
		return nil, err
	}

	return catalog.Build(manifest, titles)
}

func readManifest(path string) (models.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return catalog.LoadManifest(f)
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", 301).ServeHTTP)
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
