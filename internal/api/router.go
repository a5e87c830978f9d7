package api

import (
	"net/http"

	"velocity-model-service/internal/api/handlers"
	"velocity-model-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ModelRepository, bibrefs ports.BibrefResolver, service, version string) http.Handler {
	mux := http.NewServeMux()

	modelHandler := &handlers.ModelHandler{Repo: repo, Bibrefs: bibrefs}
	catalogHandler := &handlers.CatalogHandler{Repo: repo}
	rootHandler := &handlers.RootHandler{Service: service, Version: version}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/1d/", modelHandler.Profile1D)
	mux.HandleFunc("/3d/", modelHandler.Grid3D)
	mux.HandleFunc("/authors", catalogHandler.Authors)
	mux.HandleFunc("/nfos", catalogHandler.NFOs)
	mux.HandleFunc("/{$}", rootHandler.Info)

	return loggingMiddleware(corsMiddleware(mux))
}
