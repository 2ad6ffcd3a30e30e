// Package site exposes the publish directory over HTTP: the current-year
// dataset and the alias table, read-only.
package site

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/LayoffWatch/LW-Pipeline/internal/middleware"
)

func SetupRoutes(siteDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/current_year.csv", serveFile(filepath.Join(siteDir, "current_year.csv"), "text/csv; charset=utf-8"))
	r.Get("/mappings.json", serveFile(filepath.Join(siteDir, "mappings.json"), "application/json"))
	return r
}

func serveFile(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, path)
	}
}
