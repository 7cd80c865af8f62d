// Package server serves the catalog and cover images over HTTP for gallery
// installs that point at a self-hosted data source instead of the published
// site.
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Server constants
const (
	// DefaultPort is the port the catalog server listens on.
	DefaultPort = 8090
	// CompressionLevel is the gzip level for responses.
	CompressionLevel = 5
)

// Server exposes a catalog directory over HTTP.
type Server struct {
	dir    string
	router chi.Router
}

// NewServer creates a server rooted at the given catalog directory.
func NewServer(dir string) *Server {
	s := &Server{dir: dir}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(CompressionLevel))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/"+model.DataPath, s.handleData)
	r.Get("/"+model.ImageDir+"/*", s.handleImage)

	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given port and blocks.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Catalog server listening on %s, serving %s", addr, s.dir)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.dir, model.DataPath)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "catalog not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, path)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	// Reject traversal outside the images directory.
	if name == "" || name != filepath.Base(name) {
		http.Error(w, "invalid image path", http.StatusBadRequest)
		return
	}
	path := filepath.Join(s.dir, model.ImageDir, name)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, path)
}
