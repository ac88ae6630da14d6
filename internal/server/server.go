// Package server assembles the HTTP surface: editor routes, embedded static
// assets, and health checks.
package server

import (
	"net/http"
	"strings"

	"github.com/resetalabs/resetapad/internal/config"
	"github.com/resetalabs/resetapad/internal/handlers"
	"github.com/resetalabs/resetapad/internal/store"
	"github.com/resetalabs/resetapad/internal/view"
)

// New constructs the root http.Handler with all routes applied.
func New(st *store.Store, views *view.Engine, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	prefix := cfg.Assets.Prefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServerFS(view.Assets())))

	lh := handlers.NewLetterheadHandler(st, views, cfg.Assets.Prefix, cfg.Theme)
	lh.Register(mux)

	return mux
}
