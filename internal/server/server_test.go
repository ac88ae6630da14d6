package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resetalabs/resetapad/internal/config"
	"github.com/resetalabs/resetapad/internal/store"
	"github.com/resetalabs/resetapad/internal/view"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	views, err := view.NewEngine()
	require.NoError(t, err)

	return New(store.New(db), views, config.Default())
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAssetsServed(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/assets/editor.css", "/assets/editor.js"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NotZero(t, rec.Body.Len(), path)
	}
}

func TestLetterheadRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/letterheads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
