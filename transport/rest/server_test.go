package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func serve(t *testing.T, storage pinger, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), storage, entity.DefaultRules())

	rec := httptest.NewRecorder()
	server.mux.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec
}

func TestServer(t *testing.T) {
	healthy := pingerFunc(func(context.Context) error { return nil })

	t.Run("Ping", func(t *testing.T) {
		rec := serve(t, healthy, http.MethodGet, "/ping")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("Health follows the storage", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, healthy, http.MethodGet, "/health").Code)

		down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
		assert.Equal(t, http.StatusServiceUnavailable, serve(t, down, http.MethodGet, "/health").Code)
	})

	t.Run("Rules", func(t *testing.T) {
		rec := serve(t, healthy, http.MethodGet, "/rules")
		require.Equal(t, http.StatusOK, rec.Code)

		var rules entity.Rules
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&rules))
		assert.Equal(t, entity.DefaultRules(), rules)
	})

	t.Run("Other methods are refused", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, serve(t, healthy, http.MethodPost, "/ping").Code)
	})
}
