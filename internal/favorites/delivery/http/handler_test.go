package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/favorites/store"
)

type nopRepository struct{}

func (nopRepository) Load(context.Context) ([]int64, error) { return nil, nil }
func (nopRepository) Save(context.Context, []int64) error   { return nil }

func do(t *testing.T, router *mux.Router, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

// Constructed once: the handler registers collectors on the default
// prometheus registry.
func TestFavoritesHandler(t *testing.T) {
	router := mux.NewRouter()
	NewFavoritesHandler(store.New(nopRepository{})).RegisterRoutes(router)

	t.Run("empty favorites", func(t *testing.T) {
		rec, payload := do(t, router, http.MethodGet, "/api/favorites")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Empty(t, data["favorites"])
	})

	t.Run("toggle on", func(t *testing.T) {
		rec, payload := do(t, router, http.MethodPut, "/api/favorites/5")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, true, data["favorited"])
	})

	t.Run("toggle off", func(t *testing.T) {
		rec, payload := do(t, router, http.MethodPut, "/api/favorites/5")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, false, data["favorited"])
		assert.Empty(t, data["favorites"])
	})

	t.Run("invalid id", func(t *testing.T) {
		rec, payload := do(t, router, http.MethodPut, "/api/favorites/zero")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, payload["success"])
	})

	t.Run("clear", func(t *testing.T) {
		_, _ = do(t, router, http.MethodPut, "/api/favorites/1")
		_, _ = do(t, router, http.MethodPut, "/api/favorites/2")

		rec, _ := do(t, router, http.MethodDelete, "/api/favorites")
		assert.Equal(t, http.StatusOK, rec.Code)

		_, payload := do(t, router, http.MethodGet, "/api/favorites")
		data := payload["data"].(map[string]interface{})
		assert.Empty(t, data["favorites"])
	})
}
