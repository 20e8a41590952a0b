package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/kafka"
)

type stubSource struct {
	products []domain.Product
}

func (s *stubSource) FetchAll(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubSource) FetchByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

type mockAnalytics struct {
	mu       sync.Mutex
	searches []string
	views    []int64
}

func (m *mockAnalytics) PublishSearchPerformed(_ context.Context, event kafka.SearchPerformedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, event.Term)
	return nil
}

func (m *mockAnalytics) PublishProductViewed(_ context.Context, event kafka.ProductViewedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views = append(m.views, event.ProductID)
	return nil
}

func (m *mockAnalytics) viewed() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.views...)
}

// Constructed once: the handler registers collectors on the default
// prometheus registry.
func TestProductHandler(t *testing.T) {
	source := &stubSource{products: []domain.Product{
		{ID: 1, Title: "Linen Shirt", Price: 35, Category: "men's clothing"},
		{ID: 2, Title: "Denim Jacket", Price: 55, Category: "men's clothing"},
		{ID: 3, Title: "Silver Bracelet", Price: 19, Category: "jewelery"},
	}}
	analytics := &mockAnalytics{}

	loader := query.NewLoader(source, nil)
	handler := NewProductHandler(
		query.NewListProductsHandler(loader, nil),
		query.NewGetProductHandler(source),
		query.NewListCategoriesHandler(loader),
		analytics,
	)
	defer handler.Close()

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, nil)

	get := func(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		return rec, payload
	}

	t.Run("list products default sort", func(t *testing.T) {
		rec, payload := get(t, "/api/products")
		assert.Equal(t, http.StatusOK, rec.Code)

		data := payload["data"].(map[string]interface{})
		products := data["products"].([]interface{})
		require.Len(t, products, 3)
		first := products[0].(map[string]interface{})
		assert.Equal(t, "Silver Bracelet", first["title"]) // cheapest first
	})

	t.Run("list products filtered", func(t *testing.T) {
		_, payload := get(t, "/api/products?search=shirt&min_price=0&max_price=1000")
		data := payload["data"].(map[string]interface{})
		products := data["products"].([]interface{})
		require.Len(t, products, 1)
		assert.Equal(t, float64(1), products[0].(map[string]interface{})["id"])
	})

	t.Run("pagination flags", func(t *testing.T) {
		_, payload := get(t, "/api/products?page_size=2&page=1")
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, true, data["has_more"])
		assert.Equal(t, float64(3), data["total"])
	})

	t.Run("categories", func(t *testing.T) {
		_, payload := get(t, "/api/products/categories")
		data := payload["data"].(map[string]interface{})
		assert.ElementsMatch(t, []interface{}{"men's clothing", "jewelery"}, data["categories"])
	})

	t.Run("get product", func(t *testing.T) {
		rec, payload := get(t, "/api/products/3")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		assert.Equal(t, "Silver Bracelet", data["title"])
		assert.Equal(t, []int64{3}, analytics.viewed())
	})

	t.Run("get product not found", func(t *testing.T) {
		rec, payload := get(t, "/api/products/99")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, payload["success"])
	})

	t.Run("get product invalid id", func(t *testing.T) {
		rec, _ := get(t, "/api/products/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec, payload := get(t, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, payload["success"])
	})

	t.Run("search terms coalesce into one analytics event", func(t *testing.T) {
		_, _ = get(t, "/api/products?search=sh")
		_, _ = get(t, "/api/products?search=shi")
		_, _ = get(t, "/api/products?search=shirt")

		handler.searchEvents.Flush()

		analytics.mu.Lock()
		defer analytics.mu.Unlock()
		require.Len(t, analytics.searches, 1)
		assert.Equal(t, "shirt", analytics.searches[0])
	})
}
