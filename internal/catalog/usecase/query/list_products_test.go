package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/cache"
	"github.com/tair/storefront/internal/catalog/domain"
)

type mockSource struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (m *mockSource) FetchAll(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockSource) FetchByID(_ context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

type mockCache struct {
	mu       sync.Mutex
	products []domain.Product
	has      bool
}

func (m *mockCache) Get(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return nil, cache.ErrCacheMiss
	}
	return m.products, nil
}

func (m *mockCache) Set(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = products
	m.has = true
	return nil
}

type stubFavorites map[int64]struct{}

func (s stubFavorites) IsFavorite(id int64) bool {
	_, ok := s[id]
	return ok
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Linen Shirt", Price: 35, Category: "men's clothing"},
		{ID: 2, Title: "Denim Jacket", Price: 55, Category: "men's clothing"},
		{ID: 3, Title: "Silver Bracelet", Price: 19, Category: "jewelery"},
		{ID: 4, Title: "Flannel Shirt", Price: 25, Category: "men's clothing"},
	}
}

func TestListProducts_FilterSortPaginate(t *testing.T) {
	h := NewListProductsHandler(NewLoader(&mockSource{products: catalogFixture()}, nil), nil)

	result := h.Handle(context.Background(), ListProductsQuery{
		Search:   "shirt",
		PageSize: 1,
		Page:     1,
	})

	require.Len(t, result.Products, 1)
	assert.Equal(t, int64(4), result.Products[0].ID) // cheapest matching shirt
	assert.Equal(t, 2, result.Total)
	assert.True(t, result.HasMore)
}

func TestListProducts_Defaults(t *testing.T) {
	h := NewListProductsHandler(NewLoader(&mockSource{products: catalogFixture()}, nil), nil)

	result := h.Handle(context.Background(), ListProductsQuery{})

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, DefaultPageSize, result.PageSize)
	assert.Equal(t, 4, result.Total)
	assert.False(t, result.HasMore)
}

func TestListProducts_FavoritesOnly(t *testing.T) {
	favs := stubFavorites{2: {}, 3: {}}
	h := NewListProductsHandler(NewLoader(&mockSource{products: catalogFixture()}, nil), favs)

	result := h.Handle(context.Background(), ListProductsQuery{FavoritesOnly: true})

	require.Len(t, result.Products, 2)
	assert.Equal(t, int64(3), result.Products[0].ID)
	assert.Equal(t, int64(2), result.Products[1].ID)
}

func TestListProducts_UpstreamFailureDegradesToEmpty(t *testing.T) {
	h := NewListProductsHandler(NewLoader(&mockSource{err: errors.New("connection refused")}, nil), nil)

	result := h.Handle(context.Background(), ListProductsQuery{})

	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.Total)
	assert.False(t, result.HasMore)
}

func TestLoader_PrefersCache(t *testing.T) {
	src := &mockSource{products: catalogFixture()}
	c := &mockCache{}
	require.NoError(t, c.Set(context.Background(), []domain.Product{{ID: 42, Title: "Cached"}}))

	loader := NewLoader(src, c)
	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(42), products[0].ID)
	assert.Equal(t, 0, src.calls)
}

func TestLoader_FillsCacheOnMiss(t *testing.T) {
	src := &mockSource{products: catalogFixture()}
	c := &mockCache{}

	loader := NewLoader(src, c)
	products, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 4)
	assert.Equal(t, 1, src.calls)

	assert.Eventually(t, func() bool {
		got, err := c.Get(context.Background())
		return err == nil && len(got) == 4
	}, testTimeout, testTick)
}

func TestListCategories(t *testing.T) {
	loader := NewLoader(&mockSource{products: catalogFixture()}, nil)
	h := NewListCategoriesHandler(loader)

	got := h.Handle(context.Background(), ListCategoriesQuery{})
	assert.Equal(t, []string{"men's clothing", "jewelery"}, got)
}

func TestListCategories_UpstreamFailure(t *testing.T) {
	loader := NewLoader(&mockSource{err: errors.New("timeout")}, nil)
	h := NewListCategoriesHandler(loader)

	assert.Empty(t, h.Handle(context.Background(), ListCategoriesQuery{}))
}

func TestGetProduct(t *testing.T) {
	h := NewGetProductHandler(&mockSource{products: catalogFixture()})

	product, err := h.Handle(context.Background(), GetProductQuery{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Silver Bracelet", product.Title)

	_, err = h.Handle(context.Background(), GetProductQuery{ID: 99})
	assert.Error(t, err)
}
