package query

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultPageSize matches the storefront grid page size
const DefaultPageSize = 12

// ListProductsQuery represents one catalog browse request
type ListProductsQuery struct {
	Search        string
	Category      string
	MinPrice      float64
	MaxPrice      float64
	Sort          string
	FavoritesOnly bool
	Page          int
	PageSize      int
}

// ListProductsResult is the derived, ordered, paginated catalog view
type ListProductsResult struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	HasMore  bool             `json:"has_more"`
}

// ListProductsHandler handles the list products query
type ListProductsHandler struct {
	loader    *Loader
	favorites domain.FavoriteChecker
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(loader *Loader, favorites domain.FavoriteChecker) *ListProductsHandler {
	return &ListProductsHandler{loader: loader, favorites: favorites}
}

// Handle executes the list products query. An unreachable or malformed
// upstream catalog degrades to an empty result rather than an error.
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) *ListProductsResult {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}

	products, err := h.loader.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Catalog unavailable, serving empty product list")
		products = nil
	}

	matched := domain.Filter(products, domain.Criteria{
		Search:        q.Search,
		Category:      q.Category,
		MinPrice:      q.MinPrice,
		MaxPrice:      q.MaxPrice,
		Sort:          q.Sort,
		FavoritesOnly: q.FavoritesOnly,
	}, h.favorites)

	page, hasMore := domain.Paginate(matched, q.PageSize, q.Page)

	return &ListProductsResult{
		Products: page,
		Total:    len(matched),
		Page:     q.Page,
		PageSize: q.PageSize,
		HasMore:  hasMore,
	}
}
