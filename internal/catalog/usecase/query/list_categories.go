package query

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// ListCategoriesQuery represents the query for the distinct category list
type ListCategoriesQuery struct{}

// ListCategoriesHandler handles the list categories query
type ListCategoriesHandler struct {
	loader *Loader
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(loader *Loader) *ListCategoriesHandler {
	return &ListCategoriesHandler{loader: loader}
}

// Handle executes the list categories query, degrading to an empty list when
// the catalog is unavailable
func (h *ListCategoriesHandler) Handle(ctx context.Context, _ ListCategoriesQuery) []string {
	products, err := h.loader.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Catalog unavailable, serving empty category list")
		return nil
	}
	return domain.Categories(products)
}
