package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query for one product's details
type GetProductQuery struct {
	ID int64
}

// GetProductHandler handles the get product query
type GetProductHandler struct {
	source domain.Source
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(source domain.Source) *GetProductHandler {
	return &GetProductHandler{source: source}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	product, err := h.source.FetchByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", q.ID, err)
	}
	return product, nil
}
