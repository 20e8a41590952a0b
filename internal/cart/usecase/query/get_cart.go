package query

import (
	"github.com/tair/storefront/internal/cart/store"
)

// GetCartQuery represents the query for the current cart view
type GetCartQuery struct{}

// GetCartHandler handles the get cart query
type GetCartHandler struct {
	store *store.CartStore
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cartStore *store.CartStore) *GetCartHandler {
	return &GetCartHandler{store: cartStore}
}

// Handle returns the cart with its derived subtotal, shipping and total
func (h *GetCartHandler) Handle(_ GetCartQuery) store.Snapshot {
	return h.store.Snapshot()
}
