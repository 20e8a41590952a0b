package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/kafka"
)

// ClearCartCommand empties the cart
type ClearCartCommand struct{}

// ClearCartHandler handles the clear cart command
type ClearCartHandler struct {
	store     *store.CartStore
	analytics Analytics
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(cartStore *store.CartStore, analytics Analytics) *ClearCartHandler {
	return &ClearCartHandler{store: cartStore, analytics: analytics}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, _ ClearCartCommand) store.Snapshot {
	h.store.Clear(ctx)

	snap := h.store.Snapshot()
	trackCartUpdate(ctx, h.analytics, kafka.CartActionCleared, 0, snap)
	return snap
}
