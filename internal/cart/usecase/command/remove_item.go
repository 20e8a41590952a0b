package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/kafka"
)

// RemoveItemCommand removes one line item from the cart
type RemoveItemCommand struct {
	ID int64
}

// RemoveItemHandler handles the remove item command
type RemoveItemHandler struct {
	store     *store.CartStore
	analytics Analytics
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(cartStore *store.CartStore, analytics Analytics) *RemoveItemHandler {
	return &RemoveItemHandler{store: cartStore, analytics: analytics}
}

// Handle executes the remove item command. An unknown id is a no-op.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (store.Snapshot, error) {
	if cmd.ID <= 0 {
		return store.Snapshot{}, fmt.Errorf("product id is required")
	}

	h.store.RemoveItem(ctx, cmd.ID)

	snap := h.store.Snapshot()
	trackCartUpdate(ctx, h.analytics, kafka.CartActionItemRemoved, cmd.ID, snap)
	return snap, nil
}
