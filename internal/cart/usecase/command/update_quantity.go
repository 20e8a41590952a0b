package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/kafka"
)

// UpdateQuantityCommand sets a line item's quantity to an absolute value.
// Zero or negative removes the item.
type UpdateQuantityCommand struct {
	ID       int64
	Quantity int
}

// UpdateQuantityHandler handles the update quantity command
type UpdateQuantityHandler struct {
	store     *store.CartStore
	analytics Analytics
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(cartStore *store.CartStore, analytics Analytics) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{store: cartStore, analytics: analytics}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (store.Snapshot, error) {
	if cmd.ID <= 0 {
		return store.Snapshot{}, fmt.Errorf("product id is required")
	}

	h.store.UpdateQuantity(ctx, cmd.ID, cmd.Quantity)

	snap := h.store.Snapshot()
	action := kafka.CartActionQuantityChanged
	if cmd.Quantity <= 0 {
		action = kafka.CartActionItemRemoved
	}
	trackCartUpdate(ctx, h.analytics, action, cmd.ID, snap)
	return snap, nil
}
