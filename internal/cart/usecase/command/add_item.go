package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/kafka"
)

// AddItemCommand carries the product snapshot to add to the cart
type AddItemCommand struct {
	ID    int64
	Title string
	Price float64
	Image string
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	store     *store.CartStore
	analytics Analytics
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cartStore *store.CartStore, analytics Analytics) *AddItemHandler {
	return &AddItemHandler{store: cartStore, analytics: analytics}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (store.Snapshot, error) {
	if cmd.ID <= 0 {
		return store.Snapshot{}, fmt.Errorf("product id is required")
	}
	if cmd.Price < 0 {
		return store.Snapshot{}, fmt.Errorf("price cannot be negative")
	}

	h.store.AddItem(ctx, domain.ProductSnapshot{
		ID:    cmd.ID,
		Title: cmd.Title,
		Price: cmd.Price,
		Image: cmd.Image,
	})

	snap := h.store.Snapshot()
	trackCartUpdate(ctx, h.analytics, kafka.CartActionItemAdded, cmd.ID, snap)
	return snap, nil
}
