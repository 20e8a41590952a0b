package command

import (
	"context"

	"github.com/tair/storefront/internal/favorites/store"
)

// ClearFavoritesCommand empties the favorite set
type ClearFavoritesCommand struct{}

// ClearFavoritesHandler handles the clear favorites command
type ClearFavoritesHandler struct {
	store *store.FavoritesStore
}

// NewClearFavoritesHandler creates a new clear favorites handler
func NewClearFavoritesHandler(favStore *store.FavoritesStore) *ClearFavoritesHandler {
	return &ClearFavoritesHandler{store: favStore}
}

// Handle executes the clear favorites command
func (h *ClearFavoritesHandler) Handle(ctx context.Context, _ ClearFavoritesCommand) {
	h.store.Clear(ctx)
}
