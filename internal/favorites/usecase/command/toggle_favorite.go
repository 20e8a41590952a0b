package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorites/store"
)

// ToggleFavoriteCommand flips a product's favorite membership
type ToggleFavoriteCommand struct {
	ID int64
}

// ToggleFavoriteResult reports the membership after the toggle
type ToggleFavoriteResult struct {
	ID        int64   `json:"id"`
	Favorited bool    `json:"favorited"`
	Favorites []int64 `json:"favorites"`
}

// ToggleFavoriteHandler handles the toggle favorite command
type ToggleFavoriteHandler struct {
	store *store.FavoritesStore
}

// NewToggleFavoriteHandler creates a new toggle favorite handler
func NewToggleFavoriteHandler(favStore *store.FavoritesStore) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{store: favStore}
}

// Handle executes the toggle favorite command
func (h *ToggleFavoriteHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (*ToggleFavoriteResult, error) {
	if cmd.ID <= 0 {
		return nil, fmt.Errorf("product id is required")
	}

	favorited := h.store.Toggle(ctx, cmd.ID)
	return &ToggleFavoriteResult{
		ID:        cmd.ID,
		Favorited: favorited,
		Favorites: h.store.IDs(),
	}, nil
}
