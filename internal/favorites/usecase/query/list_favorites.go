package query

import (
	"github.com/tair/storefront/internal/favorites/store"
)

// ListFavoritesQuery represents the query for the favorite product ids
type ListFavoritesQuery struct{}

// ListFavoritesHandler handles the list favorites query
type ListFavoritesHandler struct {
	store *store.FavoritesStore
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(favStore *store.FavoritesStore) *ListFavoritesHandler {
	return &ListFavoritesHandler{store: favStore}
}

// Handle returns the favorited product ids
func (h *ListFavoritesHandler) Handle(_ ListFavoritesQuery) []int64 {
	return h.store.IDs()
}
