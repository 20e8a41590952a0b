//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/favorites/repository"
	"github.com/tair/storefront/internal/favorites/store"
)

// InitializeFavoritesStore initializes the favorites store backed by Redis
func InitializeFavoritesStore(client *redis.Client) *store.FavoritesStore {
	wire.Build(
		repository.NewRedisFavoritesRepository,
		wire.Bind(new(domain.Repository), new(*repository.RedisFavoritesRepository)),
		store.New,
	)
	return nil
}
