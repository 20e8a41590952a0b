//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/store"
)

// InitializeCartStore initializes the cart store backed by Redis with tracing
func InitializeCartStore(client *redis.Client) *store.CartStore {
	wire.Build(
		repository.NewRedisCartRepositoryWithTracing,
		wire.Bind(new(domain.Repository), new(*repository.RedisCartRepositoryWithTracing)),
		store.New,
	)
	return nil
}
