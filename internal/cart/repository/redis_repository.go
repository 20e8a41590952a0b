package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/cart/domain"
)

const cartKey = "storefront:cart"

// RedisCartRepository persists the cart as one JSON-encoded array under a
// fixed key
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository creates a new Redis-backed cart repository
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

// Load reads the persisted cart. A missing key yields an empty cart.
func (r *RedisCartRepository) Load(ctx context.Context) ([]domain.LineItem, error) {
	data, err := r.client.Get(ctx, cartKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return Parse(data)
}

// Save rewrites the persisted cart entry
func (r *RedisCartRepository) Save(ctx context.Context, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := r.client.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Parse decodes a persisted cart payload. Callers substitute the empty cart
// on error; Parse itself never masks a malformed payload.
func Parse(data []byte) ([]domain.LineItem, error) {
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("malformed cart data: %w", err)
	}

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("malformed cart data: item %d has quantity %d", item.ID, item.Quantity)
		}
	}

	return items, nil
}
