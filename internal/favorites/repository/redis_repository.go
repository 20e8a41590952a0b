package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const favoritesKey = "storefront:favorites"

// RedisFavoritesRepository persists the favorite ids as one JSON-encoded
// array under a fixed key
type RedisFavoritesRepository struct {
	client *redis.Client
}

// NewRedisFavoritesRepository creates a new Redis-backed favorites repository
func NewRedisFavoritesRepository(client *redis.Client) *RedisFavoritesRepository {
	return &RedisFavoritesRepository{client: client}
}

// Load reads the persisted favorite set. A missing key yields an empty set.
func (r *RedisFavoritesRepository) Load(ctx context.Context) ([]int64, error) {
	data, err := r.client.Get(ctx, favoritesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return Parse(data)
}

// Save rewrites the persisted favorites entry
func (r *RedisFavoritesRepository) Save(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal favorites failed: %w", err)
	}

	if err := r.client.Set(ctx, favoritesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Parse decodes a persisted favorites payload. Callers substitute the empty
// set on error.
func Parse(data []byte) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("malformed favorites data: %w", err)
	}
	return ids, nil
}
