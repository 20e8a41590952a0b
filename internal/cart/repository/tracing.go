package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// RedisCartRepositoryWithTracing wraps RedisCartRepository with tracing
type RedisCartRepositoryWithTracing struct {
	*RedisCartRepository
}

// NewRedisCartRepositoryWithTracing creates a new repository with tracing
func NewRedisCartRepositoryWithTracing(client *redis.Client) *RedisCartRepositoryWithTracing {
	return &RedisCartRepositoryWithTracing{
		RedisCartRepository: NewRedisCartRepository(client),
	}
}

// Load with tracing
func (r *RedisCartRepositoryWithTracing) Load(ctx context.Context) ([]domain.LineItem, error) {
	ctx, span := tracer.Start(ctx, "repository.Load")
	defer span.End()

	items, err := r.RedisCartRepository.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.items", len(items)))
	return items, nil
}

// Save with tracing
func (r *RedisCartRepositoryWithTracing) Save(ctx context.Context, items []domain.LineItem) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(attribute.Int("cart.items", len(items))),
	)
	defer span.End()

	if err := r.RedisCartRepository.Save(ctx, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
