package query

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/tair/storefront/internal/catalog/cache"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Loader resolves the current catalog snapshot, preferring the cache and
// collapsing concurrent upstream fetches into one request.
type Loader struct {
	source domain.Source
	cache  domain.Cache
	sfg    singleflight.Group // prevents fetch stampede on cold cache
}

// NewLoader creates a catalog loader. cache may be nil, in which case every
// load goes upstream.
func NewLoader(source domain.Source, c domain.Cache) *Loader {
	return &Loader{source: source, cache: c}
}

// Load returns the full product list
func (l *Loader) Load(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := l.sfg.Do("catalog", func() (interface{}, error) {
		if l.cache != nil {
			products, err := l.cache.Get(ctx)
			if err == nil {
				return products, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				logger.Warn(ctx).Err(err).Msg("Catalog cache read failed")
			}
		}

		products, err := l.source.FetchAll(ctx)
		if err != nil {
			return nil, err
		}

		if l.cache != nil {
			go func() {
				if err := l.cache.Set(context.Background(), products); err != nil {
					logger.Logger.Warn().Err(err).Msg("Catalog cache write failed")
				}
			}()
		}

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}
