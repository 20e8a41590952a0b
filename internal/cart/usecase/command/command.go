package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/store"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// Analytics publishes cart analytics events. A nil Analytics disables
// publishing.
type Analytics interface {
	PublishCartUpdated(ctx context.Context, event kafka.CartUpdatedEvent) error
}

// trackCartUpdate publishes a cart mutation event best-effort
func trackCartUpdate(ctx context.Context, analytics Analytics, action string, productID int64, snap store.Snapshot) {
	if analytics == nil {
		return
	}

	err := analytics.PublishCartUpdated(ctx, kafka.CartUpdatedEvent{
		Action:    action,
		ProductID: productID,
		ItemCount: snap.ItemCount,
		Subtotal:  snap.Subtotal,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Str("action", action).Msg("Failed to publish cart event")
	}
}
