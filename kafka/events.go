package kafka

import "time"

// SearchPerformedEvent records a settled storefront search term
type SearchPerformedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Term      string    `json:"term"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductViewedEvent records a product detail view
type ProductViewedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartUpdatedEvent records a cart mutation and the resulting totals
type CartUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Action    string    `json:"action"`
	ProductID int64     `json:"product_id,omitempty"`
	ItemCount int       `json:"item_count"`
	Subtotal  float64   `json:"subtotal"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSearchPerformed = "search.performed"
	EventTypeProductViewed   = "product.viewed"
	EventTypeCartUpdated     = "cart.updated"
)

// Cart actions carried by CartUpdatedEvent
const (
	CartActionItemAdded       = "item_added"
	CartActionItemRemoved     = "item_removed"
	CartActionQuantityChanged = "quantity_changed"
	CartActionCleared         = "cleared"
)

// Kafka topics
const (
	TopicStorefrontEvents = "storefront-events"
)
