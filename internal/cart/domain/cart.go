package domain

import "context"

// Shipping pricing: orders above the threshold ship free
const (
	FreeShippingThreshold = 50.00
	ShippingFee           = 4.99
)

// LineItem is one cart entry: a denormalized product snapshot taken at
// add-time plus the selected quantity. Quantity is always >= 1; reducing it
// to zero removes the entry instead.
type LineItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// ProductSnapshot carries the product fields copied into a line item when a
// product is added to the cart
type ProductSnapshot struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Subtotal sums price times quantity over items
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// ItemCount sums quantities over items
func ItemCount(items []LineItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Shipping returns the shipping fee for a given subtotal
func Shipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// Repository persists the cart line items as one key-value entry
type Repository interface {
	// Load reads the persisted cart. A missing entry yields an empty cart
	// and no error; an undecodable entry yields a non-nil error.
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}
