package domain

import "context"

// Rating holds the aggregate review score a catalog product carries
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents one catalog entry as served by the upstream product API
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Source fetches products from the upstream catalog
type Source interface {
	FetchAll(ctx context.Context) ([]Product, error)
	FetchByID(ctx context.Context, id int64) (*Product, error)
}

// Cache stores a snapshot of the full catalog between upstream fetches
type Cache interface {
	Get(ctx context.Context) ([]Product, error)
	Set(ctx context.Context, products []Product) error
}

// Categories derives the distinct non-empty category values across products.
// Order follows first appearance.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
