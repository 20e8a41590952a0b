// Package store owns the in-memory cart state. Every successful mutation is
// persisted through the repository and announced to subscribers; both are
// best-effort and never fail the mutation itself.
package store

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Snapshot is the derived cart view handed to readers and subscribers
type Snapshot struct {
	Items     []domain.LineItem `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	Shipping  float64           `json:"shipping"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

// CartStore holds the cart line items in insertion order
type CartStore struct {
	mu    sync.RWMutex
	items []domain.LineItem
	repo  domain.Repository

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// New creates an empty cart store persisting through repo
func New(repo domain.Repository) *CartStore {
	return &CartStore{
		repo: repo,
		subs: make(map[int]func(Snapshot)),
	}
}

// Rehydrate loads the persisted cart. Malformed persisted data falls back to
// the empty cart; the error never reaches the caller.
func (s *CartStore) Rehydrate(ctx context.Context) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Discarding malformed persisted cart")
		items = nil
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// AddItem inserts the product with quantity 1, or increments the quantity of
// the existing line item with the same id
func (s *CartStore) AddItem(ctx context.Context, product domain.ProductSnapshot) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, domain.LineItem{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// RemoveItem deletes the line item with the given id; unknown ids are a no-op
func (s *CartStore) RemoveItem(ctx context.Context, id int64) {
	s.mu.Lock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// UpdateQuantity sets the line item's quantity to quantity. A quantity of
// zero or less removes the item. Unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(ctx context.Context, id int64, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// Clear empties the cart
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// Snapshot returns the current cart with its derived totals
func (s *CartStore) Snapshot() Snapshot {
	s.mu.RLock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	subtotal := domain.Subtotal(items)
	// No shipping line on an empty order.
	var shipping float64
	if len(items) > 0 {
		shipping = domain.Shipping(subtotal)
	}
	return Snapshot{
		Items:     items,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal + shipping,
		ItemCount: domain.ItemCount(items),
	}
}

// Subscribe registers a listener invoked synchronously after every mutation.
// The returned function unregisters it.
func (s *CartStore) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *CartStore) persist(ctx context.Context) {
	s.mu.RLock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	if err := s.repo.Save(ctx, items); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to persist cart")
	}
}

func (s *CartStore) notify() {
	snapshot := s.Snapshot()

	s.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
