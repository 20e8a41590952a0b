package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
)

type mockRepository struct {
	mu      sync.Mutex
	items   []domain.LineItem
	loadErr error
	saveErr error
	saves   int
}

func (m *mockRepository) Load(context.Context) ([]domain.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items, nil
}

func (m *mockRepository) Save(_ context.Context, items []domain.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = items
	return nil
}

func (m *mockRepository) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func shirt() domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: 1, Title: "Linen Shirt", Price: 10, Image: "http://img/1.jpg"}
}

func jacket() domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: 2, Title: "Denim Jacket", Price: 25, Image: "http://img/2.jpg"}
}

func TestAddItem_NewAndIncrement(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	s.AddItem(ctx, shirt())
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.ItemCount)
	assert.Equal(t, 10.0, snap.Subtotal)

	s.AddItem(ctx, shirt())
	snap = s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 20.0, snap.Subtotal)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	s.AddItem(ctx, shirt())
	s.AddItem(ctx, jacket())
	s.AddItem(ctx, shirt())

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, int64(1), snap.Items[0].ID)
	assert.Equal(t, int64(2), snap.Items[1].ID)
}

func TestUpdateQuantity_AbsoluteSet(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})
	s.AddItem(ctx, shirt())

	s.UpdateQuantity(ctx, 1, 5)
	snap := s.Snapshot()
	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.Equal(t, 50.0, snap.Subtotal)
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	ctx := context.Background()

	removed := New(&mockRepository{})
	removed.AddItem(ctx, shirt())
	removed.AddItem(ctx, jacket())
	removed.RemoveItem(ctx, 1)

	zeroed := New(&mockRepository{})
	zeroed.AddItem(ctx, shirt())
	zeroed.AddItem(ctx, jacket())
	zeroed.UpdateQuantity(ctx, 1, 0)

	assert.Equal(t, removed.Snapshot(), zeroed.Snapshot())

	negative := New(&mockRepository{})
	negative.AddItem(ctx, shirt())
	negative.AddItem(ctx, jacket())
	negative.UpdateQuantity(ctx, 1, -3)

	assert.Equal(t, removed.Snapshot(), negative.Snapshot())
}

func TestMutations_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})
	s.AddItem(ctx, shirt())
	before := s.Snapshot()

	s.RemoveItem(ctx, 99)
	s.UpdateQuantity(ctx, 99, 7)

	assert.Equal(t, before, s.Snapshot())
}

func TestQuantityInvariant(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	s.AddItem(ctx, shirt())
	s.AddItem(ctx, jacket())
	s.AddItem(ctx, shirt())
	s.UpdateQuantity(ctx, 2, 3)
	s.UpdateQuantity(ctx, 1, 0)
	s.AddItem(ctx, shirt())

	seen := map[int64]bool{}
	for _, item := range s.Snapshot().Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.False(t, seen[item.ID], "duplicate line item id %d", item.ID)
		seen[item.ID] = true
	}
}

func TestShippingAndTotal(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})
	s.AddItem(ctx, domain.ProductSnapshot{ID: 3, Title: "Wool Sweater", Price: 25.00})

	snap := s.Snapshot()
	assert.InDelta(t, 25.00, snap.Subtotal, 1e-9)
	assert.InDelta(t, 4.99, snap.Shipping, 1e-9)
	assert.InDelta(t, 29.99, snap.Total, 1e-9)

	s.UpdateQuantity(ctx, 3, 3)
	snap = s.Snapshot()
	assert.InDelta(t, 75.00, snap.Subtotal, 1e-9)
	assert.Zero(t, snap.Shipping)
	assert.InDelta(t, 75.00, snap.Total, 1e-9)
}

func TestEmptyCartHasNoShipping(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	snap := s.Snapshot()
	assert.Zero(t, snap.Shipping)
	assert.Zero(t, snap.Total)

	s.AddItem(ctx, shirt())
	s.Clear(ctx)

	snap = s.Snapshot()
	assert.Zero(t, snap.Shipping)
	assert.Zero(t, snap.Total)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{}
	s := New(repo)
	s.AddItem(ctx, shirt())
	s.AddItem(ctx, jacket())

	s.Clear(ctx)

	snap := s.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Subtotal)
	assert.Zero(t, snap.ItemCount)
	assert.Empty(t, repo.items)
}

func TestRehydrate(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{items: []domain.LineItem{
		{ID: 1, Title: "Linen Shirt", Price: 10, Quantity: 2},
	}}

	s := New(repo)
	s.Rehydrate(ctx)

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 20.0, snap.Subtotal)
}

func TestRehydrate_MalformedDataFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{loadErr: errors.New("invalid character 'x'")}

	s := New(repo)
	assert.NotPanics(t, func() { s.Rehydrate(ctx) })
	assert.Empty(t, s.Snapshot().Items)
}

func TestEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{}
	s := New(repo)

	s.AddItem(ctx, shirt())
	s.UpdateQuantity(ctx, 1, 4)
	s.RemoveItem(ctx, 1)
	s.Clear(ctx)

	assert.Equal(t, 4, repo.saveCount())
}

func TestPersistFailureDoesNotLoseState(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{saveErr: errors.New("connection refused")}
	s := New(repo)

	s.AddItem(ctx, shirt())

	assert.Equal(t, 1, s.Snapshot().ItemCount)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.AddItem(ctx, shirt())
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ItemCount)

	unsubscribe()
	s.AddItem(ctx, shirt())
	assert.Len(t, got, 1)
}

func TestSubtotalRecomputedFromItems(t *testing.T) {
	ctx := context.Background()
	s := New(&mockRepository{})

	s.AddItem(ctx, shirt())
	s.AddItem(ctx, jacket())
	s.UpdateQuantity(ctx, 2, 2)
	s.AddItem(ctx, shirt())

	snap := s.Snapshot()
	assert.InDelta(t, domain.Subtotal(snap.Items), snap.Subtotal, 1e-9)
	assert.Equal(t, domain.ItemCount(snap.Items), snap.ItemCount)
}
