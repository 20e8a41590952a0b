// Package store owns the in-memory favorite set. Mutations persist through
// the repository and notify subscribers best-effort.
package store

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/pkg/logger"
)

// FavoritesStore holds the set of favorited product ids. Insertion order is
// retained so the persisted form is deterministic.
type FavoritesStore struct {
	mu      sync.RWMutex
	ids     []int64
	members map[int64]struct{}
	repo    domain.Repository

	subMu  sync.Mutex
	subs   map[int]func([]int64)
	nextID int
}

// New creates an empty favorites store persisting through repo
func New(repo domain.Repository) *FavoritesStore {
	return &FavoritesStore{
		members: make(map[int64]struct{}),
		repo:    repo,
		subs:    make(map[int]func([]int64)),
	}
}

// Rehydrate loads the persisted favorite set. Malformed persisted data falls
// back to the empty set; the error never reaches the caller.
func (s *FavoritesStore) Rehydrate(ctx context.Context) {
	ids, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Discarding malformed persisted favorites")
		ids = nil
	}

	members := make(map[int64]struct{}, len(ids))
	deduped := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := members[id]; ok {
			continue
		}
		members[id] = struct{}{}
		deduped = append(deduped, id)
	}

	s.mu.Lock()
	s.ids = deduped
	s.members = members
	s.mu.Unlock()
}

// Toggle adds id to the set if absent, removes it if present, and reports
// the resulting membership
func (s *FavoritesStore) Toggle(ctx context.Context, id int64) bool {
	s.mu.Lock()
	_, present := s.members[id]
	if present {
		delete(s.members, id)
		for i, v := range s.ids {
			if v == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	} else {
		s.members[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return !present
}

// IsFavorite reports membership without side effects
func (s *FavoritesStore) IsFavorite(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[id]
	return ok
}

// IDs returns the favorited product ids
func (s *FavoritesStore) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Clear empties the favorite set
func (s *FavoritesStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.ids = nil
	s.members = make(map[int64]struct{})
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// Subscribe registers a listener invoked synchronously after every mutation.
// The returned function unregisters it.
func (s *FavoritesStore) Subscribe(fn func([]int64)) func() {
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

func (s *FavoritesStore) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.IDs()); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to persist favorites")
	}
}

func (s *FavoritesStore) notify() {
	ids := s.IDs()

	s.subMu.Lock()
	subs := make([]func([]int64), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(ids)
	}
}
