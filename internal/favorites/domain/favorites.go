package domain

import "context"

// Repository persists the favorite product ids as one key-value entry
type Repository interface {
	// Load reads the persisted favorite set. A missing entry yields an
	// empty set and no error; an undecodable entry yields a non-nil error.
	Load(ctx context.Context) ([]int64, error)
	Save(ctx context.Context, ids []int64) error
}
