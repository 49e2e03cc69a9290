package roles

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]SuggestionSet
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]SuggestionSet)}
}

// Replace overwrites the user's role set.
func (r *MemoryRepo) Replace(ctx context.Context, userId string, roles []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userId] = SuggestionSet{
		UserID:    userId,
		Roles:     append([]string(nil), roles...),
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// Get returns the user's latest role set.
func (r *MemoryRepo) Get(ctx context.Context, userId string) (SuggestionSet, error) {
	if err := ctx.Err(); err != nil {
		return SuggestionSet{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.data[userId]
	if !ok {
		return SuggestionSet{}, ErrNotFound
	}
	return set, nil
}

var _ Repo = (*MemoryRepo)(nil)
