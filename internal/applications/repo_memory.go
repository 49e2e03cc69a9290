package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]map[string]Application
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{apps: make(map[string]map[string]Application)}
}

func (r *MemoryRepo) Create(_ context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.apps[app.UserID] == nil {
		r.apps[app.UserID] = make(map[string]Application)
	}
	r.apps[app.UserID][app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, userID, id string) (Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[userID][id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) ListByUser(_ context.Context, userID string) ([]Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.apps[userID]))
	for _, app := range r.apps[userID] {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Update(_ context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.UserID][app.ID]; !ok {
		return ErrNotFound
	}
	r.apps[app.UserID][app.ID] = app
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[userID][id]; !ok {
		return ErrNotFound
	}
	delete(r.apps[userID], id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
