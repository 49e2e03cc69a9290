package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used in dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create stores a resume record for a user.
func (r *MemoryRepo) Create(ctx context.Context, rec Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = append(r.data[rec.UserID], rec)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.data[userId] {
		if rec.ID == resumeID {
			return rec, nil
		}
	}
	return Resume{}, ErrNotFound
}

// GetCurrentByUser returns the most recently uploaded resume for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userId string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.data[userId]
	if len(recs) == 0 {
		return Resume{}, ErrNotFound
	}
	latest := recs[0]
	for _, rec := range recs[1:] {
		if rec.UploadedAt.After(latest.UploadedAt) {
			latest = rec
		}
	}
	return latest, nil
}

// ListByUser returns resumes for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	recs := append([]Resume(nil), r.data[userId]...)
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].UploadedAt.After(recs[j].UploadedAt)
	})
	return recs, nil
}

// Delete removes a resume record; absent records are ignored.
func (r *MemoryRepo) Delete(ctx context.Context, userId, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.data[userId]
	for i, rec := range recs {
		if rec.ID == resumeID {
			r.data[userId] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
