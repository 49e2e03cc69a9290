package resumes

import "context"

// Repo defines persistence operations for resume records.
type Repo interface {
	Create(ctx context.Context, rec Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	// GetCurrentByUser returns the most recently uploaded resume for a user.
	GetCurrentByUser(ctx context.Context, userId string) (Resume, error)
	ListByUser(ctx context.Context, userId string) ([]Resume, error)
	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, userId, resumeID string) error
}
