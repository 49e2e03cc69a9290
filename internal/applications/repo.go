package applications

import "context"

// Repo abstracts application persistence.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, userID, id string) (Application, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	Update(ctx context.Context, app Application) error
	Delete(ctx context.Context, userID, id string) error
}
