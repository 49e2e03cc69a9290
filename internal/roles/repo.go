package roles

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("no suggested roles")

// Repo persists the latest suggested-role set per user.
type Repo interface {
	// Replace upserts the user's role set, overwriting any prior one.
	// Last write wins; no history is kept.
	Replace(ctx context.Context, userId string, roles []string) error
	Get(ctx context.Context, userId string) (SuggestionSet, error)
}
