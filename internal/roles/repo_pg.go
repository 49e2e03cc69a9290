package roles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. The role list is stored as a JSONB
// payload in a single row keyed by user, so the upsert is atomic.
type PGRepo struct {
	DB *sql.DB
}

// Replace upserts the user's suggested roles.
func (r *PGRepo) Replace(ctx context.Context, userId string, roles []string) error {
	if roles == nil {
		roles = []string{}
	}
	payload, err := json.Marshal(roles)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO suggested_roles (user_id, roles, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET roles = EXCLUDED.roles, updated_at = EXCLUDED.updated_at`

	_, err = r.DB.ExecContext(ctx, query, userId, string(payload), time.Now().UTC())
	return err
}

// Get returns the user's latest suggested-role set.
func (r *PGRepo) Get(ctx context.Context, userId string) (SuggestionSet, error) {
	const query = `
SELECT user_id, roles, updated_at
FROM suggested_roles
WHERE user_id = $1`

	var set SuggestionSet
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, userId).Scan(&set.UserID, &payload, &set.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SuggestionSet{}, ErrNotFound
		}
		return SuggestionSet{}, err
	}
	if err := json.Unmarshal(payload, &set.Roles); err != nil {
		return SuggestionSet{}, err
	}
	return set, nil
}

var _ Repo = (*PGRepo)(nil)
