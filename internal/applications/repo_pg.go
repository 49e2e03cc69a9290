package applications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new application.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, user_id, job_title, company, location, job_url, notes, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.UserID,
		app.JobTitle,
		app.Company,
		app.Location,
		app.JobURL,
		app.Notes,
		string(app.Status),
		app.CreatedAt,
		app.UpdatedAt,
	)
	return err
}

// GetByID fetches an application by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Application, error) {
	const query = `
SELECT id, user_id, job_title, company, location, job_url, notes, status, created_at, updated_at
FROM applications
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, id))
}

// ListByUser lists applications ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	const query = `
SELECT id, user_id, job_title, company, location, job_url, notes, status, created_at, updated_at
FROM applications
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		app, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of an application.
func (r *PGRepo) Update(ctx context.Context, app Application) error {
	const query = `
UPDATE applications
SET job_title = $3, company = $4, location = $5, job_url = $6, notes = $7, status = $8, updated_at = $9
WHERE user_id = $1 AND id = $2`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		app.UserID,
		app.ID,
		app.JobTitle,
		app.Company,
		app.Location,
		app.JobURL,
		app.Notes,
		string(app.Status),
		app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM applications WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Application, error) {
	var app Application
	var status string
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.JobTitle,
		&app.Company,
		&app.Location,
		&app.JobURL,
		&app.Notes,
		&status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	app.Status = Status(status)
	return app, nil
}

var _ Repo = (*PGRepo)(nil)
