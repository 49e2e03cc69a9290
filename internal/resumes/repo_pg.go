package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, storage_key, mime_type, size_bytes, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.FileName,
		rec.StorageKey,
		rec.MimeType,
		rec.SizeBytes,
		rec.UploadedAt,
	)
	return err
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, uploaded_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userId, resumeID))
}

// GetCurrentByUser returns the latest resume for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userId string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, uploaded_at
FROM resumes
WHERE user_id = $1
ORDER BY uploaded_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userId))
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, uploaded_at
FROM resumes
WHERE user_id = $1
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var rec Resume
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FileName,
			&rec.StorageKey,
			&rec.MimeType,
			&rec.SizeBytes,
			&rec.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a resume record. Absent rows are not an error.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, userId, resumeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Resume, error) {
	var rec Resume
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FileName,
		&rec.StorageKey,
		&rec.MimeType,
		&rec.SizeBytes,
		&rec.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
