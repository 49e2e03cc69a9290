package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/telemetry"
)

// Service contains business logic for resume documents.
type Service struct {
	Store   object.ObjectStore
	Repo    Repo
	Locator *Locator
}

// Upload validates, stores, and records a resume.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Resume, error) {
	if userId == "" {
		return Resume{}, errors.New("user id required")
	}
	if fileName == "" {
		return Resume{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}
	if err := checkPDF(data); err != nil {
		return Resume{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, err
	}
	if mimeType != mimePDF {
		mimeType = mimePDF
	}

	rec := Resume{
		ID:         uuid.NewString(),
		UserID:     userId,
		FileName:   fileName,
		StorageKey: storageKey,
		MimeType:   mimeType,
		SizeBytes:  size,
		UploadedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Resume{}, err
	}

	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id":   rec.ID,
		"user_id":     userId,
		"storage_key": storageKey,
		"size_bytes":  size,
	})

	return rec, nil
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userId string) ([]Resume, error) {
	if userId == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userId)
}

// Delete removes a resume's bytes and its record. The metadata delete always
// proceeds, even when the bytes were already gone.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	if userId == "" || resumeID == "" {
		return ErrInvalidInput
	}

	rec, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return err
	}

	key, err := s.Locator.Resolve(ctx, rec)
	switch {
	case err == nil:
		if err := s.Store.Delete(ctx, key); err != nil {
			telemetry.Error("resume.delete_bytes_failed", map[string]any{
				"resume_id":   resumeID,
				"storage_key": key,
				"error":       err.Error(),
			})
		}
	case errors.Is(err, ErrFileMissing):
		// Nothing on disk; the record alone is removed.
	default:
		return err
	}

	return s.Repo.Delete(ctx, userId, resumeID)
}
