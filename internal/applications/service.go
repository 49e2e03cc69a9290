package applications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UpdatePatch carries the optional fields of a PATCH request. Nil means
// leave the field unchanged.
type UpdatePatch struct {
	JobTitle *string
	Company  *string
	Location *string
	JobURL   *string
	Notes    *string
	Status   *string
}

// Service implements the application tracker on top of a Repo.
type Service struct {
	Repo Repo
}

// Create adds a tracked application. Status defaults to Saved when empty.
func (s *Service) Create(ctx context.Context, userID, jobTitle, company, location, jobURL, notes, status string) (Application, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	company = strings.TrimSpace(company)
	if jobTitle == "" || company == "" {
		return Application{}, fmt.Errorf("%w: jobTitle and company are required", ErrInvalidInput)
	}

	st := StatusSaved
	if strings.TrimSpace(status) != "" {
		parsed, err := ParseStatus(status)
		if err != nil {
			return Application{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		st = parsed
	}

	now := time.Now().UTC()
	app := Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobTitle:  jobTitle,
		Company:   company,
		Location:  strings.TrimSpace(location),
		JobURL:    strings.TrimSpace(jobURL),
		Notes:     notes,
		Status:    st,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// List returns the user's applications, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Application, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Update applies a patch to an existing application. Any status transition
// between known columns is allowed.
func (s *Service) Update(ctx context.Context, userID, id string, patch UpdatePatch) (Application, error) {
	app, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Application{}, err
	}

	if patch.JobTitle != nil {
		if strings.TrimSpace(*patch.JobTitle) == "" {
			return Application{}, fmt.Errorf("%w: jobTitle cannot be empty", ErrInvalidInput)
		}
		app.JobTitle = strings.TrimSpace(*patch.JobTitle)
	}
	if patch.Company != nil {
		if strings.TrimSpace(*patch.Company) == "" {
			return Application{}, fmt.Errorf("%w: company cannot be empty", ErrInvalidInput)
		}
		app.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Location != nil {
		app.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.JobURL != nil {
		app.JobURL = strings.TrimSpace(*patch.JobURL)
	}
	if patch.Notes != nil {
		app.Notes = *patch.Notes
	}
	if patch.Status != nil {
		st, err := ParseStatus(*patch.Status)
		if err != nil {
			return Application{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		app.Status = st
	}

	app.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Delete removes an application.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
