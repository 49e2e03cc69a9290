package applications

import (
	"context"
	"errors"
	"testing"
)

func TestCreateDefaultsToSaved(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	app, err := svc.Create(context.Background(), "user-1", "Backend Engineer", "Acme", "", "", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if app.Status != StatusSaved {
		t.Fatalf("status = %q, want Saved", app.Status)
	}
	if app.ID == "" || app.CreatedAt.IsZero() {
		t.Fatalf("incomplete application: %+v", app)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	if _, err := svc.Create(context.Background(), "user-1", "", "Acme", "", "", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", "Engineer", "Acme", "", "", "", "Archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status: err = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateStatusTransition(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	app, err := svc.Create(ctx, "user-1", "Backend Engineer", "Acme", "", "", "", "Saved")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Any transition between known columns is allowed, including backwards.
	for _, status := range []string{"Applied", "Interviewing", "Offer", "Saved", "Rejected"} {
		got, err := svc.Update(ctx, "user-1", app.ID, UpdatePatch{Status: &status})
		if err != nil {
			t.Fatalf("Update to %s: %v", status, err)
		}
		if string(got.Status) != status {
			t.Fatalf("status = %q, want %q", got.Status, status)
		}
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	app, err := svc.Create(ctx, "user-1", "Backend Engineer", "Acme", "Berlin", "", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	notes := "phone screen Friday"
	got, err := svc.Update(ctx, "user-1", app.ID, UpdatePatch{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Notes != notes {
		t.Fatalf("notes = %q", got.Notes)
	}
	if got.JobTitle != "Backend Engineer" || got.Location != "Berlin" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateUnknownApplication(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	status := "Applied"

	if _, err := svc.Update(context.Background(), "user-1", "nope", UpdatePatch{Status: &status}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteScopedToUser(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	app, err := svc.Create(ctx, "user-1", "Backend Engineer", "Acme", "", "", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "user-2", app.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "user-1", app.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
