package resumes

import (
	"bytes"
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"careerpilot-backend/internal/shared/storage/object/local"
)

func seedObject(t *testing.T, dir, userID string) (key string) {
	t.Helper()
	store := local.New(dir)
	key, _, _, err := store.Save(context.Background(), userID, "resume.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("save object: %v", err)
	}
	return key
}

func TestResolveStoredKey(t *testing.T) {
	dir := t.TempDir()
	key := seedObject(t, dir, "user-1")
	locator := &Locator{Store: local.New(dir)}

	rec := Resume{ID: "r1", UserID: "user-1", StorageKey: key, UploadedAt: time.Now()}
	got, err := locator.Resolve(context.Background(), rec)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != key {
		t.Fatalf("resolved key = %q, want stored %q", got, key)
	}
}

func TestResolveRecoversFromDriftedPrefix(t *testing.T) {
	dir := t.TempDir()
	key := seedObject(t, dir, "user-1")
	locator := &Locator{Store: local.New(dir)}

	rec := Resume{
		ID:         "r1",
		UserID:     "user-1",
		StorageKey: "old-root/" + path.Base(key),
	}
	got, err := locator.Resolve(context.Background(), rec)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != key {
		t.Fatalf("recovered key = %q, want canonical %q", got, key)
	}
}

func TestResolveBothMissing(t *testing.T) {
	locator := &Locator{Store: local.New(t.TempDir())}

	rec := Resume{ID: "r1", UserID: "user-1", StorageKey: "gone/abc_resume.pdf"}
	_, err := locator.Resolve(context.Background(), rec)
	if !errors.Is(err, ErrFileMissing) {
		t.Fatalf("err = %v, want ErrFileMissing", err)
	}
}

func TestResolveEmptyKey(t *testing.T) {
	locator := &Locator{Store: local.New(t.TempDir())}

	rec := Resume{ID: "r1", UserID: "user-1", StorageKey: ""}
	_, err := locator.Resolve(context.Background(), rec)
	if !errors.Is(err, ErrFileMissing) {
		t.Fatalf("err = %v, want ErrFileMissing", err)
	}
}

func TestResolveUnconfigured(t *testing.T) {
	var locator *Locator
	if _, err := locator.Resolve(context.Background(), Resume{ID: "r1"}); err == nil {
		t.Fatal("nil locator must error")
	}
}
