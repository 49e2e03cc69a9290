package roles

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoReplaceOverwrites(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Replace(ctx, "user-1", []string{"A", "B"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := repo.Replace(ctx, "user-1", []string{"C"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	set, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(set.Roles) != 1 || set.Roles[0] != "C" {
		t.Fatalf("roles = %v, want replacement to win", set.Roles)
	}
}

func TestMemoryRepoGetUnknownUser(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoCopiesInput(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	input := []string{"A"}
	if err := repo.Replace(ctx, "user-1", input); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	input[0] = "mutated"

	set, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.Roles[0] != "A" {
		t.Fatalf("stored roles aliased caller slice: %v", set.Roles)
	}
}
