package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) (*SnapshotRepo, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
	}
	return NewSnapshotRepo(db), cleanup
}

func TestGetMissingRecord(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	data, ok, err := repo.Get(ctx, KeyHabits)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || data != "" {
		t.Fatalf("got ok=%v data=%q, want absent", ok, data)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	want := `{"completed":{"Monday-Breakfast":true},"points":10}`
	if err := repo.Set(ctx, KeyDiet, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := repo.Get(ctx, KeyDiet)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("got ok=%v data=%q, want %q", ok, got, want)
	}
}

func TestSetOverwritesExistingRecord(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	if err := repo.Set(ctx, KeyWorkout, `{"points":10}`); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := repo.Set(ctx, KeyWorkout, `{"points":20}`); err != nil {
		t.Fatalf("second set: %v", err)
	}

	got, ok, err := repo.Get(ctx, KeyWorkout)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != `{"points":20}` {
		t.Fatalf("got ok=%v data=%q, want upserted record", ok, got)
	}
}

func TestRecordsAreKeyedPerTracker(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	if err := repo.Set(ctx, KeyHabits, "habit-data"); err != nil {
		t.Fatalf("set habits: %v", err)
	}
	if err := repo.Set(ctx, KeySteps, "step-data"); err != nil {
		t.Fatalf("set steps: %v", err)
	}

	got, _, err := repo.Get(ctx, KeyHabits)
	if err != nil {
		t.Fatalf("get habits: %v", err)
	}
	if got != "habit-data" {
		t.Fatalf("habits record=%q, want habit-data", got)
	}
}
