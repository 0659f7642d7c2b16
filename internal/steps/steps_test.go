package steps

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	records map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, id string) (string, bool, error) {
	data, ok := s.records[id]
	return data, ok, nil
}

func (s *fakeStore) Set(ctx context.Context, id string, data string) error {
	s.records[id] = data
	return nil
}

func fixedDay(s string) func() time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}

func loadCounter(t *testing.T, store Store, now func() time.Time) *Counter {
	t.Helper()
	c := NewCounter(store, nil, now)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return c
}

func TestAddAndCalories(t *testing.T) {
	ctx := context.Background()
	c := loadCounter(t, newFakeStore(), fixedDay("2024-05-01"))

	c.Add(ctx, 2500)
	if c.Steps() != 2500 {
		t.Fatalf("steps=%d, want 2500", c.Steps())
	}
	if c.Calories() != 100 {
		t.Fatalf("calories=%d, want 100 (2500 * 0.04)", c.Calories())
	}

	c.Add(ctx, 0)
	c.Add(ctx, -10)
	if c.Steps() != 2500 {
		t.Fatalf("steps=%d, want non-positive adds ignored", c.Steps())
	}
}

func TestCountPersistsWithinDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	now := fixedDay("2024-05-01")

	c := loadCounter(t, store, now)
	c.Add(ctx, 1200)

	c2 := loadCounter(t, store, now)
	if c2.Steps() != 1200 {
		t.Fatalf("reloaded steps=%d, want 1200", c2.Steps())
	}
}

func TestCountResetsOnNewDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	c := loadCounter(t, store, fixedDay("2024-05-01"))
	c.Add(ctx, 8000)

	c2 := loadCounter(t, store, fixedDay("2024-05-02"))
	if c2.Steps() != 0 {
		t.Fatalf("steps=%d, want 0 after date change", c2.Steps())
	}
}

func TestCheckInOncePerDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	c := loadCounter(t, store, fixedDay("2024-05-01"))
	if !c.CheckIn(ctx) {
		t.Fatalf("first check-in refused")
	}
	if c.Steps() != CheckInBonus {
		t.Fatalf("steps=%d, want %d after check-in", c.Steps(), CheckInBonus)
	}
	if c.CheckIn(ctx) {
		t.Fatalf("second check-in on the same day accepted")
	}
	if c.Steps() != CheckInBonus {
		t.Fatalf("steps=%d, want bonus applied once", c.Steps())
	}

	// The claim survives a reload within the same day.
	c2 := loadCounter(t, store, fixedDay("2024-05-01"))
	if c2.CheckIn(ctx) {
		t.Fatalf("check-in accepted again after reload")
	}

	// A new day opens a fresh claim.
	c3 := loadCounter(t, store, fixedDay("2024-05-02"))
	if !c3.CheckIn(ctx) {
		t.Fatalf("check-in refused on a new day")
	}
}

func TestResetZeroesCount(t *testing.T) {
	ctx := context.Background()
	c := loadCounter(t, newFakeStore(), fixedDay("2024-05-01"))

	c.Add(ctx, 4000)
	c.Reset(ctx)
	if c.Steps() != 0 || c.Calories() != 0 {
		t.Fatalf("steps=%d calories=%d, want zero after reset", c.Steps(), c.Calories())
	}
}

func TestMalformedRecordYieldsZero(t *testing.T) {
	store := newFakeStore()
	store.records["steps"] = "{broken"

	c := loadCounter(t, store, fixedDay("2024-05-01"))
	if c.Steps() != 0 {
		t.Fatalf("steps=%d, want 0 for malformed record", c.Steps())
	}
}
