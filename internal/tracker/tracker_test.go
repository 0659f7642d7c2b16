package tracker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	records map[string]string
	failSet bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, id string) (string, bool, error) {
	data, ok := s.records[id]
	return data, ok, nil
}

func (s *fakeStore) Set(ctx context.Context, id string, data string) error {
	if s.failSet {
		return errors.New("disk full")
	}
	s.records[id] = data
	return nil
}

func fixedDate(s string) func() time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return d }
}

func loadTracker(t *testing.T, cfg Config, store Store) *Tracker {
	t.Helper()
	tr := New(cfg, store, nil)
	if err := tr.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return tr
}

func TestToggleInvolution(t *testing.T) {
	ctx := context.Background()
	tr := loadTracker(t, Config{ID: "workout", Reward: 10, Penalty: 10}, newFakeStore())

	on, delta := tr.Toggle(ctx, "Monday-0")
	if !on || delta != 10 {
		t.Fatalf("first toggle: on=%v delta=%d, want true 10", on, delta)
	}
	on, delta = tr.Toggle(ctx, "Monday-0")
	if on || delta != -10 {
		t.Fatalf("second toggle: on=%v delta=%d, want false -10", on, delta)
	}
	if tr.Points() != 0 {
		t.Fatalf("points=%d, want 0 after symmetric cycle", tr.Points())
	}
	if tr.IsSet("Monday-0") {
		t.Fatalf("key still set after double toggle")
	}
}

func TestAsymmetricPenaltyLeavesNet(t *testing.T) {
	ctx := context.Background()
	tr := loadTracker(t, Config{ID: "diet", Reward: 10, Penalty: 5}, newFakeStore())

	tr.Toggle(ctx, "Monday-Breakfast")
	tr.Toggle(ctx, "Monday-Breakfast")
	if tr.Points() != 5 {
		t.Fatalf("points=%d, want 5 after check/uncheck with penalty 5", tr.Points())
	}
}

func TestToggleWeightedPerItemPoints(t *testing.T) {
	ctx := context.Background()
	tr := loadTracker(t, Config{ID: "habits"}, newFakeStore())

	_, delta := tr.ToggleWeighted(ctx, "2024-05-01-water", 15, 15)
	if delta != 15 {
		t.Fatalf("check delta=%d, want 15", delta)
	}
	_, delta = tr.ToggleWeighted(ctx, "2024-05-01-water", 15, 15)
	if delta != -15 {
		t.Fatalf("uncheck delta=%d, want -15", delta)
	}
	if tr.Points() != 0 {
		t.Fatalf("points=%d, want 0", tr.Points())
	}
}

func TestResetZeroesPointsKeepsStreak(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	now := fixedDate("2024-05-01")
	ids := []string{"water", "wakeup"}

	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	for _, id := range ids {
		tr.ToggleWeighted(ctx, DateKey(now(), id), 10, 10)
	}

	tr2 := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: fixedDate("2024-05-02")}, store)
	if tr2.Streak() != 1 {
		t.Fatalf("streak=%d, want 1 before reset", tr2.Streak())
	}

	tr2.Reset(ctx)
	if tr2.Points() != 0 {
		t.Fatalf("points=%d, want 0 after reset", tr2.Points())
	}
	if tr2.Streak() != 1 {
		t.Fatalf("streak=%d, want 1 preserved across reset", tr2.Streak())
	}
	if len(tr2.Ledger()) != 0 {
		t.Fatalf("ledger has %d entries after reset, want 0", len(tr2.Ledger()))
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	tr := loadTracker(t, Config{ID: "diet", Reward: 10, Penalty: 5}, store)
	tr.Toggle(ctx, "Monday-Breakfast")
	tr.Toggle(ctx, "Tuesday-Lunch")

	tr2 := loadTracker(t, Config{ID: "diet", Reward: 10, Penalty: 5}, store)
	if tr2.Points() != 20 {
		t.Fatalf("reloaded points=%d, want 20", tr2.Points())
	}
	if !tr2.IsSet("Monday-Breakfast") || !tr2.IsSet("Tuesday-Lunch") {
		t.Fatalf("reloaded ledger lost entries: %v", tr2.Ledger())
	}
}

func TestMalformedSnapshotYieldsDefaults(t *testing.T) {
	store := newFakeStore()
	store.records["diet"] = "{not json"

	tr := loadTracker(t, Config{ID: "diet", Reward: 10, Penalty: 5}, store)
	if tr.Points() != 0 || len(tr.Ledger()) != 0 {
		t.Fatalf("got points=%d ledger=%v, want zero state", tr.Points(), tr.Ledger())
	}
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.failSet = true

	tr := loadTracker(t, Config{ID: "workout", Reward: 10, Penalty: 10}, store)
	on, delta := tr.Toggle(ctx, "Friday-2")
	if !on || delta != 10 {
		t.Fatalf("toggle under write failure: on=%v delta=%d, want true 10", on, delta)
	}
	if tr.Points() != 10 || !tr.IsSet("Friday-2") {
		t.Fatalf("in-memory state lost on write failure")
	}
}

func TestRolloverFirstRunSetsDateWithoutStreak(t *testing.T) {
	store := newFakeStore()
	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: []string{"water"}, Now: fixedDate("2024-05-01")}, store)

	if tr.Streak() != 0 {
		t.Fatalf("streak=%d, want 0 on first run", tr.Streak())
	}
	if tr.LastDate() != "2024-05-01" {
		t.Fatalf("lastDate=%q, want 2024-05-01", tr.LastDate())
	}
}

func TestRolloverFullDayExtendsStreak(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	ids := []string{"water", "wakeup", "sleep"}
	now := fixedDate("2024-05-01")

	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	for _, id := range ids {
		tr.ToggleWeighted(ctx, DateKey(now(), id), 10, 10)
	}

	tr2 := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: fixedDate("2024-05-02")}, store)
	if tr2.Streak() != 1 {
		t.Fatalf("streak=%d, want 1 after complete day", tr2.Streak())
	}
	if tr2.LastDate() != "2024-05-02" {
		t.Fatalf("lastDate=%q, want 2024-05-02", tr2.LastDate())
	}
	// Historical bucket survives the rollover; today's bucket starts empty.
	if !tr2.IsSet("2024-05-01-water") {
		t.Fatalf("historical completion dropped on rollover")
	}
	if tr2.IsSet("2024-05-02-water") {
		t.Fatalf("today's bucket not empty after rollover")
	}
	if tr2.Points() != 30 {
		t.Fatalf("points=%d, want 30 retained across rollover", tr2.Points())
	}
}

func TestRolloverPartialDayResetsStreak(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	ids := []string{"water", "wakeup", "sleep"}
	now := fixedDate("2024-05-01")

	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	tr.ToggleWeighted(ctx, DateKey(now(), "water"), 10, 10)

	tr2 := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: fixedDate("2024-05-02")}, store)
	if tr2.Streak() != 0 {
		t.Fatalf("streak=%d, want 0 after incomplete day", tr2.Streak())
	}
}

func TestRolloverSameDayIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	ids := []string{"water"}
	now := fixedDate("2024-05-01")

	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	tr.ToggleWeighted(ctx, DateKey(now(), "water"), 15, 15)

	// A second process start on the same date must not touch anything.
	tr2 := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	if tr2.Streak() != 0 {
		t.Fatalf("streak=%d, want 0 within the same day", tr2.Streak())
	}
	if !tr2.IsSet(DateKey(now(), "water")) {
		t.Fatalf("same-day reload dropped today's completions")
	}
	if tr2.Points() != 15 {
		t.Fatalf("points=%d, want 15", tr2.Points())
	}
}

func TestRolloverMultiDayGap(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	ids := []string{"water"}
	now := fixedDate("2024-05-01")

	tr := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: now}, store)
	tr.ToggleWeighted(ctx, DateKey(now(), "water"), 15, 15)

	// Only the recorded last date is judged, however long the gap.
	tr2 := loadTracker(t, Config{ID: "habits", Rollover: true, ItemIDs: ids, Now: fixedDate("2024-05-10")}, store)
	if tr2.Streak() != 1 {
		t.Fatalf("streak=%d, want 1 (last active day was complete)", tr2.Streak())
	}
}
