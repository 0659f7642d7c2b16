package tracker

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Store is the durable key-value record store a tracker persists through.
// One record per tracker, keyed by the tracker ID.
type Store interface {
	Get(ctx context.Context, id string) (string, bool, error)
	Set(ctx context.Context, id string, data string) error
}

// Config parameterizes one tracker instance. The three trackers share the
// same engine and differ only in this configuration.
type Config struct {
	// ID is the storage namespace, e.g. "habits", "diet", "workout".
	ID string

	// Reward and Penalty are the default points applied on check/uncheck.
	// They may differ (diet pays +10 but only takes back 5).
	Reward  int
	Penalty int

	// Rollover enables the day-boundary streak machinery (habit tracker).
	// ItemIDs lists the keys that must all be checked under a date bucket
	// for that day to count toward the streak.
	Rollover bool
	ItemIDs  []string

	// Now supplies the current time; nil means time.Now. Tests inject it.
	Now func() time.Time
}

// Tracker is the shared completion/points engine. It is not safe for
// concurrent use; all mutations happen on the single user-event path.
type Tracker struct {
	cfg   Config
	store Store
	log   *zap.Logger

	ledger   Ledger
	points   int
	streak   int
	lastDate string
}

func New(cfg Config, store Store, log *zap.Logger) *Tracker {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		cfg:    cfg,
		store:  store,
		log:    log,
		ledger: Ledger{},
	}
}

// Load hydrates the tracker from its stored snapshot and, for rollover
// trackers, settles any pending day transition. A missing or malformed
// record silently yields defaults.
func (t *Tracker) Load(ctx context.Context) error {
	raw, ok, err := t.store.Get(ctx, t.cfg.ID)
	if err != nil {
		return err
	}
	if ok {
		if snap, valid := decodeSnapshot(raw); valid {
			t.ledger = snap.Ledger
			t.points = snap.Points
			t.streak = snap.Streak
			t.lastDate = snap.LastDate
		} else {
			t.log.Warn("discarding malformed snapshot",
				zap.String("tracker", t.cfg.ID))
			t.ledger = Ledger{}
		}
	}
	if t.cfg.Rollover {
		t.settleRollover(ctx)
	}
	return nil
}

// Today returns the current ISO date string used for date-bucketed keys.
func (t *Tracker) Today() string {
	return t.cfg.Now().Format(DateLayout)
}

// Toggle flips the key using the configured reward/penalty pair.
func (t *Tracker) Toggle(ctx context.Context, key string) (bool, int) {
	return t.ToggleWeighted(ctx, key, t.cfg.Reward, t.cfg.Penalty)
}

// ToggleWeighted flips the key with an explicit reward/penalty pair (the
// habit tracker carries per-item point values). The points delta is decided
// by the pre-toggle state: checking pays the reward, unchecking takes the
// penalty. The new snapshot is written through before returning.
func (t *Tracker) ToggleWeighted(ctx context.Context, key string, reward, penalty int) (on bool, delta int) {
	wasCompleted := t.ledger.IsSet(key)
	on = t.ledger.Toggle(key)
	if wasCompleted {
		delta = -penalty
	} else {
		delta = reward
	}
	t.points += delta
	t.save(ctx)
	return on, delta
}

// IsSet reports the current state of a completion key.
func (t *Tracker) IsSet(key string) bool {
	return t.ledger.IsSet(key)
}

// Progress projects completion over the given key universe. Pure; safe to
// call any number of times.
func (t *Tracker) Progress(universe []string) Progress {
	return ComputeProgress(t.ledger, universe)
}

// Points returns the running total. It is maintained incrementally, not
// derived from the ledger, so it can drift from a full recomputation if a
// snapshot write ever fails between mutations.
func (t *Tracker) Points() int { return t.points }

// Streak returns the consecutive fully-completed-day count (rollover
// trackers only; always 0 otherwise).
func (t *Tracker) Streak() int { return t.streak }

// LastDate returns the date the tracker's today-bucket was last active.
func (t *Tracker) LastDate() string { return t.lastDate }

// Ledger returns a copy of the current ledger state.
func (t *Tracker) Ledger() Ledger { return t.ledger.Clone() }

// Reset clears the ledger and zeroes points. The streak is deliberately left
// alone. Callers must have confirmed with the user first.
func (t *Tracker) Reset(ctx context.Context) {
	t.ledger = Ledger{}
	t.points = 0
	t.save(ctx)
}

// settleRollover runs the day-boundary state machine:
//
//	same date  -> no-op, resume today's bucket
//	new date   -> streak +1 if every item under the previous date was
//	              checked, else streak = 0; today's bucket starts empty;
//	              historical buckets and points are retained.
//
// Re-running within the same date is a no-op, so the check is idempotent.
func (t *Tracker) settleRollover(ctx context.Context) {
	today := t.Today()
	if t.lastDate == today {
		return
	}
	if t.lastDate != "" {
		if t.allCheckedOn(t.lastDate) {
			t.streak++
		} else {
			t.streak = 0
		}
	}
	t.clearBucket(today)
	t.lastDate = today
	t.save(ctx)
}

func (t *Tracker) allCheckedOn(date string) bool {
	if len(t.cfg.ItemIDs) == 0 {
		return false
	}
	for _, id := range t.cfg.ItemIDs {
		if !t.ledger.IsSet(DateKey(mustParseDate(date), id)) {
			return false
		}
	}
	return true
}

func (t *Tracker) clearBucket(date string) {
	prefix := date + "-"
	for k := range t.ledger {
		if strings.HasPrefix(k, prefix) {
			delete(t.ledger, k)
		}
	}
}

// save writes the snapshot through to the store. A write failure is logged
// and swallowed: the in-memory state stays authoritative until the next
// load, and losing a toggle is worse than a stale record.
func (t *Tracker) save(ctx context.Context) {
	data, err := encodeSnapshot(Snapshot{
		Ledger:   t.ledger,
		Points:   t.points,
		Streak:   t.streak,
		LastDate: t.lastDate,
	})
	if err != nil {
		t.log.Warn("encode snapshot failed",
			zap.String("tracker", t.cfg.ID), zap.Error(err))
		return
	}
	if err := t.store.Set(ctx, t.cfg.ID, data); err != nil {
		t.log.Warn("snapshot write failed, in-memory state retained",
			zap.String("tracker", t.cfg.ID), zap.Error(err))
	}
}

func mustParseDate(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return d
}
