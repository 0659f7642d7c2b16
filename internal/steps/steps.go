// Package steps tracks the daily step count shown on the dashboard. It is a
// manual counter (the device-motion source is outside this program); counts
// reset when the calendar date changes.
package steps

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"
)

// CaloriesPerStep is the rough burn estimate used for the dashboard.
const CaloriesPerStep = 0.04

// CheckInBonus is the step credit awarded by the once-per-day check-in.
const CheckInBonus = 500

// Store is the durable record store; satisfied by storage.SnapshotRepo.
type Store interface {
	Get(ctx context.Context, id string) (string, bool, error)
	Set(ctx context.Context, id string, data string) error
}

type record struct {
	Steps       int    `json:"steps"`
	Date        string `json:"date"`
	CheckInDate string `json:"checkInDate,omitempty"`
}

// Counter is the daily step counter.
type Counter struct {
	store Store
	log   *zap.Logger
	now   func() time.Time

	rec record
}

const storeKey = "steps"

func NewCounter(store Store, log *zap.Logger, now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Counter{store: store, log: log, now: now}
}

func (c *Counter) today() string {
	return c.now().Format("2006-01-02")
}

// Load hydrates the counter; a missing or malformed record, or a stale date,
// yields zero steps for today.
func (c *Counter) Load(ctx context.Context) error {
	raw, ok, err := c.store.Get(ctx, storeKey)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &c.rec); err != nil {
			c.log.Warn("discarding malformed steps record", zap.Error(err))
			c.rec = record{}
		}
	}
	if c.rec.Date != c.today() {
		c.rec.Steps = 0
		c.rec.Date = c.today()
		c.save(ctx)
	}
	return nil
}

// Steps returns today's count.
func (c *Counter) Steps() int { return c.rec.Steps }

// Calories estimates calories burned from today's steps.
func (c *Counter) Calories() int {
	return int(math.Round(float64(c.rec.Steps) * CaloriesPerStep))
}

// Add records n more steps.
func (c *Counter) Add(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	c.rec.Steps += n
	c.save(ctx)
}

// Reset zeroes today's count.
func (c *Counter) Reset(ctx context.Context) {
	c.rec.Steps = 0
	c.save(ctx)
}

// CheckIn awards the daily bonus once per date. Returns false when today's
// check-in was already claimed.
func (c *Counter) CheckIn(ctx context.Context) bool {
	if c.rec.CheckInDate == c.today() {
		return false
	}
	c.rec.CheckInDate = c.today()
	c.rec.Steps += CheckInBonus
	c.save(ctx)
	return true
}

func (c *Counter) save(ctx context.Context) {
	b, err := json.Marshal(c.rec)
	if err != nil {
		c.log.Warn("encode steps record failed", zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, storeKey, string(b)); err != nil {
		c.log.Warn("steps write failed, in-memory count retained", zap.Error(err))
	}
}
