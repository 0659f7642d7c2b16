package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Tracker record keys. Each tracker owns exactly one snapshot row; keeping
// the keys here avoids ad hoc strings colliding across callers.
const (
	KeyHabits  = "habits"
	KeyDiet    = "diet"
	KeyWorkout = "workout"
	KeySteps   = "steps"
)

// SnapshotRepo is the durable get/set record store the trackers persist
// through. It satisfies tracker.Store and steps.Store.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Get returns the stored record for a tracker, reporting absence separately
// from failure.
func (r *SnapshotRepo) Get(ctx context.Context, trackerID string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT data FROM snapshots WHERE tracker = ?
	`, trackerID)
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("snapshot get: %w", err)
	}
	return data, true, nil
}

// Set writes the record for a tracker, replacing any previous one.
func (r *SnapshotRepo) Set(ctx context.Context, trackerID string, data string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (tracker, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(tracker) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, trackerID, data)
	if err != nil {
		return fmt.Errorf("snapshot set: %w", err)
	}
	return nil
}
