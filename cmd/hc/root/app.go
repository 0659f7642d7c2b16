package root

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"healthcoach/internal/coach"
	"healthcoach/internal/config"
	"healthcoach/internal/logger"
	"healthcoach/internal/plan"
	"healthcoach/internal/steps"
	"healthcoach/internal/storage"
	"healthcoach/internal/tracker"
)

// app bundles everything a command needs: config, logger, the open DB and
// the loaded plan set.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *sql.DB
	repo  *storage.SnapshotRepo
	plans plan.Set
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg := config.Load()

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	plans, err := plan.Load(cfg.PlansPath)
	if err != nil {
		logger.Sync(log)
		return nil, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		logger.Sync(log)
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		logger.Sync(log)
		return nil, nil, err
	}

	a := &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		repo:  storage.NewSnapshotRepo(db),
		plans: plans,
	}
	cleanup := func() {
		_ = db.Close()
		logger.Sync(log)
	}
	return a, cleanup, nil
}

func (a *app) habitsTracker(ctx context.Context) (*tracker.Tracker, error) {
	t := tracker.New(tracker.Config{
		ID:       storage.KeyHabits,
		Rollover: true,
		ItemIDs:  plan.HabitIDs(a.plans.Habits),
	}, a.repo, a.log)
	if err := t.Load(ctx); err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	return t, nil
}

func (a *app) dietTracker(ctx context.Context) (*tracker.Tracker, error) {
	t := tracker.New(tracker.Config{
		ID:      storage.KeyDiet,
		Reward:  10,
		Penalty: 5,
	}, a.repo, a.log)
	if err := t.Load(ctx); err != nil {
		return nil, fmt.Errorf("load diet: %w", err)
	}
	return t, nil
}

func (a *app) workoutTracker(ctx context.Context) (*tracker.Tracker, error) {
	t := tracker.New(tracker.Config{
		ID:      storage.KeyWorkout,
		Reward:  10,
		Penalty: 10,
	}, a.repo, a.log)
	if err := t.Load(ctx); err != nil {
		return nil, fmt.Errorf("load workout: %w", err)
	}
	return t, nil
}

func (a *app) stepCounter(ctx context.Context) (*steps.Counter, error) {
	c := steps.NewCounter(a.repo, a.log, nil)
	if err := c.Load(ctx); err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}
	return c, nil
}

// stats assembles the metric context sent to the coach. Water and sleep have
// no tracked source yet, so they stay at the app's placeholder values.
func (a *app) stats(ctx context.Context) coach.Stats {
	st := coach.Stats{WaterLiters: 1.2, Sleep: "7h 20m"}
	counter, err := a.stepCounter(ctx)
	if err != nil {
		a.log.Warn("stats without step data", zap.Error(err))
		return st
	}
	st.Steps = counter.Steps()
	st.Calories = counter.Calories()
	return st
}

// confirm asks a yes/no question on the command's input; declining is a
// no-op for the caller.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
