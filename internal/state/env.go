// internal/state/env.go
package state

import (
	"context"
	"log/slog"
	"time"

	"go-power-wash/internal/app"
	"go-power-wash/internal/records"
)

const fetchTimeout = 5 * time.Second

// Suspender pauses audio output while the window is in the background.
type Suspender interface {
	Suspend()
}

// Env — общие зависимости состояний.
type Env struct {
	Game     *app.Game
	Provider records.Provider
	Audio    Suspender // nil when there is no audio
	Log      *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}
	return e.Log
}

// fetch asks the provider for the next batch.
func (e *Env) fetch() ([]records.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	return e.Provider.Records(ctx)
}

// NextState fetches a batch and returns the state that should show it: a
// cleaning state with a fresh session, or the idle state when there is
// nothing to clean or the fetch failed.
func NextState(sm *StateMachine, env *Env) State {
	recs, err := env.fetch()
	if err != nil {
		env.logger().Warn("no batch to clean", "err", err)
		return NewIdleState(sm, env, err)
	}
	env.Game.StartSession(recs)
	return NewCleaningState(sm, env)
}
