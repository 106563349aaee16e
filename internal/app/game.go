// internal/app/game.go
package app

import (
	"log/slog"

	"go-power-wash/internal/config"
	"go-power-wash/internal/event"
	"go-power-wash/internal/records"
	"go-power-wash/internal/utils"
)

// Game holds what outlives a single session: tuning, audio, events and the
// reporter. At most one session is active.
type Game struct {
	Tuning          config.Tuning
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Session         *Session

	sound    Sound
	reporter Reporter
	log      *slog.Logger
}

// NewGame initializes a game without a session.
func NewGame(tuning config.Tuning, sound Sound, reporter Reporter, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		Tuning:          tuning,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(0),
		sound:           sound,
		reporter:        reporter,
		log:             log,
	}
}

// StartSession tears down the current session, if any, and builds a new one
// from recs. The nozzle mode chosen in the previous session is kept.
func (g *Game) StartSession(recs []records.Record) *Session {
	prev := g.Session
	if prev != nil {
		prev.Close()
	}
	s := NewSession(recs, SessionOptions{
		Tuning:   g.Tuning,
		Sound:    g.sound,
		Events:   g.EventDispatcher,
		Reporter: g.reporter,
		Rng:      g.Rng,
		Log:      g.log,
	})
	if prev != nil {
		s.Nozzle.SetMode(prev.Nozzle.Mode())
	}
	g.Session = s
	return s
}

// Update advances the active session.
func (g *Game) Update(deltaTime float64) {
	if g.Session != nil {
		g.Session.Tick(deltaTime)
	}
}

// Close ends the active session.
func (g *Game) Close() {
	if g.Session != nil {
		g.Session.Close()
	}
}
