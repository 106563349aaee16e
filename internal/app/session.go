// internal/app/session.go
package app

import (
	"log/slog"

	"go-power-wash/internal/audio"
	"go-power-wash/internal/config"
	"go-power-wash/internal/entity"
	"go-power-wash/internal/event"
	"go-power-wash/internal/nozzle"
	"go-power-wash/internal/records"
	"go-power-wash/internal/system"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Sound is what a session needs from the audio layer.
type Sound interface {
	Play(name string, volume float64)
	StartLoop()
	StopLoop()
}

// Reporter receives the cumulative, deduplicated list of destroyed records.
type Reporter func(destroyed []event.Destroyed)

// SessionOptions — зависимости сессии.
type SessionOptions struct {
	Tuning        config.Tuning
	Sound         Sound             // nil plays nothing
	Events        *event.Dispatcher // nil dispatches nothing
	Reporter      Reporter
	Rng           *utils.PRNGService
	Width, Height float64
	Log           *slog.Logger
}

// Session — одна партия грязи от создания до очистки.
type Session struct {
	ID          string
	ECS         *entity.ECS
	Nozzle      *nozzle.Controller
	Particles   *system.ParticleSystem
	Interaction *system.InteractionSystem
	Render      *system.RenderSystem

	tuning   config.Tuning
	sound    Sound
	events   *event.Dispatcher
	reporter Reporter
	ledger   *Ledger
	log      *slog.Logger
	total    int
	cleared  bool
	closed   bool
}

// NewSession lays out one dirt entity per record and wires the systems.
func NewSession(recs []records.Record, opts SessionOptions) *Session {
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(0)
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Width == 0 {
		opts.Width = config.ScreenWidth
	}
	if opts.Height == 0 {
		opts.Height = config.ScreenHeight
	}

	ecs := entity.NewECS()
	particles := system.NewParticleSystem(opts.Tuning, opts.Rng)
	s := &Session{
		ID:        uuid.NewString(),
		ECS:       ecs,
		Particles: particles,
		Render:    system.NewRenderSystem(ecs),
		tuning:    opts.Tuning,
		sound:     opts.Sound,
		events:    opts.Events,
		reporter:  opts.Reporter,
		ledger:    NewLedger(),
		log:       opts.Log,
	}

	var loop nozzle.LoopPlayer
	var cues system.CuePlayer
	if opts.Sound != nil {
		loop, cues = opts.Sound, opts.Sound
	}
	s.Nozzle = nozzle.NewController(opts.Tuning, opts.Rng, loop, opts.Width, opts.Height)
	s.Interaction = system.NewInteractionSystem(opts.Tuning, particles, cues)

	layout := Layout{Width: opts.Width, Height: opts.Height, MaxHP: opts.Tuning.MaxHP}
	s.total = len(layout.Populate(ecs, recs, opts.Rng))

	s.log.Info("session started", "session", s.ID, "records", s.total)
	s.dispatch(event.SessionStarted, s.ID)
	return s
}

// Tick advances the simulation by dt seconds. The order is fixed: nozzle,
// debris, interaction, then the destroyed report.
func (s *Session) Tick(dt float64) {
	if s.closed {
		return
	}
	s.Nozzle.Update(dt)
	s.Particles.Update()

	st := s.Nozzle.State()
	s.Interaction.Update(mgl64.Vec2{st.SmoothedX, st.SmoothedY}, s.Nozzle.IsSpraying(), st.Mode, s.ECS)

	s.report()
}

// report collects everything that died this tick and reports it in one call.
func (s *Session) report() {
	var batch []event.Destroyed
	for _, id := range s.ECS.Order {
		state, ok := s.ECS.Physics[id]
		if !ok || !state.IsDead {
			continue
		}
		dirt, ok := s.ECS.Dirts[id]
		if !ok || s.ledger.Has(dirt.RecordID) {
			continue
		}
		mode := types.ModeArchive
		if state.HasMode {
			mode = state.Mode
		}
		batch = append(batch, event.Destroyed{ID: dirt.RecordID, Mode: mode})
	}
	if len(batch) == 0 {
		return
	}

	list, grew := s.ledger.Record(batch)
	if !grew {
		return
	}
	for _, d := range batch {
		s.log.Debug("dirt destroyed", "session", s.ID, "record", d.ID, "mode", d.Mode)
		s.dispatch(event.DirtDestroyed, d)
	}
	if s.reporter != nil {
		s.reporter(list)
	}
	s.dispatch(event.ReportUpdated, event.Report{SessionID: s.ID, Destroyed: list})

	if !s.cleared && s.total > 0 && s.ledger.Len() >= s.total {
		s.cleared = true
		if s.sound != nil {
			s.sound.Play(audio.CueStageClear, s.tuning.ClearVolume)
		}
		s.log.Info("stage cleared", "session", s.ID, "records", s.total)
		s.dispatch(event.StageCleared, s.ID)
	}
}

// Destroyed returns the accumulated report.
func (s *Session) Destroyed() []event.Destroyed {
	return s.ledger.Snapshot()
}

// Remaining counts records not yet reported.
func (s *Session) Remaining() int {
	return s.total - s.ledger.Len()
}

func (s *Session) Cleared() bool {
	return s.cleared
}

func (s *Session) Closed() bool {
	return s.closed
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Nozzle.Close()
	s.Particles.Clear()
	s.ECS.Reset()
	s.log.Info("session ended", "session", s.ID, "destroyed", s.ledger.Len(), "records", s.total)
	s.dispatch(event.SessionEnded, s.ID)
}

func (s *Session) dispatch(t event.EventType, data interface{}) {
	if s.events != nil {
		s.events.Dispatch(event.Event{Type: t, Data: data})
	}
}
