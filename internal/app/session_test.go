package app

import (
	"testing"

	"go-power-wash/internal/audio"
	"go-power-wash/internal/config"
	"go-power-wash/internal/event"
	"go-power-wash/internal/records"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"
)

const frame = 1.0 / 60

type fakeSound struct {
	plays  map[string]int
	starts int
	stops  int
}

func newFakeSound() *fakeSound { return &fakeSound{plays: map[string]int{}} }

func (f *fakeSound) Play(name string, volume float64) { f.plays[name]++ }
func (f *fakeSound) StartLoop()                       { f.starts++ }
func (f *fakeSound) StopLoop()                        { f.stops++ }

type reports struct {
	calls [][]event.Destroyed
}

func (r *reports) report(list []event.Destroyed) { r.calls = append(r.calls, list) }

// newStackedSession places every entity on the same rectangle so one nozzle
// position hits all of them.
func newStackedSession(t *testing.T, ids ...string) (*Session, *fakeSound, *reports, *event.Dispatcher) {
	t.Helper()
	recs := make([]records.Record, len(ids))
	for i, id := range ids {
		recs[i] = records.Record{ID: id, Subject: "subject " + id}
	}
	sound := newFakeSound()
	rep := &reports{}
	events := event.NewDispatcher()
	s := NewSession(recs, SessionOptions{
		Tuning:   config.DefaultTuning(),
		Sound:    sound,
		Events:   events,
		Reporter: rep.report,
		Rng:      utils.NewPRNGService(1),
	})
	for _, id := range s.ECS.Order {
		tr := s.ECS.Transforms[id]
		tr.X, tr.Y = 100, 100
		s.ECS.Sizes[id].W = 200
	}
	return s, sound, rep, events
}

func aimAndSpray(s *Session) {
	s.Nozzle.PointerEnter()
	s.Nozzle.PointerMove(200, 150)
	s.Nozzle.PointerDown()
}

func TestEntitiesDyingTogetherAreReportedInOneCall(t *testing.T) {
	s, sound, rep, _ := newStackedSession(t, "a", "b")
	s.Nozzle.SetMode(types.ModeDelete)
	aimAndSpray(s)

	for i := 0; i < 49; i++ {
		s.Tick(frame)
	}
	if len(rep.calls) != 0 {
		t.Fatalf("reported before the 50th hit: %v", rep.calls)
	}

	s.Tick(frame)
	if len(rep.calls) != 1 {
		t.Fatalf("expected one report call, got %d", len(rep.calls))
	}
	got := rep.calls[0]
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected report %v", got)
	}
	for _, d := range got {
		if d.Mode != types.ModeDelete {
			t.Errorf("%s reported with mode %v", d.ID, d.Mode)
		}
	}
	if sound.plays[audio.CueDestroy] != 2 {
		t.Errorf("destroy cue played %d times", sound.plays[audio.CueDestroy])
	}
	if s.Particles.Count() == 0 {
		t.Error("delete mode should leave debris")
	}

	for i := 0; i < 30; i++ {
		s.Tick(frame)
	}
	if len(rep.calls) != 1 {
		t.Errorf("dead entities were reported again: %d calls", len(rep.calls))
	}
	if sound.plays[audio.CueStageClear] != 1 || !s.Cleared() {
		t.Errorf("stage clear played %d times, cleared=%v", sound.plays[audio.CueStageClear], s.Cleared())
	}
}

func TestArchiveReportIsMonotonicAndUnique(t *testing.T) {
	s, sound, rep, events := newStackedSession(t, "a", "b", "c")
	updates := 0
	events.Subscribe(event.ReportUpdated, event.ListenerFunc(func(e event.Event) {
		if r, ok := e.Data.(event.Report); ok && r.SessionID == s.ID {
			updates++
		}
	}))

	// Move "c" away so it dies later.
	third := s.ECS.Order[2]
	s.ECS.Transforms[third].X = 500
	aimAndSpray(s)

	for i := 0; i < 100; i++ {
		s.Tick(frame)
	}
	if len(rep.calls) != 1 || len(rep.calls[0]) != 2 {
		t.Fatalf("expected one call with a and b, got %v", rep.calls)
	}
	if sound.plays[audio.CueClean] != 2 {
		t.Errorf("clean cue played %d times", sound.plays[audio.CueClean])
	}
	if s.Remaining() != 1 || s.Cleared() {
		t.Errorf("remaining=%d cleared=%v", s.Remaining(), s.Cleared())
	}

	s.Nozzle.PointerMove(600, 150)
	for i := 0; i < 200; i++ {
		s.Tick(frame)
	}
	if len(rep.calls) != 2 {
		t.Fatalf("expected a second report call, got %d", len(rep.calls))
	}
	if updates != 2 {
		t.Errorf("ReportUpdated dispatched %d times", updates)
	}

	first, second := rep.calls[0], rep.calls[1]
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("report is not a prefix extension: %v then %v", first, second)
		}
	}
	seen := map[string]bool{}
	for _, d := range second {
		if seen[d.ID] {
			t.Errorf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
		if d.Mode != types.ModeArchive {
			t.Errorf("%s reported with mode %v", d.ID, d.Mode)
		}
	}
	if sound.plays[audio.CueStageClear] != 1 {
		t.Errorf("stage clear played %d times", sound.plays[audio.CueStageClear])
	}
}

func TestNoDamageWithoutTrigger(t *testing.T) {
	s, _, rep, _ := newStackedSession(t, "a")
	s.Nozzle.PointerEnter()
	s.Nozzle.PointerMove(200, 150)

	for i := 0; i < 120; i++ {
		s.Tick(frame)
	}
	id := s.ECS.Order[0]
	if hp := s.ECS.Physics[id].HP; hp != 100 {
		t.Errorf("hp = %v without spraying", hp)
	}
	if len(rep.calls) != 0 {
		t.Errorf("unexpected report %v", rep.calls)
	}
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	s, sound, rep, events := newStackedSession(t, "a")
	ended := 0
	events.Subscribe(event.SessionEnded, event.ListenerFunc(func(event.Event) { ended++ }))

	aimAndSpray(s)
	s.Tick(frame)
	if sound.starts != 1 {
		t.Fatalf("jet loop starts = %d", sound.starts)
	}

	s.Close()
	s.Close()
	if ended != 1 {
		t.Errorf("SessionEnded dispatched %d times", ended)
	}
	if sound.stops != 1 {
		t.Errorf("jet loop stops = %d", sound.stops)
	}
	if s.ECS.Len() != 0 || s.Nozzle.Spray().Count() != 0 {
		t.Error("close must tear down entities and spray")
	}

	for i := 0; i < 60; i++ {
		s.Tick(frame)
	}
	if len(rep.calls) != 0 {
		t.Error("closed session must not report")
	}
}

func TestStartSessionReplacesPreviousBatch(t *testing.T) {
	sound := newFakeSound()
	g := NewGame(config.DefaultTuning(), sound, nil, nil)

	first := g.StartSession([]records.Record{{ID: "a"}})
	first.Nozzle.SetMode(types.ModeDelete)
	second := g.StartSession([]records.Record{{ID: "b"}, {ID: "c"}})

	if !first.Closed() {
		t.Error("previous session must be closed")
	}
	if g.Session != second || second.ECS.Len() != 2 {
		t.Errorf("active session has %d entities", second.ECS.Len())
	}
	if second.Nozzle.Mode() != types.ModeDelete {
		t.Error("mode should carry over to the next batch")
	}
	if first.ID == second.ID {
		t.Error("session ids must differ")
	}
	g.Close()
	if !second.Closed() {
		t.Error("Game.Close must end the active session")
	}
}
