// internal/state/idle_state.go
package state

import (
	"errors"
	"fmt"

	"go-power-wash/internal/config"
	"go-power-wash/internal/records"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IdleState — нечего чистить; ждем N или пробел, чтобы запросить партию снова.
type IdleState struct {
	sm     *StateMachine
	env    *Env
	reason error
}

func NewIdleState(sm *StateMachine, env *Env, reason error) *IdleState {
	return &IdleState{sm: sm, env: env, reason: reason}
}

func (s *IdleState) Enter() {}

func (s *IdleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Retry()
	}
}

// Retry fetches again and switches state on success.
func (s *IdleState) Retry() {
	next := NextState(s.sm, s.env)
	if idle, ok := next.(*IdleState); ok {
		s.reason = idle.reason
		return
	}
	s.sm.SetState(next)
}

func (s *IdleState) Message() string {
	if s.reason == nil || errors.Is(s.reason, records.ErrNoRecords) {
		return "Nothing to clean. Press N to check again."
	}
	return fmt.Sprintf("Could not load records: %v\nPress N to retry.", s.reason)
}

func (s *IdleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, s.Message(), config.ScreenWidth/2-150, config.ScreenHeight/2)
}

func (s *IdleState) Exit() {}
