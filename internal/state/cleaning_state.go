// internal/state/cleaning_state.go
package state

import (
	"fmt"
	"time"

	"go-power-wash/internal/app"
	"go-power-wash/internal/config"
	"go-power-wash/internal/nozzle"
	"go-power-wash/internal/types"
	"go-power-wash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CleaningState — основное состояние: сопло, грязь, частицы.
type CleaningState struct {
	sm        *StateMachine
	env       *Env
	own       *app.Session
	indicator *ui.ModeIndicator
	pointer   PointerTracker
	focused   bool
}

func NewCleaningState(sm *StateMachine, env *Env) *CleaningState {
	return &CleaningState{
		sm:  sm,
		env: env,
		own: env.Game.Session,
		indicator: ui.NewModeIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		focused: true,
	}
}

func (c *CleaningState) Enter() {}

func (c *CleaningState) Update(deltaTime float64) {
	c.handle(pollInput(), time.Now())
	if c.sm.Current() != c {
		return
	}
	c.env.Game.Update(deltaTime)
}

func (c *CleaningState) session() *app.Session {
	return c.own
}

// handle applies one frame of input. It never touches ebiten directly.
func (c *CleaningState) handle(f Frame, now time.Time) {
	s := c.session()
	if s == nil {
		return
	}

	if f.Focused != c.focused {
		c.focused = f.Focused
		if !f.Focused && c.env.Audio != nil {
			// Возобновление происходит само перед следующим звуком.
			c.env.Audio.Suspend()
		}
	}

	consumed := false
	if f.Focused && f.Pressed && c.indicator.Contains(f.X, f.Y) {
		consumed = true
		if c.indicator.HandleClick(now) {
			s.Nozzle.SetMode(s.Nozzle.Mode().Toggle())
		}
	}
	if f.ToggleMode {
		s.Nozzle.SetMode(s.Nozzle.Mode().Toggle())
		c.indicator.LastClickTime = now
	}
	if f.HasSelection {
		s.Nozzle.SetMode(f.SelectMode)
		c.indicator.LastClickTime = now
	}

	c.pointer.Apply(f, consumed, s.Nozzle)

	if f.NextBatch {
		c.sm.SetState(NextState(c.sm, c.env))
	}
}

func (c *CleaningState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s := c.session()
	if s == nil {
		return
	}
	s.Render.Draw(screen)
	s.Particles.Draw(screen)
	s.Nozzle.Draw(screen)

	mode := s.Nozzle.Mode()
	c.indicator.Draw(screen, mode, nozzle.ColorsFor(mode))

	hud := fmt.Sprintf("Left: %d  Cleaned: %d  Mode: %s (Tab/1/2)", s.Remaining(), len(s.Destroyed()), mode)
	if s.Cleared() {
		hud += "\nAll clean! Press N for the next batch."
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Exit ends the session this state was built for.
func (c *CleaningState) Exit() {
	if c.own != nil {
		c.own.Close()
	}
}

// pollInput reads the ebiten input state for one frame.
func pollInput() Frame {
	x, y := ebiten.CursorPosition()
	f := Frame{
		X:        x,
		Y:        y,
		Inside:   x >= config.PointerSurfaceMargin && y >= config.PointerSurfaceMargin && x < config.ScreenWidth-config.PointerSurfaceMargin && y < config.ScreenHeight-config.PointerSurfaceMargin,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Focused:  ebiten.IsFocused(),
	}
	f.ToggleMode = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		f.SelectMode, f.HasSelection = types.ModeArchive, true
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		f.SelectMode, f.HasSelection = types.ModeDelete, true
	}
	f.NextBatch = inpututil.IsKeyJustPressed(ebiten.KeyN)
	return f
}
