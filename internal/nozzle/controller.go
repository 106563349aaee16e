// internal/nozzle/controller.go
package nozzle

import (
	"go-power-wash/internal/config"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoopPlayer starts and stops the continuous spraying sound.
type LoopPlayer interface {
	StartLoop()
	StopLoop()
}

// State — snapshot of the nozzle handed to other systems.
type State struct {
	X, Y                 float64 // raw pointer position
	SmoothedX, SmoothedY float64
	IsSpraying           bool // button held
	Mode                 types.Mode
	IsPointerOver        bool
}

// Controller owns the nozzle: it consumes pointer events, smooths the
// position, animates the cursor, drives the spray emitter and keeps the jet
// sound in step with the spraying state.
type Controller struct {
	state     State
	visual    *Visual
	spray     *SprayEmitter
	loop      LoopPlayer
	jetActive bool
	closed    bool
}

// NewController creates a nozzle for a surface of width x height pixels.
// loop may be nil.
func NewController(tuning config.Tuning, rng *utils.PRNGService, loop LoopPlayer, width, height float64) *Controller {
	return &Controller{
		state:  State{Mode: types.ModeArchive},
		visual: NewVisual(tuning.LerpFactor),
		spray:  NewSprayEmitter(tuning, rng, width, height),
		loop:   loop,
	}
}

// PointerMove records a pointer position in surface-local coordinates.
func (c *Controller) PointerMove(x, y float64) {
	c.state.X, c.state.Y = x, y
}

// PointerDown starts spraying.
func (c *Controller) PointerDown() {
	c.state.IsSpraying = true
}

// PointerUp stops spraying.
func (c *Controller) PointerUp() {
	c.state.IsSpraying = false
}

// PointerEnter marks the pointer as over the surface.
func (c *Controller) PointerEnter() {
	c.state.IsPointerOver = true
}

// PointerLeave marks the pointer as gone; leaving also releases the trigger.
func (c *Controller) PointerLeave() {
	c.state.IsPointerOver = false
	c.state.IsSpraying = false
}

// SetMode switches between archive and delete, also mid-session.
func (c *Controller) SetMode(mode types.Mode) {
	c.state.Mode = mode
}

// Mode returns the active mode.
func (c *Controller) Mode() types.Mode {
	return c.state.Mode
}

// IsSpraying reports whether the nozzle is actually spraying onto the surface.
func (c *Controller) IsSpraying() bool {
	return c.state.IsSpraying && c.state.IsPointerOver
}

// Position returns the raw pointer position.
func (c *Controller) Position() (float64, float64) {
	return c.state.X, c.state.Y
}

// State returns a copy of the nozzle state.
func (c *Controller) State() State {
	return c.state
}

// Spray exposes the emitter, mainly for tests and the HUD.
func (c *Controller) Spray() *SprayEmitter {
	return c.spray
}

// Visual exposes the cursor renderer.
func (c *Controller) Visual() *Visual {
	return c.visual
}

// Update advances the nozzle by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.closed {
		return
	}
	over := c.state.IsPointerOver
	c.visual.SetVisible(over)

	if over {
		c.visual.SetTargetPosition(c.state.X, c.state.Y)
		c.visual.UpdatePosition(dt)
		c.visual.Advance(c.state.Mode, c.state.IsSpraying, dt)
	}
	c.state.SmoothedX, c.state.SmoothedY = c.visual.Position()

	c.spray.Update(c.state.SmoothedX, c.state.SmoothedY, c.IsSpraying(), c.state.Mode, dt)
	c.syncJet()
}

// syncJet starts the jet sound on the rising edge of spraying-over-surface
// and fades it out on the falling edge.
func (c *Controller) syncJet() {
	active := c.IsSpraying()
	if active == c.jetActive {
		return
	}
	c.jetActive = active
	if c.loop == nil {
		return
	}
	if active {
		c.loop.StartLoop()
	} else {
		c.loop.StopLoop()
	}
}

// Draw renders the spray below the cursor.
func (c *Controller) Draw(screen *ebiten.Image) {
	c.spray.Draw(screen)
	c.visual.Draw(screen)
}

// Close releases the spray particles and stops the jet sound. It is safe to
// call on a controller that never ran and to call more than once.
func (c *Controller) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	c.spray.Clear()
	c.visual.SetVisible(false)
	if c.jetActive {
		c.jetActive = false
		if c.loop != nil {
			c.loop.StopLoop()
		}
	}
}
