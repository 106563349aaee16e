package nozzle

import (
	"image/color"
	"math"

	"go-power-wash/internal/component"
	"go-power-wash/internal/config"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"
	"go-power-wash/pkg/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SprayEmitter produces the ambient water jet: a cone of short-lived
// droplets above the nozzle while spraying. It is independent of the debris
// particles and never interacts with dirt.
type SprayEmitter struct {
	tuning    config.Tuning
	rng       *utils.PRNGService
	width     float64
	height    float64
	particles []component.Particle
}

func NewSprayEmitter(tuning config.Tuning, rng *utils.PRNGService, width, height float64) *SprayEmitter {
	return &SprayEmitter{tuning: tuning, rng: rng, width: width, height: height}
}

// Update emits new droplets at x, y when active, then integrates and retires
// the live ones. dt is in seconds.
func (e *SprayEmitter) Update(x, y float64, active bool, mode types.Mode, dt float64) {
	if active && len(e.particles) < e.tuning.SprayMax {
		n := e.rng.IntRange(e.tuning.SprayPerTickMin, e.tuning.SprayPerTickMax)
		if room := e.tuning.SprayMax - len(e.particles); n > room {
			n = room
		}
		for i := 0; i < n; i++ {
			e.emit(x, y, mode)
		}
	}

	margin := config.ParticleOffscreen
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Vel[1] += e.tuning.SprayGravity * dt
		p.Life -= dt
		p.Alpha = utils.Clamp01(p.Life / p.MaxLife)

		offscreen := p.Pos.X() < -margin || p.Pos.X() > e.width+margin ||
			p.Pos.Y() < -margin || p.Pos.Y() > e.height+margin
		if p.Life <= 0 || offscreen {
			continue
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(e.particles); i++ {
		e.particles[i] = component.Particle{}
	}
	e.particles = alive
}

func (e *SprayEmitter) emit(x, y float64, mode types.Mode) {
	colors := ColorsFor(mode)
	angle := -math.Pi/2 + (e.rng.Float64()-0.5)*e.tuning.SprayCone
	speed := e.rng.Range(e.tuning.SpraySpeedMin, e.tuning.SpraySpeedMax)
	size := e.rng.Range(e.tuning.SpraySizeMin, e.tuning.SpraySizeMax)

	shape := component.ShapeDroplet
	switch kind := e.rng.Float64(); {
	case kind >= 0.85:
		shape = component.ShapeStreak
	case kind >= 0.6:
		shape = component.ShapeOval
	}

	e.particles = append(e.particles, component.Particle{
		Pos:     mgl64.Vec2{x, y},
		Vel:     mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed),
		Life:    e.tuning.SprayLife * e.rng.Range(0.6, 1.0),
		MaxLife: e.tuning.SprayLife,
		Alpha:   1,
		Size:    size,
		Color:   colors.Light,
		Glow:    colors.Base,
		Shape:   shape,
	})
}

// Count returns the number of live droplets.
func (e *SprayEmitter) Count() int {
	return len(e.particles)
}

// Particles exposes the live droplets.
func (e *SprayEmitter) Particles() []component.Particle {
	return e.particles
}

// Clear drops every droplet.
func (e *SprayEmitter) Clear() {
	e.particles = nil
}

// Draw renders droplets under the nozzle cursor.
func (e *SprayEmitter) Draw(screen *ebiten.Image) {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	for _, p := range e.particles {
		x, y, sz := float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Size)
		switch p.Shape {
		case component.ShapeDroplet:
			vector.DrawFilledCircle(screen, x, y, sz, render.Fade(p.Color, 0.9*p.Alpha), true)
			vector.DrawFilledCircle(screen, x, y, sz*0.4, render.Fade(white, 0.8*p.Alpha), true)
		case component.ShapeOval:
			// вытянутая капля: два перекрывающихся круга
			vector.DrawFilledCircle(screen, x, y-sz*0.3, sz*0.8, render.Fade(p.Color, 0.85*p.Alpha), true)
			vector.DrawFilledCircle(screen, x, y+sz*0.3, sz*0.8, render.Fade(p.Color, 0.85*p.Alpha), true)
		case component.ShapeStreak:
			vector.StrokeLine(screen, x, y-sz, x, y+sz, sz*0.6, render.Fade(p.Color, 0.9*p.Alpha), true)
		}
		vector.DrawFilledCircle(screen, x, y, sz*1.5, render.Fade(p.Glow, 0.2*p.Alpha), true)
	}
}
