// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"go-power-wash/internal/component"
	"go-power-wash/internal/config"
	"go-power-wash/internal/utils"
	"go-power-wash/pkg/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleSystem управляет обломками, которые разлетаются при удалении грязи.
// Ссылок на сущности нет: каждая частица хранит свое состояние сама.
type ParticleSystem struct {
	tuning    config.Tuning
	rng       *utils.PRNGService
	particles []component.Particle
}

func NewParticleSystem(tuning config.Tuning, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{tuning: tuning, rng: rng}
}

// Explode spawns a burst of square debris at x, y.
func (s *ParticleSystem) Explode(x, y float64, c color.RGBA) {
	origin := mgl64.Vec2{x, y}
	for i := 0; i < s.tuning.ExplosionCount; i++ {
		angle := s.rng.Angle()
		speed := s.rng.Range(s.tuning.ExplosionSpeedMin, s.tuning.ExplosionSpeedMax)
		s.particles = append(s.particles, component.Particle{
			Pos:     origin,
			Vel:     mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed),
			Life:    1,
			MaxLife: 1,
			Alpha:   1,
			Size:    s.tuning.ExplosionSize,
			Color:   c,
			Shape:   component.ShapeSquare,
		})
	}
}

// Update advances every particle by one tick and retires the expired ones.
func (s *ParticleSystem) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel[1] += s.tuning.DebrisGravity
		p.Life -= s.tuning.DebrisLifeStep
		p.Alpha = utils.Clamp01(p.Life / p.MaxLife)
		if p.Life <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	// Обнуляем хвост, чтобы не держать старые значения.
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = component.Particle{}
	}
	s.particles = alive
}

// Count returns the number of live particles.
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Particles exposes the live particles for rendering and tests.
func (s *ParticleSystem) Particles() []component.Particle {
	return s.particles
}

// Clear drops every particle. Safe to call repeatedly.
func (s *ParticleSystem) Clear() {
	s.particles = nil
}

// Draw рисует обломки поверх грязи.
func (s *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range s.particles {
		c := render.Fade(p.Color, p.Alpha)
		vector.DrawFilledRect(screen, float32(p.Pos.X()), float32(p.Pos.Y()), float32(p.Size), float32(p.Size), c, false)
	}
}
