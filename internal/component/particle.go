// internal/component/particle.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ParticleShape — how a particle is drawn.
type ParticleShape uint8

const (
	ShapeSquare ParticleShape = iota
	ShapeDroplet
	ShapeOval
	ShapeStreak
)

// Particle is a short-lived decorative point shared by debris and spray.
type Particle struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Life    float64
	MaxLife float64
	Alpha   float64
	Size    float64
	Color   color.RGBA
	Glow    color.RGBA
	Shape   ParticleShape
}
