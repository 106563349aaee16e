package system

import (
	"go-power-wash/internal/component"

	"github.com/go-gl/mathgl/mgl64"
)

// HitTest reports whether a nozzle at point touches the rectangle. A point
// inside the rectangle always hits; otherwise the nozzle still hits when it
// is closer to the center than half the smaller side plus the nozzle radius.
// Thin entities stay easy to hit with fast pointer movement.
func HitTest(point mgl64.Vec2, r component.Rect, nozzleRadius float64) bool {
	if r.Contains(point) {
		return true
	}
	dist := point.Sub(r.Center()).Len()
	return dist < r.MinSide()/2+nozzleRadius
}
