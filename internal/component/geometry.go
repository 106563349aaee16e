package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// Bounds combines a transform and a size into the on-screen rectangle.
// ok is false when either part is missing or the extent is not a finite,
// non-negative size.
func Bounds(tr *Transform, sz *Size) (Rect, bool) {
	if tr == nil || sz == nil {
		return Rect{}, false
	}
	r := Rect{X: tr.X, Y: tr.Y, W: sz.W * tr.ScaleX, H: sz.H * tr.ScaleY}
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rect{}, false
		}
	}
	if r.W < 0 || r.H < 0 {
		return Rect{}, false
	}
	return r, true
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.X && p.X() <= r.X+r.W && p.Y() >= r.Y && p.Y() <= r.Y+r.H
}

// Center returns the middle of r.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// MinSide returns the smaller of width and height.
func (r Rect) MinSide() float64 {
	return math.Min(r.W, r.H)
}
