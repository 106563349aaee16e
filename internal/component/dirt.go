// internal/component/dirt.go
package component

import (
	"image/color"

	"go-power-wash/internal/types"
)

// Dirt — the source-record side of a dirt entity.
type Dirt struct {
	RecordID string // opaque id from the record provider
	Label    string
	Color    color.RGBA
}

// Physics — durability and destruction state of a dirt entity.
type Physics struct {
	HP      float64
	MaxHP   float64
	IsDying bool
	IsDead  bool
	Mode    types.Mode // valid only when HasMode
	HasMode bool
}

// NewPhysics returns a fresh record at full durability.
func NewPhysics(maxHP float64) *Physics {
	return &Physics{HP: maxHP, MaxHP: maxHP}
}

// Transform — presentation state driven by durability and the dying animation.
type Transform struct {
	X, Y           float64 // top-left corner
	ScaleX, ScaleY float64
	Alpha          float64
	Visible        bool
}

// NewTransform places a fully visible entity at x, y.
func NewTransform(x, y float64) *Transform {
	return &Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1, Alpha: 1, Visible: true}
}

// Size — unscaled extent of a dirt entity.
type Size struct {
	W, H float64
}
