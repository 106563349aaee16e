// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"go-power-wash/internal/config"
	"go-power-wash/internal/types"
	"go-power-wash/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ModeIndicator — кружок текущего режима в углу экрана. Клик переключает режим.
type ModeIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	face          text.Face
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Contains проверяет, попадает ли точка в индикатор
func (i *ModeIndicator) Contains(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick returns true when the click should toggle the mode. Clicks
// closer than ClickCooldown to the previous one are swallowed.
func (i *ModeIndicator) HandleClick(now time.Time) bool {
	if now.Sub(i.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	i.LastClickTime = now
	return true
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image, mode types.Mode, colors render.ModeColors) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, colors.Base, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 2, config.IndicatorStroke, true)

	label := mode.String()
	w, _ := text.Measure(label, i.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(i.X)-float64(i.Radius)-6-w, float64(i.Y)-7)
	op.ColorScale.ScaleWithColor(colors.Light)
	text.Draw(screen, label, i.face, op)
}
