package nozzle

import (
	"image/color"
	"math"

	"go-power-wash/internal/config"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"
	"go-power-wash/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ColorsFor returns the nozzle palette of a mode: blue for archive, red for delete.
func ColorsFor(mode types.Mode) render.ModeColors {
	if mode == types.ModeDelete {
		return render.ModeColors{Base: config.DeleteColor, Light: config.DeleteColorLight}
	}
	return render.ModeColors{Base: config.ArchiveColor, Light: config.ArchiveColorLight}
}

// Frame — derived drawing parameters of the nozzle for the current moment.
type Frame struct {
	Scale      float64
	Alpha      float64
	GlowAlpha  float64
	PulseAlpha float64 // 0 when not spraying
	LineWidth  float64
	Colors     render.ModeColors
}

// Visual draws the nozzle cursor: glow, pulse ring, double outer ring, inner
// dot and crosshair. Its position follows the pointer with exponential
// smoothing.
type Visual struct {
	lerp             float64
	visible          bool
	placed           bool
	animTime         float64
	targetX, targetY float64
	curX, curY       float64
	mode             types.Mode
	spraying         bool
}

func NewVisual(lerpFactor float64) *Visual {
	return &Visual{lerp: lerpFactor}
}

func (v *Visual) SetVisible(visible bool) { v.visible = visible }
func (v *Visual) Visible() bool           { return v.visible }

// SetTargetPosition sets where the nozzle should glide to.
func (v *Visual) SetTargetPosition(x, y float64) {
	v.targetX, v.targetY = x, y
}

// SnapTo moves the nozzle without smoothing. The first placement always
// snaps so the cursor does not sweep in from the origin.
func (v *Visual) SnapTo(x, y float64) {
	v.targetX, v.targetY = x, y
	v.curX, v.curY = x, y
	v.placed = true
}

// UpdatePosition blends the current position toward the target.
func (v *Visual) UpdatePosition(dt float64) {
	if !v.placed {
		v.SnapTo(v.targetX, v.targetY)
		return
	}
	f := utils.SmoothingFactor(v.lerp, dt)
	v.curX = utils.Lerp(v.curX, v.targetX, f)
	v.curY = utils.Lerp(v.curY, v.targetY, f)
}

// Position returns the smoothed position.
func (v *Visual) Position() (float64, float64) {
	return v.curX, v.curY
}

// Advance moves the animation clock and records what to draw.
func (v *Visual) Advance(mode types.Mode, spraying bool, dt float64) {
	v.animTime += dt
	v.mode = mode
	v.spraying = spraying
}

// Frame computes the pulse and glow for the current animation time.
func (v *Visual) Frame() Frame {
	base := 1.0
	alpha := 0.7
	glow := 0.3
	width := 2.0
	if v.spraying {
		base, alpha, glow, width = 1.3, 1.0, 0.6, 3.0
	}
	f := Frame{
		Scale:     base * (1 + math.Sin(v.animTime*8)*0.1),
		Alpha:     alpha,
		GlowAlpha: glow,
		LineWidth: width,
		Colors:    ColorsFor(v.mode),
	}
	if v.spraying {
		f.PulseAlpha = (math.Sin(v.animTime*10) + 1) * 0.5
	}
	return f
}

// Draw renders the nozzle at its smoothed position when visible.
func (v *Visual) Draw(screen *ebiten.Image) {
	if !v.visible {
		return
	}
	f := v.Frame()
	cx, cy := float32(v.curX), float32(v.curY)
	s := float32(f.Scale)
	base, light := f.Colors.Base, f.Colors.Light

	// Свечение: три слабых круга.
	glowR := 35 * s
	for i := 3; i >= 1; i-- {
		r := glowR * (1 + float32(i)*0.3)
		vector.DrawFilledCircle(screen, cx, cy, r, render.Fade(light, f.GlowAlpha*0.15/float64(i)), true)
	}

	if f.PulseAlpha > 0 {
		vector.StrokeCircle(screen, cx, cy, 30*s, 2, render.Fade(light, f.PulseAlpha*0.5), true)
		vector.StrokeCircle(screen, cx, cy, 32*s, 1, render.Fade(base, f.PulseAlpha*0.3), true)
	}

	vector.StrokeCircle(screen, cx, cy, 28*s, 4, render.Fade(base, f.Alpha), true)
	vector.StrokeCircle(screen, cx, cy, 26*s, 2, render.Fade(light, f.Alpha*0.8), true)

	vector.DrawFilledCircle(screen, cx, cy, 10*s, render.Fade(light, f.Alpha*0.9), true)
	vector.DrawFilledCircle(screen, cx, cy, 6*s, render.Fade(light, f.Alpha), true)
	vector.DrawFilledCircle(screen, cx, cy, 2*s, render.Fade(color.RGBA{0xff, 0xff, 0xff, 0xff}, f.Alpha), true)

	v.drawCrosshair(screen, cx, cy, s, f)
}

func (v *Visual) drawCrosshair(screen *ebiten.Image, cx, cy, s float32, f Frame) {
	length := 40 * s
	gap := 14 * s
	w := float32(f.LineWidth)
	outer := render.Fade(f.Colors.Base, f.Alpha*0.6)
	inner := render.Fade(f.Colors.Light, f.Alpha*0.9)

	arms := [4][4]float32{
		{0, -length, 0, -gap},
		{0, gap, 0, length},
		{-length, 0, -gap, 0},
		{gap, 0, length, 0},
	}
	for _, a := range arms {
		vector.StrokeLine(screen, cx+a[0], cy+a[1], cx+a[2], cy+a[3], w, outer, true)
		vector.StrokeLine(screen, cx+a[0], cy+a[1], cx+a[2], cy+a[3], 1.5, inner, true)
	}
}
