// internal/system/render.go
package system

import (
	"go-power-wash/internal/component"
	"go-power-wash/internal/config"
	"go-power-wash/internal/entity"
	"go-power-wash/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem рисует грязь с подписями
type RenderSystem struct {
	ecs  *entity.ECS
	face text.Face
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.ecs.Order {
		tr, ok := s.ecs.Transforms[id]
		if !ok || !tr.Visible || tr.Alpha <= 0 {
			continue
		}
		bounds, ok := component.Bounds(tr, s.ecs.Sizes[id])
		if !ok {
			continue
		}
		base := config.DirtBaseColor
		label := ""
		if dirt, ok := s.ecs.Dirts[id]; ok {
			base = dirt.Color
			label = dirt.Label
		}

		x, y := float32(bounds.X), float32(bounds.Y)
		w, h := float32(bounds.W), float32(bounds.H)
		vector.DrawFilledRect(screen, x, y, w, h, render.Fade(base, tr.Alpha), true)
		vector.StrokeRect(screen, x, y, w, h, 2, render.Fade(render.DarkenColor(base), tr.Alpha), true)

		if label == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(tr.ScaleX, tr.ScaleY)
		op.GeoM.Translate(bounds.X+config.DirtLabelInsetX*tr.ScaleX, bounds.Y+config.DirtLabelInsetY*tr.ScaleY)
		op.ColorScale.ScaleWithColor(config.TextLightColor)
		op.ColorScale.ScaleAlpha(float32(tr.Alpha))
		text.Draw(screen, label, s.face, op)
	}
}
