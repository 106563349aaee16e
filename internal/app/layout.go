// internal/app/layout.go
package app

import (
	"image/color"
	"math"

	"go-power-wash/internal/component"
	"go-power-wash/internal/config"
	"go-power-wash/internal/entity"
	"go-power-wash/internal/records"
	"go-power-wash/internal/types"
	"go-power-wash/internal/utils"

	"github.com/cespare/xxhash/v2"
)

// Layout раскладывает записи по сетке поверх холста.
type Layout struct {
	Width, Height float64
	MaxHP         float64
}

// columns and rows that fit the canvas; at least one of each.
func (l Layout) grid() (cols, rows int) {
	cols = int((l.Width-2*config.LayoutMarginX-config.DirtMaxWidth)/config.LayoutCellW) + 1
	rows = int((l.Height-2*config.LayoutMarginY-config.DirtHeight)/config.LayoutCellH) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Populate creates one dirt entity per record, in record order. Once the grid
// is full, later records reuse its cells with their own jitter.
func (l Layout) Populate(ecs *entity.ECS, recs []records.Record, rng *utils.PRNGService) []types.EntityID {
	cols, rows := l.grid()
	ids := make([]types.EntityID, 0, len(recs))
	for i, rec := range recs {
		cell := i % (cols * rows)
		col, row := cell%cols, cell/cols

		x := config.LayoutMarginX + float64(col)*config.LayoutCellW + rng.Range(-config.LayoutJitter, config.LayoutJitter)
		y := config.LayoutMarginY + float64(row)*config.LayoutCellH + rng.Range(-config.LayoutJitter, config.LayoutJitter)
		x = math.Max(0, x)
		y = math.Max(0, y)

		id := ecs.NewEntity()
		label := TruncateLabel(rec.Subject, config.DirtLabelMax)
		ecs.Dirts[id] = &component.Dirt{RecordID: rec.ID, Label: label, Color: TintFor(rec.ID)}
		ecs.Transforms[id] = component.NewTransform(x, y)
		ecs.Sizes[id] = &component.Size{W: DirtWidth(label), H: config.DirtHeight}
		ecs.Physics[id] = component.NewPhysics(l.MaxHP)
		ids = append(ids, id)
	}
	return ids
}

// TruncateLabel cuts s to max runes and appends "..." when it was longer.
func TruncateLabel(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// DirtWidth sizes a dirt rectangle to its label.
func DirtWidth(label string) float64 {
	w := float64(len([]rune(label)))*config.DirtCharWidth + 2*config.DirtLabelInsetX
	return math.Min(config.DirtMaxWidth, math.Max(config.DirtMinWidth, w))
}

// TintFor picks a stable dirt color for a record id.
func TintFor(recordID string) color.RGBA {
	if len(config.DirtTints) == 0 {
		return config.DirtBaseColor
	}
	return config.DirtTints[xxhash.Sum64String(recordID)%uint64(len(config.DirtTints))]
}
