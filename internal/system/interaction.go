// internal/system/interaction.go
package system

import (
	"image/color"

	"go-power-wash/internal/audio"
	"go-power-wash/internal/component"
	"go-power-wash/internal/config"
	"go-power-wash/internal/entity"
	"go-power-wash/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// Exploder spawns a debris burst.
type Exploder interface {
	Explode(x, y float64, c color.RGBA)
}

// CuePlayer plays a one-shot audio cue.
type CuePlayer interface {
	Play(name string, volume float64)
}

// InteractionSystem сталкивает сопло с грязью, наносит урон и ведет каждую
// сущность через угасание к окончательному уничтожению.
type InteractionSystem struct {
	tuning   config.Tuning
	exploder Exploder
	cues     CuePlayer
}

func NewInteractionSystem(tuning config.Tuning, exploder Exploder, cues CuePlayer) *InteractionSystem {
	return &InteractionSystem{tuning: tuning, exploder: exploder, cues: cues}
}

// Update runs one tick over every entity of the table in insertion order.
// Results are observed through the entity components and the collaborators.
func (s *InteractionSystem) Update(nozzle mgl64.Vec2, spraying bool, mode types.Mode, ecs *entity.ECS) {
	for _, id := range ecs.Order {
		state, ok := ecs.Physics[id]
		if !ok {
			state = component.NewPhysics(s.tuning.MaxHP)
			ecs.Physics[id] = state
		}

		if state.IsDead {
			continue
		}

		if state.IsDying {
			s.advanceDying(id, state, ecs)
			continue
		}

		if !spraying {
			continue
		}
		bounds, ok := component.Bounds(ecs.Transforms[id], ecs.Sizes[id])
		if !ok {
			// Без геометрии попадания нет.
			continue
		}
		if !HitTest(nozzle, bounds, s.tuning.NozzleRadius) {
			continue
		}
		s.applyDamage(id, state, mode, bounds, ecs)

		// Удаление не анимируется: сущность умирает в том же тике.
		if state.IsDying && state.Mode == types.ModeDelete {
			s.advanceDying(id, state, ecs)
		}
	}
}

func (s *InteractionSystem) applyDamage(id types.EntityID, state *component.Physics, mode types.Mode, bounds component.Rect, ecs *entity.ECS) {
	state.HP -= s.tuning.DamageRate

	if tr, ok := ecs.Transforms[id]; ok {
		alpha := state.HP / state.MaxHP
		if alpha < s.tuning.MinAlpha {
			alpha = s.tuning.MinAlpha
		}
		tr.Alpha = alpha
	}

	if state.HP > 0 {
		return
	}

	state.IsDying = true
	state.Mode = mode
	state.HasMode = true

	switch mode {
	case types.ModeDelete:
		center := bounds.Center()
		c := config.DirtBaseColor
		if dirt, ok := ecs.Dirts[id]; ok {
			c = dirt.Color
		}
		if s.exploder != nil {
			s.exploder.Explode(center.X(), center.Y(), c)
		}
		s.play(audio.CueDestroy, s.tuning.DestroyVolume)
	default:
		s.play(audio.CueClean, s.tuning.CleanVolume)
	}
}

// advanceDying moves the destruction animation forward by one tick.
func (s *InteractionSystem) advanceDying(id types.EntityID, state *component.Physics, ecs *entity.ECS) {
	tr, ok := ecs.Transforms[id]
	if !ok {
		// Нечего анимировать.
		state.IsDead = true
		return
	}

	switch state.Mode {
	case types.ModeArchive:
		tr.Y += s.tuning.WashSpeed
		tr.Alpha -= s.tuning.WashFadeStep
		tr.ScaleX *= s.tuning.WashShrink
		if tr.Alpha <= 0 {
			tr.Alpha = 0
			tr.Visible = false
			state.IsDead = true
		}
	case types.ModeDelete:
		tr.Visible = false
		state.IsDead = true
	}
}

func (s *InteractionSystem) play(cue string, volume float64) {
	if s.cues != nil {
		s.cues.Play(cue, volume)
	}
}
