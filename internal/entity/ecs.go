package entity

import (
	"go-power-wash/internal/component"
	"go-power-wash/internal/types"
)

// ECS — entity table of a cleaning session. Every component map is keyed by
// the same EntityID; Order keeps insertion order so systems walk entities
// deterministically.
type ECS struct {
	NextID     types.EntityID
	Order      []types.EntityID
	Dirts      map[types.EntityID]*component.Dirt
	Physics    map[types.EntityID]*component.Physics
	Transforms map[types.EntityID]*component.Transform
	Sizes      map[types.EntityID]*component.Size
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Dirts:      make(map[types.EntityID]*component.Dirt),
		Physics:    make(map[types.EntityID]*component.Physics),
		Transforms: make(map[types.EntityID]*component.Transform),
		Sizes:      make(map[types.EntityID]*component.Size),
	}
}

// NewEntity allocates an id and appends it to Order.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Order = append(ecs.Order, id)
	return id
}

// Len returns the number of entities in the table.
func (ecs *ECS) Len() int {
	return len(ecs.Order)
}

// FindByRecord returns the entity built from the given record id.
func (ecs *ECS) FindByRecord(recordID string) (types.EntityID, bool) {
	for _, id := range ecs.Order {
		if d, ok := ecs.Dirts[id]; ok && d.RecordID == recordID {
			return id, true
		}
	}
	return 0, false
}

// Reset drops every entity. The id counter keeps running so ids from a
// previous batch are never reused.
func (ecs *ECS) Reset() {
	ecs.Order = nil
	ecs.Dirts = make(map[types.EntityID]*component.Dirt)
	ecs.Physics = make(map[types.EntityID]*component.Physics)
	ecs.Transforms = make(map[types.EntityID]*component.Transform)
	ecs.Sizes = make(map[types.EntityID]*component.Size)
}
