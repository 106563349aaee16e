package entity

import (
	"testing"

	"go-power-wash/internal/component"
)

func TestNewEntityKeepsInsertionOrder(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	c := ecs.NewEntity()

	if a == b || b == c || a == c {
		t.Fatalf("expected unique ids, got %d %d %d", a, b, c)
	}
	if ecs.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", ecs.Len())
	}
	for i, want := range []uint64{uint64(a), uint64(b), uint64(c)} {
		if uint64(ecs.Order[i]) != want {
			t.Errorf("Order[%d] = %d, want %d", i, ecs.Order[i], want)
		}
	}
}

func TestFindByRecord(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Dirts[id] = &component.Dirt{RecordID: "msg-1"}

	got, ok := ecs.FindByRecord("msg-1")
	if !ok || got != id {
		t.Fatalf("FindByRecord(msg-1) = %d, %v; want %d, true", got, ok, id)
	}
	if _, ok := ecs.FindByRecord("missing"); ok {
		t.Error("expected unknown record to be absent")
	}
}

func TestResetDoesNotReuseIDs(t *testing.T) {
	ecs := NewECS()
	first := ecs.NewEntity()
	ecs.Physics[first] = component.NewPhysics(100)

	ecs.Reset()
	if ecs.Len() != 0 || len(ecs.Physics) != 0 {
		t.Fatalf("expected empty table after reset, got %d entities", ecs.Len())
	}
	if next := ecs.NewEntity(); next == first {
		t.Errorf("id %d reused after reset", next)
	}
}
