package app

import (
	"testing"

	"go-power-wash/internal/event"
	"go-power-wash/internal/types"
)

func TestLedgerRecordsEachIDOnce(t *testing.T) {
	l := NewLedger()

	list, grew := l.Record([]event.Destroyed{{ID: "a", Mode: types.ModeArchive}, {ID: "b", Mode: types.ModeDelete}})
	if !grew || len(list) != 2 {
		t.Fatalf("first batch: grew=%v list=%v", grew, list)
	}

	list, grew = l.Record([]event.Destroyed{{ID: "a", Mode: types.ModeDelete}})
	if grew {
		t.Error("repeated id must not grow the ledger")
	}
	if len(list) != 2 || list[0].Mode != types.ModeArchive {
		t.Errorf("first report must win, got %v", list)
	}

	list, grew = l.Record([]event.Destroyed{{ID: "c"}, {ID: "c"}})
	if !grew || len(list) != 3 {
		t.Errorf("duplicate inside a batch: grew=%v list=%v", grew, list)
	}
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	l := NewLedger()
	list, _ := l.Record([]event.Destroyed{{ID: "a"}})
	list[0].ID = "mutated"

	if !l.Has("a") || l.Snapshot()[0].ID != "a" {
		t.Error("caller mutation leaked into the ledger")
	}
}
