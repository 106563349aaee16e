// internal/app/ledger.go
package app

import "go-power-wash/internal/event"

// Ledger — журнал уничтоженных записей сессии. Каждый id попадает в него
// не больше одного раза; список только растет.
type Ledger struct {
	seen    map[string]struct{}
	entries []event.Destroyed
}

func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Record adds every entry of batch whose id is not yet known. It returns a
// snapshot of the accumulated list and whether anything was added.
func (l *Ledger) Record(batch []event.Destroyed) ([]event.Destroyed, bool) {
	grew := false
	for _, d := range batch {
		if _, ok := l.seen[d.ID]; ok {
			continue
		}
		l.seen[d.ID] = struct{}{}
		l.entries = append(l.entries, d)
		grew = true
	}
	return l.Snapshot(), grew
}

// Has reports whether id was already recorded.
func (l *Ledger) Has(id string) bool {
	_, ok := l.seen[id]
	return ok
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot returns a copy the caller may keep.
func (l *Ledger) Snapshot() []event.Destroyed {
	out := make([]event.Destroyed, len(l.entries))
	copy(out, l.entries)
	return out
}
