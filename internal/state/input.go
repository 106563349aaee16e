// internal/state/input.go
package state

import "go-power-wash/internal/types"

// PointerSink receives translated pointer events.
type PointerSink interface {
	PointerMove(x, y float64)
	PointerDown()
	PointerUp()
	PointerEnter()
	PointerLeave()
}

// Frame — input polled for one Update.
type Frame struct {
	X, Y         int
	Inside       bool // cursor over the canvas
	Pressed      bool // left button just pressed
	Released     bool // left button just released
	Focused      bool
	ToggleMode   bool
	SelectMode   types.Mode
	HasSelection bool
	NextBatch    bool
}

// PointerTracker turns per-frame cursor polling into enter/leave/move/down/up
// events.
type PointerTracker struct {
	over     bool
	pressing bool
}

// Apply feeds one frame of input into sink. Presses that start on UI
// (consumed == true) never reach the nozzle.
func (p *PointerTracker) Apply(f Frame, consumed bool, sink PointerSink) {
	if !f.Focused {
		if p.pressing {
			p.pressing = false
			sink.PointerUp()
		}
		if p.over {
			p.over = false
			sink.PointerLeave()
		}
		return
	}

	if f.Inside != p.over {
		p.over = f.Inside
		if p.over {
			sink.PointerEnter()
		} else {
			// Выход с холста отпускает курок.
			p.pressing = false
			sink.PointerLeave()
		}
	}
	if p.over {
		sink.PointerMove(float64(f.X), float64(f.Y))
	}

	switch {
	case f.Pressed && !consumed && p.over:
		p.pressing = true
		sink.PointerDown()
	case f.Released && p.pressing:
		p.pressing = false
		sink.PointerUp()
	}
}
