// internal/types/types.go
package types

// EntityID — stable key of a row in the entity table.
type EntityID uint64

// Mode selects how a dirt entity is resolved once its durability runs out.
type Mode int

const (
	// ModeArchive washes the dirt away (slides down and fades).
	ModeArchive Mode = iota
	// ModeDelete shatters the dirt into debris.
	ModeDelete
)

// String returns the name used in reports and config files.
func (m Mode) String() string {
	switch m {
	case ModeArchive:
		return "archive"
	case ModeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDelete {
		return ModeArchive
	}
	return ModeDelete
}

// ParseMode maps a report/config name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "archive":
		return ModeArchive, true
	case "delete":
		return ModeDelete, true
	}
	return ModeArchive, false
}

// MarshalText lets modes appear by name in JSON reports.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
