package event

import (
	"go-power-wash/internal/types"
)

const (
	SessionStarted EventType = "SessionStarted" // новая партия грязи
	DirtDestroyed  EventType = "DirtDestroyed"  // Data: Destroyed, once per record
	ReportUpdated  EventType = "ReportUpdated"  // Data: Report
	StageCleared   EventType = "StageCleared"   // Data: session id
	SessionEnded   EventType = "SessionEnded"   // Data: session id
)

// Destroyed is one entry of the action report.
type Destroyed struct {
	ID   string     `json:"id"`
	Mode types.Mode `json:"mode"`
}

// Report is the cumulative list of destroyed records of a session.
type Report struct {
	SessionID string      `json:"session"`
	Destroyed []Destroyed `json:"destroyed"`
}
