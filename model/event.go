package model

import "time"

// EventKind identifies a lifecycle event emitted by a philosopher.
type EventKind string

const (
	EventThinkingStart EventKind = "thinkingStart"
	EventThinkingEnd   EventKind = "thinkingEnd"
	EventHungry        EventKind = "hungry"
	EventAcquired      EventKind = "acquired"
	EventEatingStart   EventKind = "eatingStart"
	EventEatingEnd     EventKind = "eatingEnd"
	EventReleased      EventKind = "released"
)

// TableEvent describes a single phase-boundary occurrence at the table. The
// core emits these and never depends on how, or whether, they are rendered.
type TableEvent struct {
	Seat     int           `json:"seat"`
	Kind     EventKind     `json:"kind"`
	Side     Side          `json:"side,omitempty"`     // set for acquired
	Stick    int           `json:"stick"`              // set for acquired
	Duration time.Duration `json:"duration,omitempty"` // set for thinkingEnd/eatingEnd
}
