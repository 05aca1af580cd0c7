package event

import (
	"time"

	"github.com/synclore/symposium/internal/clock"
)

// Event is the envelope wrapping a payload published on the table event
// stream.
type Event[T any] struct {
	RunID     string    `json:"runID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

// NewEvent creates an envelope stamped with the current clock time.
func NewEvent[T any](runID string, data T) *Event[T] {
	return &Event[T]{
		RunID:     runID,
		CreatedAt: clock.Now(),
		Data:      data,
	}
}
