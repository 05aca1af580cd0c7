package symposium

import (
	"context"

	"github.com/synclore/symposium/console"
	"github.com/synclore/symposium/journal"
	"github.com/synclore/symposium/service/event"
	"github.com/synclore/symposium/service/philosopher"
)

// Runtime drives one simulation run: the event dispatch loop plus one
// goroutine per philosopher.
type Runtime struct {
	runID   string
	events  *event.Service
	table   *philosopher.Service
	journal *journal.Journal
	writer  *console.Writer
}

// RunID identifies this run in events, journals and traces.
func (r *Runtime) RunID() string {
	return r.runID
}

// Table returns the philosopher service.
func (r *Runtime) Table() *philosopher.Service {
	return r.table
}

// Events returns the event service.
func (r *Runtime) Events() *event.Service {
	return r.events
}

// Start launches event dispatch and the philosophers. The run continues
// until ctx is cancelled or Shutdown is called.
func (r *Runtime) Start(ctx context.Context) error {
	r.events.Start(ctx)
	return r.table.Start(ctx)
}

// Shutdown stops the philosophers first so every chopstick is released,
// then the event loop, then flushes the journal and console.
func (r *Runtime) Shutdown() {
	r.table.Shutdown()
	r.events.Shutdown()
	if r.journal != nil {
		_ = r.journal.Close(context.Background())
	}
	if r.writer != nil && r.writer.Cleanup != nil {
		r.writer.Cleanup()
	}
}
