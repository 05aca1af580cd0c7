// Package event carries table lifecycle events from the philosophers to
// their subscribers (console renderer, journal, tests). Publishing and
// consumption are decoupled through a messaging queue so the core never
// blocks on, or knows about, presentation.
package event

import (
	"context"

	"github.com/synclore/symposium/model"
	"github.com/synclore/symposium/service/messaging"
	"github.com/synclore/symposium/service/messaging/memory"
)

// Handler consumes one table event envelope.
type Handler func(*Event[model.TableEvent])

// Service owns the table event stream: one publisher shared by all
// philosophers and one listener fanning out to subscribed handlers.
type Service struct {
	publisher *Publisher[model.TableEvent]
	listener  *Listener[model.TableEvent]
	handlers  []Handler
	started   bool
}

// New creates an event service over the supplied queue; a nil queue gets an
// in-memory one with defaults.
func New(queue messaging.Queue[Event[model.TableEvent]], runID string) *Service {
	if queue == nil {
		queue = memory.NewQueue[Event[model.TableEvent]](memory.DefaultConfig())
	}
	return &Service{
		publisher: NewPublisher(queue, runID),
	}
}

// Publisher returns the shared publisher handed to every philosopher.
func (s *Service) Publisher() *Publisher[model.TableEvent] {
	return s.publisher
}

// Subscribe registers a handler. Must be called before Start.
func (s *Service) Subscribe(handler Handler) {
	if s.started {
		panic("event: subscribe after start")
	}
	s.handlers = append(s.handlers, handler)
}

// Start launches the dispatch loop. Starting twice would orphan the first
// listener's consume goroutine, so a second call panics.
func (s *Service) Start(ctx context.Context) {
	if s.started {
		panic("event: service already started")
	}
	handlers := make([]func(*Event[model.TableEvent]), 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.listener = NewListener(s.publisher, handlers...)
	s.listener.Start(ctx)
	s.started = true
}

// Shutdown stops the dispatch loop.
func (s *Service) Shutdown() {
	if s.listener != nil {
		s.listener.Stop()
	}
}
