package event

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Listener drains a publisher's queue on its own goroutine and hands every
// envelope to the registered handlers in registration order.
type Listener[T any] struct {
	publisher *Publisher[T]
	handlers  []func(*Event[T])
	cancel    context.CancelFunc
	done      chan struct{}
	once      sync.Once
}

func NewListener[T any](publisher *Publisher[T], handlers ...func(*Event[T])) *Listener[T] {
	return &Listener[T]{
		publisher: publisher,
		handlers:  handlers,
	}
}

// Start launches the consume loop. The loop exits when Stop is called or the
// supplied context is cancelled.
func (l *Listener[T]) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go func() {
		defer close(l.done)
		for {
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				log.Printf("event listener: consume failed: %v", err)
				continue
			}
			if event == nil {
				continue
			}
			for _, handler := range l.handlers {
				handler(event)
			}
		}
	}()
}

// Stop terminates the consume loop and waits for it to drain the handler in
// flight.
func (l *Listener[T]) Stop() {
	l.once.Do(func() {
		if l.cancel != nil {
			l.cancel()
			<-l.done
		}
	})
}
