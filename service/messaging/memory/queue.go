// Package memory implements a channel-backed messaging.Queue used to move
// table lifecycle events from philosophers to their subscribers.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/synclore/symposium/service/messaging"
)

// Config for memory queue implementation
type Config struct {
	// MaxRedeliveries bounds how many times a Nacked message is requeued.
	MaxRedeliveries int

	// RedeliveryDelay is the pause before a Nacked message reappears.
	RedeliveryDelay time.Duration

	// QueueBuffer sizes the underlying channel.
	QueueBuffer int
}

// DefaultConfig returns a standard configuration for the memory queue.
func DefaultConfig() Config {
	return Config{
		MaxRedeliveries: 3,
		RedeliveryDelay: 100 * time.Millisecond,
		QueueBuffer:     256,
	}
}

// Message implements messaging.Message for the in-memory queue.
type Message[T any] struct {
	id         string
	payload    T
	queue      *Queue[T]
	deliveries int
	mu         sync.Mutex
	processed  bool
	createdAt  time.Time
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	return nil
}

// Nack indicates a failure in processing the message. The message is
// requeued after the configured delay until the redelivery budget is spent;
// past that it is dropped (events are telemetry, nothing consumes a dead
// letter here).
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	m.deliveries++

	if m.deliveries > m.queue.config.MaxRedeliveries {
		return nil
	}
	go func() {
		time.Sleep(m.queue.config.RedeliveryDelay)
		m.queue.requeue(&Message[T]{
			id:         m.id,
			payload:    m.payload,
			queue:      m.queue,
			deliveries: m.deliveries,
			createdAt:  time.Now(),
		})
	}()
	return nil
}

// Queue implements an in-memory messaging.Queue
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
	mu       sync.Mutex
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
	}
}

func (q *Queue[T]) requeue(msg *Message[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages <- msg
}

// Publish adds a new item to the queue
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	msg := &Message[T]{
		id:        uuid.New().String(),
		payload:   *t,
		queue:     q,
		createdAt: time.Now(),
	}
	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume retrieves a single item from the queue
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the number of messages waiting in the queue.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}
