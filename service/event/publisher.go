package event

import (
	"context"

	"github.com/synclore/symposium/service/messaging"
)

type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
	runID string
}

func NewPublisher[T any](queue messaging.Queue[Event[T]], runID string) *Publisher[T] {
	return &Publisher[T]{
		queue: queue,
		runID: runID,
	}
}

// Publish stamps the payload into an envelope and enqueues it.
func (p *Publisher[T]) Publish(ctx context.Context, data T) error {
	return p.queue.Publish(ctx, NewEvent(p.runID, data))
}

// Consume dequeues and acknowledges the next envelope.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
