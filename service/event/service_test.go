package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/synclore/symposium/model"
)

func TestServiceDispatch(t *testing.T) {
	service := New(nil, "run-1")

	var mu sync.Mutex
	var first, second []model.TableEvent
	service.Subscribe(func(ev *Event[model.TableEvent]) {
		mu.Lock()
		first = append(first, ev.Data)
		mu.Unlock()
	})
	service.Subscribe(func(ev *Event[model.TableEvent]) {
		mu.Lock()
		second = append(second, ev.Data)
		mu.Unlock()
	})

	ctx := context.Background()
	service.Start(ctx)
	defer service.Shutdown()

	assert.NoError(t, service.Publisher().Publish(ctx, model.TableEvent{Seat: 2, Kind: model.EventHungry}))
	assert.NoError(t, service.Publisher().Publish(ctx, model.TableEvent{Seat: 2, Kind: model.EventEatingStart}))

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		done := len(first) == 2 && len(second) == 2
		mu.Unlock()
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("handlers did not receive both events")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, model.EventHungry, first[0].Kind)
	assert.Equal(t, model.EventEatingStart, first[1].Kind)
	assert.Equal(t, first, second)
}

func TestPublisherStampsEnvelope(t *testing.T) {
	service := New(nil, "run-42")
	ctx := context.Background()

	assert.NoError(t, service.Publisher().Publish(ctx, model.TableEvent{Seat: 0, Kind: model.EventThinkingStart}))
	ev, err := service.Publisher().Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "run-42", ev.RunID)
	assert.False(t, ev.CreatedAt.IsZero())
	assert.Equal(t, model.EventThinkingStart, ev.Data.Kind)
}

func TestStartTwicePanics(t *testing.T) {
	service := New(nil, "run-1")
	service.Start(context.Background())
	defer service.Shutdown()
	assert.Panics(t, func() { service.Start(context.Background()) })
}

func TestSubscribeAfterStartPanics(t *testing.T) {
	service := New(nil, "run-1")
	service.Start(context.Background())
	defer service.Shutdown()
	assert.Panics(t, func() { service.Subscribe(func(*Event[model.TableEvent]) {}) })
}
